package generators

import (
	"strings"
	"testing"

	"areagen/internal/haconfig"
)

func climateFeatures() haconfig.Features {
	return haconfig.Features{
		AreaName:       "Master Bedroom",
		NormalizedName: "master_bedroom",
		ClimateControl: true,
		EntityIDs:      haconfig.EntityIDs{},
	}
}

func TestClimateConfigTemperatureOnly(t *testing.T) {
	items := ClimateConfig(climateFeatures())
	if len(items) != 1 {
		t.Fatalf("got %d items, want temperature block only", len(items))
	}

	diff := items[0].Sensor[0]
	if diff.UniqueID != "master_bedroom_temp_differential" {
		t.Errorf("unique_id = %q", diff.UniqueID)
	}
	if diff.DeviceClass != "temperature" || diff.Unit != "°C" {
		t.Errorf("classing = %q/%q", diff.DeviceClass, diff.Unit)
	}
	state := string(diff.State)
	for _, want := range []string{
		"states('sensor.master_bedroom_temperature')|float(20)",
		"state_attr('climate.master_bedroom', 'temperature')|float(20)",
		"{{ (current - target)|round(1) }}",
	} {
		if !strings.Contains(state, want) {
			t.Errorf("differential state missing %q:\n%s", want, state)
		}
	}
	if len(diff.Attributes) != 3 || diff.Attributes[2].Key != "mode" {
		t.Errorf("attributes = %+v", diff.Attributes)
	}

	trends := items[0].BinarySensor
	if len(trends) != 2 {
		t.Fatalf("trend sensors = %+v", trends)
	}
	if trends[0].DeviceClass != "heat" || trends[1].DeviceClass != "cold" {
		t.Errorf("trend classes = %q, %q", trends[0].DeviceClass, trends[1].DeviceClass)
	}
	if !strings.Contains(string(trends[0].State), "(current - previous) > threshold") {
		t.Errorf("rising state:\n%s", trends[0].State)
	}
	if !strings.Contains(string(trends[1].State), "(current - previous) < threshold") {
		t.Errorf("falling state:\n%s", trends[1].State)
	}
}

func TestClimateConfigHumidity(t *testing.T) {
	f := climateFeatures()
	f.HumiditySensor = true
	f.EntityIDs = haconfig.EntityIDs{"humidity": "sensor.bedroom_hygrometer"}

	items := ClimateConfig(f)
	if len(items) != 2 {
		t.Fatalf("got %d items, want temperature and humidity blocks", len(items))
	}

	change := items[1].Sensor[0]
	if change.UniqueID != "master_bedroom_humidity_change" {
		t.Errorf("unique_id = %q", change.UniqueID)
	}
	state := string(change.State)
	if !strings.Contains(state, "states('sensor.bedroom_hygrometer')|float(50)") {
		t.Errorf("change state ignores confirmed id:\n%s", state)
	}
	// Average entity is derived from the confirmed id's object id.
	if !strings.Contains(state, "states('sensor.bedroom_hygrometer_average')|float(50)") {
		t.Errorf("average entity wrong:\n%s", state)
	}

	high := items[1].BinarySensor[0]
	if high.DeviceClass != "moisture" {
		t.Errorf("high humidity class = %q", high.DeviceClass)
	}
	if !strings.Contains(string(high.State), "{{ current > 75 }}") {
		t.Errorf("high humidity state:\n%s", high.State)
	}
}

func TestClimateConfigWindow(t *testing.T) {
	f := climateFeatures()
	f.WindowSensor = true

	items := ClimateConfig(f)
	if len(items) != 2 {
		t.Fatalf("got %d items, want temperature and window blocks", len(items))
	}

	open := items[1].BinarySensor[0]
	if open.UniqueID != "master_bedroom_windows_open" || open.DeviceClass != "window" {
		t.Errorf("window sensor = %+v", open)
	}
	if got := string(open.State); got != "{{ is_state('binary_sensor.master_bedroom_window', 'on') }}" {
		t.Errorf("window state = %q", got)
	}
	impact := string(open.Attributes[0].Value)
	for _, want := range []string{
		"states('sensor.master_bedroom_temp_differential')|float(0)",
		"'heating_loss'",
		"'cooling_loss'",
		"'minimal'",
		"'none'",
	} {
		if !strings.Contains(impact, want) {
			t.Errorf("climate_impact missing %q:\n%s", want, impact)
		}
	}
}
