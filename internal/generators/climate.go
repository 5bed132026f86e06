package generators

// climate.go: climate monitoring sensors: temperature differential and
// trend, humidity change and threshold, window impact.

import (
	"fmt"
	"strings"

	"areagen/internal/haconfig"
)

// ClimateConfig generates the climate monitoring components for an area.
func ClimateConfig(f haconfig.Features) []haconfig.TemplateItem {
	norm := f.NormalizedName
	ids := f.EntityIDs

	climateEntity := ids.Lookup("climate", "climate."+norm)
	tempEntity := ids.Lookup("temperature", "sensor."+norm+"_temperature")

	items := temperatureSensors(f, climateEntity, tempEntity)

	if f.HumiditySensor {
		humidityEntity := ids.Lookup("humidity", "sensor."+norm+"_humidity")
		items = append(items, humiditySensors(f, humidityEntity)...)
	}

	if f.WindowSensor {
		windowEntity := ids.Lookup("window", "binary_sensor."+norm+"_window")
		items = append(items, windowMonitoring(f, windowEntity, tempEntity)...)
	}

	return items
}

// temperatureSensors builds the differential sensor plus rising/falling
// trend binary sensors.
func temperatureSensors(f haconfig.Features, climateEntity, tempEntity string) []haconfig.TemplateItem {
	title := haconfig.TitleCase(f.AreaName)
	norm := f.NormalizedName

	differential := classify(haconfig.Sensor{
		Name:     title + " Temperature Differential",
		UniqueID: norm + "_temp_differential",
		State:    tempDifferentialTemplate(tempEntity, climateEntity),
		Attributes: haconfig.Attributes{}.
			Add("current_temp", haconfig.Template(fmt.Sprintf("{{ states('%s')|float(20) }}", tempEntity))).
			Add("target_temp", haconfig.Template(fmt.Sprintf("{{ state_attr('%s', 'temperature')|float(20) }}", climateEntity))).
			Add("mode", haconfig.Template(fmt.Sprintf("{{ state_attr('%s', 'hvac_action')|default('off') }}", climateEntity))),
	}, "temperature")

	rising := haconfig.BinarySensor{
		Name:        title + " Temperature Rising",
		UniqueID:    norm + "_temp_rising",
		DeviceClass: "heat",
		State:       tempTrendTemplate(tempEntity, true),
	}
	falling := haconfig.BinarySensor{
		Name:        title + " Temperature Falling",
		UniqueID:    norm + "_temp_falling",
		DeviceClass: "cold",
		State:       tempTrendTemplate(tempEntity, false),
	}

	return []haconfig.TemplateItem{{
		Sensor:       []haconfig.Sensor{differential},
		BinarySensor: []haconfig.BinarySensor{rising, falling},
	}}
}

// humiditySensors builds the humidity change sensor and high humidity alert.
func humiditySensors(f haconfig.Features, humidityEntity string) []haconfig.TemplateItem {
	title := haconfig.TitleCase(f.AreaName)
	norm := f.NormalizedName
	averageEntity := "sensor." + haconfig.ObjectID(humidityEntity) + "_average"

	change := classify(haconfig.Sensor{
		Name:     title + " Humidity Change",
		UniqueID: norm + "_humidity_change",
		State:    humidityChangeTemplate(humidityEntity, averageEntity),
		Attributes: haconfig.Attributes{}.
			Add("current_humidity", haconfig.Template(fmt.Sprintf("{{ states('%s')|float(50) }}", humidityEntity))).
			Add("average_humidity", haconfig.Template(fmt.Sprintf("{{ states('%s')|float(50) }}", averageEntity))),
	}, "humidity")

	high := haconfig.BinarySensor{
		Name:        title + " High Humidity",
		UniqueID:    norm + "_high_humidity",
		DeviceClass: "moisture",
		State:       humidityThresholdTemplate(humidityEntity, true),
	}

	return []haconfig.TemplateItem{{
		Sensor:       []haconfig.Sensor{change},
		BinarySensor: []haconfig.BinarySensor{high},
	}}
}

// windowMonitoring builds the windows-open sensor with its climate impact
// attribute.
func windowMonitoring(f haconfig.Features, windowEntity, tempEntity string) []haconfig.TemplateItem {
	title := haconfig.TitleCase(f.AreaName)
	norm := f.NormalizedName

	open := haconfig.BinarySensor{
		Name:        title + " Windows Open",
		UniqueID:    norm + "_windows_open",
		DeviceClass: "window",
		State:       IsStateTemplate(windowEntity, "on"),
		Attributes: haconfig.Attributes{}.
			Add("climate_impact", windowClimateImpactTemplate(norm, windowEntity)),
	}

	return []haconfig.TemplateItem{{BinarySensor: []haconfig.BinarySensor{open}}}
}

func tempDifferentialTemplate(tempEntity, climateEntity string) haconfig.Template {
	return haconfig.Template(strings.Join([]string{
		fmt.Sprintf("{%% set current = states('%s')|float(20) %%}", tempEntity),
		fmt.Sprintf("{%% set target = state_attr('%s', 'temperature')|float(20) %%}", climateEntity),
		"{{ (current - target)|round(1) }}",
	}, "\n"))
}

func tempTrendTemplate(tempEntity string, rising bool) haconfig.Template {
	op := ">"
	if !rising {
		op = "<"
	}
	return haconfig.Template(strings.Join([]string{
		fmt.Sprintf("{%% set current = states('%s')|float(20) %%}", tempEntity),
		fmt.Sprintf("{%% set previous = state_attr('%s', 'previous_value')|float(20) %%}", tempEntity),
		"{% set threshold = 0.2 %}",
		fmt.Sprintf("{{ (current - previous) %s threshold }}", op),
	}, "\n"))
}

func humidityChangeTemplate(humidityEntity, averageEntity string) haconfig.Template {
	return haconfig.Template(strings.Join([]string{
		fmt.Sprintf("{%% set current = states('%s')|float(50) %%}", humidityEntity),
		fmt.Sprintf("{%% set average = states('%s')|float(50) %%}", averageEntity),
		"{{ ((current - average) / average * 100)|round(1) }}",
	}, "\n"))
}

func humidityThresholdTemplate(humidityEntity string, high bool) haconfig.Template {
	op, threshold := ">", 75
	if !high {
		op, threshold = "<", 30
	}
	return haconfig.Template(strings.Join([]string{
		fmt.Sprintf("{%% set current = states('%s')|float(50) %%}", humidityEntity),
		fmt.Sprintf("{{ current %s %d }}", op, threshold),
	}, "\n"))
}

// windowClimateImpactTemplate classifies how an open window affects the
// climate, based on the temperature differential sensor generated above.
func windowClimateImpactTemplate(norm, windowEntity string) haconfig.Template {
	return haconfig.Template(strings.Join([]string{
		fmt.Sprintf("{%% set temp_diff = states('sensor.%s_temp_differential')|float(0) %%}", norm),
		fmt.Sprintf("{%% set window_open = is_state('%s', 'on') %%}", windowEntity),
		"{% if window_open %}",
		"  {% if temp_diff > 2 %}",
		"    'heating_loss'",
		"  {% elif temp_diff < -2 %}",
		"    'cooling_loss'",
		"  {% else %}",
		"    'minimal'",
		"  {% endif %}",
		"{% else %}",
		"  'none'",
		"{% endif %}",
	}, "\n"))
}
