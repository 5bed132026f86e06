package devices

import (
	"strings"

	"areagen/internal/haconfig"
)

// tv covers a television/entertainment setup driven by a power sensor.
type tv struct{}

func (tv) Name() string        { return "tv" }
func (tv) Description() string { return "Television/Entertainment system" }

func (tv) Components(area, norm string) haconfig.TemplateItem {
	title := haconfig.TitleCase(area)

	active := haconfig.BinarySensor{
		Name:        title + " TV Active",
		UniqueID:    norm + "_tv_active",
		DeviceClass: "power",
		State: haconfig.Template(strings.Join([]string{
			"{% set power = states('sensor.tv_power')|float(0) %}",
			"{{ power > 10 }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("power_draw", "{{ states('sensor.tv_power')|float(0) }}").
			Add("current_channel", "{{ states('sensor.tv_channel') }}").
			Add("volume", "{{ states('sensor.tv_volume')|int(0) }}"),
	}

	status := haconfig.Sensor{
		Name:     title + " TV Status",
		UniqueID: norm + "_tv_status",
		Unit:     "state",
		State:    "{{ states('sensor.tv_state') }}",
		Attributes: haconfig.Attributes{}.
			Add("input_source", "{{ states('sensor.tv_input_source') }}").
			Add("hdmi_connected", "{{ state_attr('sensor.tv_hdmi', 'connected_devices')|default([]) }}"),
	}

	powerState := haconfig.Sensor{
		Name:     title + " TV Power State",
		UniqueID: norm + "_tv_power_state",
		Unit:     "state",
		State: haconfig.Template(strings.Join([]string{
			"{% set power = states('sensor.tv_power')|float(0) %}",
			"{% if power > 50 %}on{% elif power > 10 %}standby{% else %}off{% endif %}",
		}, "\n")),
	}

	return haconfig.TemplateItem{
		BinarySensor: []haconfig.BinarySensor{active},
		Sensor:       []haconfig.Sensor{status, powerState},
	}
}

func (tv) Entities(norm string) []haconfig.EntitySuggestion {
	return []haconfig.EntitySuggestion{
		{Domain: "sensor", SuggestedID: norm + "_tv_power", Description: "TV power sensor", Role: "tv_power"},
		{Domain: "binary_sensor", SuggestedID: norm + "_tv_active", Description: "TV state sensor", Role: "tv_active"},
	}
}

func (tv) Inputs(area, norm string) haconfig.InputEntries {
	return haconfig.InputEntries{
		Booleans: []haconfig.BoolEntry{{
			Key: norm + "_tv_power_management",
			Value: haconfig.InputBoolean{
				Name: haconfig.TitleCase(area) + " TV Power Management",
				Icon: "mdi:television",
			},
		}},
	}
}
