package devices

import (
	"fmt"
	"strings"

	"areagen/internal/haconfig"
)

// bathroom covers bathroom fixtures: humidity alerting, ventilation fan and
// comfort classification.
type bathroom struct{}

func (bathroom) Name() string        { return "bathroom" }
func (bathroom) Description() string { return "Bathroom fixtures (shower, toilet, etc)" }

func (bathroom) Components(area, norm string) haconfig.TemplateItem {
	title := haconfig.TitleCase(area)

	humidityAlert := haconfig.BinarySensor{
		Name:        title + " Humidity Alert",
		UniqueID:    norm + "_humidity_alert",
		DeviceClass: "moisture",
		State: haconfig.Template(strings.Join([]string{
			fmt.Sprintf("{%% set humidity = states('sensor.%s_humidity')|float(0) %%}", norm),
			"{{ humidity > 70 }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("humidity", haconfig.Template(
				fmt.Sprintf("{{ states('sensor.%s_humidity')|float(0) }}", norm))).
			Add("temperature", haconfig.Template(
				fmt.Sprintf("{{ states('sensor.%s_temperature')|float(0) }}", norm))),
	}

	fan := haconfig.NewFan("bathroom_fan", fanSpec(
		title+" Fan",
		"switch."+norm+"_fan",
		"sensor."+norm+"_fan_speed",
		"input_number."+norm+"_fan_speed",
	))

	// Distinct from the area-level humidity change sensor the climate
	// monitoring emits, which owns <area>_humidity_change.
	humidityChange := haconfig.Sensor{
		Name:     title + " Bathroom Humidity Change",
		UniqueID: norm + "_bathroom_humidity_change",
		Unit:     "%",
		State: haconfig.Template(strings.Join([]string{
			fmt.Sprintf("{%% set current = states('sensor.%s_humidity')|float(50) %%}", norm),
			fmt.Sprintf("{%% set average = states('sensor.%s_average_humidity')|float(50) %%}", norm),
			"{{ ((current - average) / average * 100)|round(1) }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("fan_speed", haconfig.Template(
				fmt.Sprintf("{{ states('sensor.%s_fan_speed')|int(0) }}", norm))).
			Add("is_running", haconfig.Template(
				fmt.Sprintf("{{ is_state('fan.%s_ventilation', 'on') }}", norm))),
	}

	comfort := haconfig.Sensor{
		Name:     title + " Comfort Level",
		UniqueID: norm + "_comfort_level",
		Unit:     "state",
		State: haconfig.Template(strings.Join([]string{
			fmt.Sprintf("{%% set humidity = states('sensor.%s_humidity')|float(0) %%}", norm),
			fmt.Sprintf("{%% set temperature = states('sensor.%s_temperature')|float(0) %%}", norm),
			"{% if humidity > 70 and temperature > 25 %}uncomfortable{% elif humidity > 60 %}moderate{% else %}comfortable{% endif %}",
		}, "\n")),
	}

	return haconfig.TemplateItem{
		BinarySensor: []haconfig.BinarySensor{humidityAlert},
		Sensor:       []haconfig.Sensor{humidityChange, comfort},
		Fan:          []haconfig.Fan{fan},
	}
}

func (bathroom) Entities(norm string) []haconfig.EntitySuggestion {
	return []haconfig.EntitySuggestion{
		{Domain: "sensor", SuggestedID: norm + "_bathroom_power", Description: "Bathroom power sensor", Role: "bathroom_power"},
		{Domain: "binary_sensor", SuggestedID: norm + "_bathroom_active", Description: "Bathroom state sensor", Role: "bathroom_active"},
	}
}

func (bathroom) Inputs(area, norm string) haconfig.InputEntries {
	return haconfig.InputEntries{}
}
