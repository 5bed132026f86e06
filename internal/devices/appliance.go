package devices

import (
	"fmt"
	"strings"

	"areagen/internal/haconfig"
)

// appliance covers a major appliance (washing machine, dishwasher, dryer)
// monitored through an area-local power sensor. The survey does not ask
// which appliance it is, so the generated ids use the generic label.
type appliance struct{}

const applianceKind = "generic"

func (appliance) Name() string { return "appliance" }
func (appliance) Description() string {
	return "Major appliances (washing machine, dishwasher, etc)"
}

func (appliance) Components(area, norm string) haconfig.TemplateItem {
	title := haconfig.TitleCase(area)
	kindTitle := haconfig.TitleCase(applianceKind)
	base := norm + "_" + applianceKind

	active := haconfig.BinarySensor{
		Name:        fmt.Sprintf("%s %s Active", title, kindTitle),
		UniqueID:    base + "_active",
		DeviceClass: "running",
		State: haconfig.Template(
			fmt.Sprintf("{{ states('sensor.%s_power')|float(0) > 10 }}", base)),
		Attributes: haconfig.Attributes{}.
			Add("power_draw", haconfig.Template(
				fmt.Sprintf("{{ states('sensor.%s_power')|float(0) }}", base))),
	}

	state := haconfig.Sensor{
		Name:     fmt.Sprintf("%s %s State", title, kindTitle),
		UniqueID: base + "_state",
		Unit:     "state",
		State: haconfig.Template(strings.Join([]string{
			fmt.Sprintf("{%% set power = states('sensor.%s_power')|float(0) %%}", base),
			"{% if power > 50 %}running{% elif power > 10 %}standby{% else %}off{% endif %}",
		}, "\n")),
	}

	fan := haconfig.NewFan(base+"_fan", fanSpec(
		fmt.Sprintf("%s %s Fan", title, kindTitle),
		"switch."+base+"_fan",
		"sensor."+base+"_fan_speed",
		"input_number."+base+"_fan_speed",
	))

	return haconfig.TemplateItem{
		BinarySensor: []haconfig.BinarySensor{active},
		Sensor:       []haconfig.Sensor{state},
		Fan:          []haconfig.Fan{fan},
	}
}

func (appliance) Entities(norm string) []haconfig.EntitySuggestion {
	return []haconfig.EntitySuggestion{
		{Domain: "sensor", SuggestedID: norm + "_appliance_power", Description: "Appliance power sensor", Role: "appliance_power"},
		{Domain: "binary_sensor", SuggestedID: norm + "_appliance_active", Description: "Appliance state sensor", Role: "appliance_active"},
	}
}

func (appliance) Inputs(area, norm string) haconfig.InputEntries {
	title := haconfig.TitleCase(area)
	return haconfig.InputEntries{
		Numbers: []haconfig.NumberEntry{{
			Key: norm + "_appliance_power_threshold",
			Value: haconfig.InputNumber{
				Name:    title + " Appliance Power Threshold",
				Min:     50,
				Max:     2000,
				Step:    50,
				Unit:    "W",
				Icon:    "mdi:flash-alert",
				Initial: 200,
			},
		}},
		Booleans: []haconfig.BoolEntry{{
			Key: norm + "_appliance_monitoring",
			Value: haconfig.InputBoolean{
				Name: title + " Appliance Monitoring",
				Icon: "mdi:washing-machine",
			},
		}},
	}
}
