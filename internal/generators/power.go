package generators

// power.go: area-wide power and energy aggregation.
//
// Every selected device kind maps to one or more power components, each with
// a power entity and a daily energy entity. The generated sensors sum all
// components in a Jinja2 for-loop so Home Assistant re-evaluates whenever a
// component changes.

import (
	"fmt"
	"strings"

	"areagen/internal/haconfig"
)

// PowerComponent is one contributor to the area power and energy totals.
type PowerComponent struct {
	Key          string // attribute key on the total power sensor
	PowerEntity  string
	EnergyEntity string
	Description  string
}

// powerComponentsFor returns the components contributed by one device kind.
func powerComponentsFor(kind string) []PowerComponent {
	switch kind {
	case "computer":
		return []PowerComponent{
			{Key: "pc", PowerEntity: "sensor.pc_power", EnergyEntity: "sensor.pc_daily_energy", Description: "PC/Computer"},
			{Key: "monitors", PowerEntity: "sensor.monitors_power", EnergyEntity: "sensor.monitors_daily_energy", Description: "Monitors"},
			{Key: "desk", PowerEntity: "sensor.desk_power", EnergyEntity: "sensor.desk_daily_energy", Description: "Desk Equipment"},
		}
	case "tv":
		return []PowerComponent{
			{Key: "tv", PowerEntity: "sensor.tv_power", EnergyEntity: "sensor.tv_daily_energy", Description: "Television"},
			{Key: "entertainment", PowerEntity: "sensor.entertainment_power", EnergyEntity: "sensor.entertainment_daily_energy", Description: "Entertainment System"},
		}
	case "appliance":
		return []PowerComponent{
			{Key: "appliance", PowerEntity: "sensor.appliance_power", EnergyEntity: "sensor.appliance_daily_energy", Description: "Major Appliance"},
		}
	case "bathroom":
		return []PowerComponent{
			{Key: "bathroom", PowerEntity: "sensor.bathroom_power", EnergyEntity: "sensor.bathroom_daily_energy", Description: "Bathroom Equipment"},
		}
	case "kitchen":
		return []PowerComponent{
			{Key: "kitchen_major", PowerEntity: "sensor.kitchen_major_power", EnergyEntity: "sensor.kitchen_major_daily_energy", Description: "Major Kitchen Appliances"},
			{Key: "kitchen_small", PowerEntity: "sensor.kitchen_small_power", EnergyEntity: "sensor.kitchen_small_daily_energy", Description: "Small Kitchen Appliances"},
		}
	}
	return nil
}

// PowerComponents maps the selected device kinds to their power components,
// in selection order, plus a trailing catch-all for unmetered devices.
func PowerComponents(devices []string) []PowerComponent {
	var components []PowerComponent
	seen := make(map[string]bool)
	for _, kind := range devices {
		for _, c := range powerComponentsFor(kind) {
			if !seen[c.Key] {
				seen[c.Key] = true
				components = append(components, c)
			}
		}
	}
	if len(components) > 0 {
		components = append(components, PowerComponent{
			Key:          "extras",
			PowerEntity:  "sensor.extras_power",
			EnergyEntity: "sensor.extras_daily_energy",
			Description:  "Other Devices",
		})
	}
	return components
}

// PowerConfig generates the total power and daily energy sensors for an
// area. Returns nothing when no device contributes a component.
func PowerConfig(f haconfig.Features) []haconfig.TemplateItem {
	components := PowerComponents(f.Devices)
	if len(components) == 0 {
		return nil
	}
	title := haconfig.TitleCase(f.AreaName)
	return []haconfig.TemplateItem{
		totalPowerSensor(title, f.NormalizedName, components),
		dailyEnergySensor(title, f.NormalizedName, components),
	}
}

// totalPowerSensor sums every component's power entity.
func totalPowerSensor(title, norm string, components []PowerComponent) haconfig.TemplateItem {
	var entities []string
	for _, c := range components {
		entities = append(entities, "'"+c.PowerEntity+"'")
	}

	lines := []string{
		"{% set components = [",
		"    " + strings.Join(entities, ",\n    "),
		"] %}",
		"",
		"{% set total = namespace(power=0) %}",
		"{% for component in components %}",
		"  {% set total.power = total.power + states(component)|float(0) %}",
		"{% endfor %}",
		"{{ total.power|round(2) }}",
	}

	attrs := haconfig.Attributes{}
	for _, c := range components {
		attrs = attrs.Add(c.Key, haconfig.Template(
			fmt.Sprintf("{{ states('%s')|float(0)|round(2) }}", c.PowerEntity)))
	}

	sensor := classify(haconfig.Sensor{
		Name:       title + " Total Power",
		UniqueID:   norm + "_total_power",
		State:      haconfig.Template(strings.Join(lines, "\n")),
		Attributes: attrs,
	}, "power")

	return haconfig.TemplateItem{Sensor: []haconfig.Sensor{sensor}}
}

// dailyEnergySensor sums every component's daily energy entity, resetting
// at midnight via the last_reset attribute.
func dailyEnergySensor(title, norm string, components []PowerComponent) haconfig.TemplateItem {
	var entities []string
	for _, c := range components {
		entities = append(entities, "'"+c.EnergyEntity+"'")
	}

	lines := []string{
		"{% set components = [",
		"    " + strings.Join(entities, ",\n    "),
		"] %}",
		"",
		"{% set total = namespace(energy=0) %}",
		"{% for component in components %}",
		"  {% set total.energy = total.energy + states(component)|float(0) %}",
		"{% endfor %}",
		"{{ total.energy|round(3) }}",
	}

	sensor := classify(haconfig.Sensor{
		Name:     title + " Daily Energy",
		UniqueID: norm + "_daily_energy",
		State:    haconfig.Template(strings.Join(lines, "\n")),
		Attributes: haconfig.Attributes{}.Add("last_reset",
			"{{ now().replace(hour=0, minute=0, second=0, microsecond=0).isoformat() }}"),
	}, "energy")

	return haconfig.TemplateItem{Sensor: []haconfig.Sensor{sensor}}
}
