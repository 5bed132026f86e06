package devices

import (
	"strings"

	"areagen/internal/haconfig"
)

// kitchen covers kitchen appliances: oven/dishwasher activity, combined
// energy draw and ventilation.
type kitchen struct{}

func (kitchen) Name() string        { return "kitchen" }
func (kitchen) Description() string { return "Kitchen appliances (fridge, oven, etc)" }

func (kitchen) Components(area, norm string) haconfig.TemplateItem {
	title := haconfig.TitleCase(area)

	active := haconfig.BinarySensor{
		Name:        title + " Kitchen Appliance Active",
		UniqueID:    norm + "_kitchen_appliance_active",
		DeviceClass: "power",
		State: haconfig.Template(strings.Join([]string{
			"{% set oven_power = states('sensor.oven_power')|float(0) %}",
			"{% set dishwasher_power = states('sensor.dishwasher_power')|float(0) %}",
			"{{ oven_power > 50 or dishwasher_power > 50 }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("oven_power", "{{ states('sensor.oven_power')|float(0) }}").
			Add("dishwasher_power", "{{ states('sensor.dishwasher_power')|float(0) }}"),
	}

	energy := haconfig.Sensor{
		Name:     "Kitchen Appliance Energy Consumption",
		UniqueID: norm + "_kitchen_energy_consumption",
		Unit:     "W",
		State: haconfig.Template(strings.Join([]string{
			"{% set oven_power = states('sensor.oven_power')|float(0) %}",
			"{% set dishwasher_power = states('sensor.dishwasher_power')|float(0) %}",
			"{% set refrigerator_power = states('sensor.refrigerator_power')|float(0) %}",
			"{{ (oven_power + dishwasher_power + refrigerator_power)|round(2) }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("refrigerator_temp", "{{ states('sensor.refrigerator_temperature')|float(0) }}").
			Add("oven_state", "{{ states('sensor.oven_state') }}").
			Add("dishwasher_state", "{{ states('sensor.dishwasher_state') }}"),
	}

	fan := haconfig.NewFan("kitchen_ventilation", fanSpec(
		"Kitchen Ventilation",
		"switch.kitchen_fan",
		"sensor.kitchen_fan_speed",
		"input_number.kitchen_fan_speed",
	))

	status := haconfig.Sensor{
		Name:     title + " Kitchen Appliance Status",
		UniqueID: norm + "_kitchen_appliance_status",
		Unit:     "state",
		State: haconfig.Template(strings.Join([]string{
			"{% set oven_state = states('sensor.oven_state') %}",
			"{% set dishwasher_state = states('sensor.dishwasher_state') %}",
			"{% if oven_state == 'on' and dishwasher_state == 'on' %}high_activity{% elif oven_state == 'on' or dishwasher_state == 'on' %}moderate_activity{% else %}idle{% endif %}",
		}, "\n")),
	}

	return haconfig.TemplateItem{
		BinarySensor: []haconfig.BinarySensor{active},
		Sensor:       []haconfig.Sensor{energy, status},
		Fan:          []haconfig.Fan{fan},
	}
}

func (kitchen) Entities(norm string) []haconfig.EntitySuggestion {
	return []haconfig.EntitySuggestion{
		{Domain: "sensor", SuggestedID: norm + "_kitchen_power", Description: "Kitchen power sensor", Role: "kitchen_power"},
		{Domain: "binary_sensor", SuggestedID: norm + "_kitchen_active", Description: "Kitchen state sensor", Role: "kitchen_active"},
	}
}

func (kitchen) Inputs(area, norm string) haconfig.InputEntries {
	return haconfig.InputEntries{}
}
