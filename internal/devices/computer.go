package devices

import (
	"strings"

	"areagen/internal/haconfig"
)

// computer covers a PC/workstation setup with idle-time and power signals.
type computer struct{}

func (computer) Name() string        { return "computer" }
func (computer) Description() string { return "Computer/PC setup" }

func (computer) Components(area, norm string) haconfig.TemplateItem {
	title := haconfig.TitleCase(area)

	active := haconfig.BinarySensor{
		Name:        title + " PC Active",
		UniqueID:    norm + "_pc_active",
		DeviceClass: "power",
		State: haconfig.Template(strings.Join([]string{
			"{% set idle_time = states('sensor.pc_idle_time')|int(0) %}",
			"{% set power = states('sensor.pc_power')|float(0) %}",
			"{{ idle_time < 300 or power > 50 }}",
		}, "\n")),
		Attributes: haconfig.Attributes{}.
			Add("idle_time", "{{ states('sensor.pc_idle_time')|int(0) }}").
			Add("power_draw", "{{ states('sensor.pc_power')|float(0) }}").
			Add("apps_running", "{{ state_attr('sensor.pc_status', 'running_apps')|default([]) }}"),
	}

	status := haconfig.Sensor{
		Name:     title + " PC Status",
		UniqueID: norm + "_pc_status",
		Unit:     "state",
		State:    "{{ states('sensor.pc_state') }}",
		Attributes: haconfig.Attributes{}.
			Add("uptime", "{{ states('sensor.pc_uptime') }}").
			Add("cpu_usage", "{{ states('sensor.pc_cpu_usage') }}").
			Add("memory_usage", "{{ states('sensor.pc_memory_usage') }}").
			Add("gpu_temp", "{{ states('sensor.pc_gpu_temp') }}"),
	}

	return haconfig.TemplateItem{
		BinarySensor: []haconfig.BinarySensor{active},
		Sensor:       []haconfig.Sensor{status},
	}
}

func (computer) Entities(norm string) []haconfig.EntitySuggestion {
	return []haconfig.EntitySuggestion{
		{Domain: "sensor", SuggestedID: norm + "_pc_power", Description: "PC power sensor", Role: "pc_power"},
		{Domain: "binary_sensor", SuggestedID: norm + "_pc_active", Description: "PC state sensor", Role: "pc_active"},
	}
}

func (computer) Inputs(area, norm string) haconfig.InputEntries {
	return haconfig.InputEntries{
		Booleans: []haconfig.BoolEntry{{
			Key: norm + "_pc_power_management",
			Value: haconfig.InputBoolean{
				Name: haconfig.TitleCase(area) + " PC Power Management",
				Icon: "mdi:desktop-classic",
			},
		}},
	}
}
