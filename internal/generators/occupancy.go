package generators

// occupancy.go: weighted occupancy scoring for an area.
//
// Each enabled sensor or device contributes a weighted trigger. The state
// template accumulates trigger weights in a Jinja2 namespace and reports
// occupied when the total reaches the threshold. The manual override toggle
// outweighs everything else on its own.

import (
	"fmt"
	"strings"

	"areagen/internal/haconfig"
)

const (
	overrideWeight    = 5
	occupiedThreshold = 3
	overrideLabel     = "Manual Override"
)

// Trigger is one weighted occupancy signal.
type Trigger struct {
	EntityID    string
	Weight      int
	Description string
	Condition   string // entity state that counts as active
}

// OccupancyTriggers builds the ordered trigger list for an area. Trigger
// entity ids come from the confirmed entity ids where a stable role exists,
// with the conventional default as fallback.
func OccupancyTriggers(f haconfig.Features) []Trigger {
	area := f.NormalizedName
	ids := f.EntityIDs
	var triggers []Trigger

	if f.MotionSensor {
		triggers = append(triggers, Trigger{
			EntityID:    ids.Lookup("motion", "binary_sensor."+area+"_motion"),
			Weight:      2,
			Description: "Motion Detected",
			Condition:   "on",
		})
	}
	if f.DoorSensor {
		// A closed door is the occupancy hint, hence the "off" condition.
		triggers = append(triggers, Trigger{
			EntityID:    ids.Lookup("contact", "binary_sensor."+area+"_door_contact"),
			Weight:      1,
			Description: "Door Closed",
			Condition:   "off",
		})
	}
	if f.HasDevice("computer") {
		triggers = append(triggers, Trigger{
			EntityID:    ids.Lookup("pc_active", "binary_sensor."+area+"_pc_active"),
			Weight:      3,
			Description: "PC Active",
			Condition:   "on",
		})
	}
	if f.HasDevice("tv") {
		triggers = append(triggers, Trigger{
			EntityID:    ids.Lookup("tv_active", "binary_sensor."+area+"_tv_active"),
			Weight:      2,
			Description: "TV Active",
			Condition:   "on",
		})
	}
	if f.HasDevice("appliance") || f.HasDevice("bathroom") {
		// Appliance and bathroom share one device trigger; a confirmed
		// appliance id wins over a confirmed bathroom id.
		triggers = append(triggers, Trigger{
			EntityID: ids.Lookup("appliance_active",
				ids.Lookup("bathroom_active", "binary_sensor."+area+"_device_active")),
			Weight:      2,
			Description: "Device Active",
			Condition:   "on",
		})
	}
	return triggers
}

// OccupancyConfig generates the occupancy binary sensor for an area.
func OccupancyConfig(f haconfig.Features) []haconfig.TemplateItem {
	triggers := OccupancyTriggers(f)
	override := f.OverrideEntity()

	name := "Occupancy"
	if f.AreaName != "" {
		name = haconfig.TitleCase(f.AreaName) + " Occupancy"
	}

	sensor := haconfig.BinarySensor{
		Name:        name,
		UniqueID:    f.NormalizedName + "_occupancy",
		DeviceClass: "occupancy",
		State:       occupancyStateTemplate(triggers, override),
		Attributes: haconfig.Attributes{}.
			Add("confidence_score", confidenceScoreTemplate(triggers, override)).
			Add("active_triggers", activeTriggersTemplate(triggers, override)),
	}

	return []haconfig.TemplateItem{{BinarySensor: []haconfig.BinarySensor{sensor}}}
}

// occupancyStateTemplate accumulates trigger weights and compares against
// the occupancy threshold.
func occupancyStateTemplate(triggers []Trigger, overrideID string) haconfig.Template {
	lines := scoreLines(triggers, overrideID)
	lines = append(lines, fmt.Sprintf("{{ scores.total >= %d }}", occupiedThreshold))
	return haconfig.Template(strings.Join(lines, "\n"))
}

// confidenceScoreTemplate accumulates the same weights but reports the raw
// total for the confidence attribute.
func confidenceScoreTemplate(triggers []Trigger, overrideID string) haconfig.Template {
	lines := scoreLines(triggers, overrideID)
	lines = append(lines, "{{ scores.total }}")
	return haconfig.Template(strings.Join(lines, "\n"))
}

// scoreLines emits the shared namespace accumulation prologue.
func scoreLines(triggers []Trigger, overrideID string) []string {
	lines := []string{"{% set scores = namespace(total=0) %}"}
	for _, t := range triggers {
		lines = append(lines, fmt.Sprintf(
			"{%% if is_state('%s', '%s') %%}  {%% set scores.total = scores.total + %d %%}{%% endif %%}",
			t.EntityID, t.Condition, t.Weight))
	}
	lines = append(lines, fmt.Sprintf(
		"{%% if is_state('%s', 'on') %%}  {%% set scores.total = scores.total + %d %%}{%% endif %%}",
		overrideID, overrideWeight))
	return lines
}

// activeTriggersTemplate collects the descriptions of every firing trigger.
func activeTriggersTemplate(triggers []Trigger, overrideID string) haconfig.Template {
	lines := []string{"{% set triggers = [] %}"}
	for _, t := range triggers {
		lines = append(lines, fmt.Sprintf(
			"{%% if is_state('%s', '%s') %%}  {%% set triggers = triggers + ['%s'] %%}{%% endif %%}",
			t.EntityID, t.Condition, t.Description))
	}
	lines = append(lines, fmt.Sprintf(
		"{%% if is_state('%s', 'on') %%}  {%% set triggers = triggers + ['%s'] %%}{%% endif %%}",
		overrideID, overrideLabel))
	lines = append(lines, "{{ triggers|join(', ') }}")
	return haconfig.Template(strings.Join(lines, "\n"))
}
