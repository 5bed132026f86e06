// Package generators builds the Jinja2-style template components of an area
// configuration: occupancy scoring, power aggregation and climate
// monitoring. Generators only assemble strings; evaluation happens inside
// Home Assistant.
package generators

import (
	"fmt"

	"areagen/internal/haconfig"
)

// StateTemplate returns a template reading an entity's state, optionally
// piped through a filter ("float(0)", "int(0)", ...).
func StateTemplate(entityID, filter string) haconfig.Template {
	expr := fmt.Sprintf("states('%s')", entityID)
	if filter != "" {
		expr += "|" + filter
	}
	return haconfig.Template("{{ " + expr + " }}")
}

// AttrTemplate returns a template reading an entity's attribute, optionally
// piped through a filter.
func AttrTemplate(entityID, attribute, filter string) haconfig.Template {
	expr := fmt.Sprintf("state_attr('%s', '%s')", entityID, attribute)
	if filter != "" {
		expr += "|" + filter
	}
	return haconfig.Template("{{ " + expr + " }}")
}

// IsStateTemplate returns a template testing an entity against a state.
func IsStateTemplate(entityID, state string) haconfig.Template {
	return haconfig.Template(fmt.Sprintf("{{ is_state('%s', '%s') }}", entityID, state))
}

// ClassInfo carries the sensor metadata implied by a measurement kind.
type ClassInfo struct {
	DeviceClass string
	StateClass  string
	Unit        string
}

// deviceClasses maps measurement kinds to their Home Assistant metadata.
var deviceClasses = map[string]ClassInfo{
	"temperature": {DeviceClass: "temperature", StateClass: "measurement", Unit: "°C"},
	"humidity":    {DeviceClass: "humidity", StateClass: "measurement", Unit: "%"},
	"power":       {DeviceClass: "power", StateClass: "measurement", Unit: "W"},
	"energy":      {DeviceClass: "energy", StateClass: "total_increasing", Unit: "kWh"},
	"current":     {DeviceClass: "current", StateClass: "measurement", Unit: "A"},
	"voltage":     {DeviceClass: "voltage", StateClass: "measurement", Unit: "V"},
	"illuminance": {DeviceClass: "illuminance", StateClass: "measurement", Unit: "lx"},
}

// ClassInfoFor returns the metadata for a measurement kind.
func ClassInfoFor(kind string) (ClassInfo, bool) {
	info, ok := deviceClasses[kind]
	return info, ok
}

// classify fills a sensor's device_class, state_class and unit from the
// measurement kind table. Unknown kinds leave the sensor untouched.
func classify(s haconfig.Sensor, kind string) haconfig.Sensor {
	if info, ok := deviceClasses[kind]; ok {
		s.DeviceClass = info.DeviceClass
		s.StateClass = info.StateClass
		s.Unit = info.Unit
	}
	return s
}
