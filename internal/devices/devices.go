// Package devices holds the per-device-kind catalogs: template components,
// entity suggestions and input helpers for each supported kind of powered
// device. Catalogs are declarative; all logic lives in the generated
// templates.
package devices

import (
	"areagen/internal/haconfig"
)

// Device is the interface every device catalog implements.
type Device interface {
	// Name returns the kind's canonical short identifier (e.g. "computer").
	Name() string

	// Description is the human label used in the device survey.
	Description() string

	// Components returns the template components for the kind.
	Components(area, norm string) haconfig.TemplateItem

	// Entities returns the entity ids the kind implies, for confirmation.
	Entities(norm string) []haconfig.EntitySuggestion

	// Inputs returns the input helpers the kind contributes.
	Inputs(area, norm string) haconfig.InputEntries
}

// registry lists the supported kinds in survey and generation order.
var registry = []Device{
	computer{},
	tv{},
	appliance{},
	bathroom{},
	kitchen{},
}

// All returns the supported device kinds in catalog order.
func All() []Device {
	return append([]Device(nil), registry...)
}

// Lookup finds a device kind by name.
func Lookup(name string) (Device, bool) {
	for _, d := range registry {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// ComponentsFor generates the template components for every selected device
// kind, in selection order. Unknown kinds are skipped.
func ComponentsFor(f haconfig.Features) []haconfig.TemplateItem {
	var items []haconfig.TemplateItem
	for _, kind := range f.Devices {
		if d, ok := Lookup(kind); ok {
			if item := d.Components(f.AreaName, f.NormalizedName); !item.Empty() {
				items = append(items, item)
			}
		}
	}
	return items
}

// EntitiesFor collects the entity suggestions of every selected device kind.
func EntitiesFor(f haconfig.Features) []haconfig.EntitySuggestion {
	var suggestions []haconfig.EntitySuggestion
	for _, kind := range f.Devices {
		if d, ok := Lookup(kind); ok {
			suggestions = append(suggestions, d.Entities(f.NormalizedName)...)
		}
	}
	return suggestions
}

// InputsFor collects the input helpers of every selected device kind.
func InputsFor(f haconfig.Features) haconfig.InputEntries {
	var entries haconfig.InputEntries
	for _, kind := range f.Devices {
		if d, ok := Lookup(kind); ok {
			in := d.Inputs(f.AreaName, f.NormalizedName)
			entries.Numbers = append(entries.Numbers, in.Numbers...)
			entries.Booleans = append(entries.Booleans, in.Booleans...)
		}
	}
	return entries
}

// fanSpec builds the shared template fan shape: a switch-backed fan whose
// speed is proxied through an input_number.
func fanSpec(friendlyName, switchEntity, speedSensor, speedInput string) haconfig.FanSpec {
	return haconfig.FanSpec{
		FriendlyName:  friendlyName,
		ValueTemplate: haconfig.Template("{{ states('" + switchEntity + "') }}"),
		SpeedTemplate: haconfig.Template("{{ states('" + speedSensor + "') }}"),
		TurnOn: haconfig.ServiceCall{
			Service:  "switch.turn_on",
			EntityID: switchEntity,
		},
		TurnOff: haconfig.ServiceCall{
			Service:  "switch.turn_off",
			EntityID: switchEntity,
		},
		SetSpeed: haconfig.ServiceCall{
			Service:  "input_number.set_value",
			EntityID: speedInput,
			Data:     map[string]haconfig.Template{"value": "{{ speed }}"},
		},
		Speeds: []string{"low", "medium", "high"},
	}
}
