package haconfig

// inputs.go: input_number / input_boolean helper generation.
//
// Every enabled feature contributes fixed-range helpers the generated
// templates and downstream automations can reference. Ranges, icons and
// initial values are part of the tool's contract with those automations.

// InputNumber is a slider helper declaration.
type InputNumber struct {
	Name    string  `yaml:"name"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Unit    string  `yaml:"unit_of_measurement"`
	Icon    string  `yaml:"icon"`
	Initial float64 `yaml:"initial"`
}

// InputBoolean is a toggle helper declaration.
type InputBoolean struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// NumberEntry pairs an input_number with its object id key.
type NumberEntry struct {
	Key   string
	Value InputNumber
}

// BoolEntry pairs an input_boolean with its object id key.
type BoolEntry struct {
	Key   string
	Value InputBoolean
}

// InputEntries collects helper declarations contributed by device catalogs.
type InputEntries struct {
	Numbers  []NumberEntry
	Booleans []BoolEntry
}

// InputControls holds the two helper maps of the generated document.
type InputControls struct {
	Numbers  *OrderedMap[InputNumber]
	Booleans *OrderedMap[InputBoolean]
}

// BuildInputControls generates the input helper maps for an area. Device
// catalogs contribute their own helpers through device, spliced in after the
// feature-level sliders so the output groups an area's controls predictably.
func BuildInputControls(f Features, device InputEntries) InputControls {
	title := TitleCase(f.AreaName)
	norm := f.NormalizedName

	numbers := NewOrderedMap[InputNumber]()
	booleans := NewOrderedMap[InputBoolean]()

	if f.PowerMonitoring {
		numbers.Set(norm+"_power_threshold", InputNumber{
			Name:    title + " Power Alert Threshold",
			Min:     100,
			Max:     1000,
			Step:    50,
			Unit:    "W",
			Icon:    "mdi:flash-alert",
			Initial: 400,
		})
	}

	if f.ClimateControl {
		numbers.Set(norm+"_temp_threshold", InputNumber{
			Name:    title + " Temperature Threshold",
			Min:     19,
			Max:     25,
			Step:    0.5,
			Unit:    "°C",
			Icon:    "mdi:thermometer",
			Initial: 23,
		})
	}

	if f.SmartLighting {
		brightness, transition := 50, 1
		if f.Lighting != nil {
			brightness = f.Lighting.Brightness
			transition = f.Lighting.Transition
		}
		numbers.Set(norm+"_light_brightness", InputNumber{
			Name:    title + " Light Brightness",
			Min:     0,
			Max:     100,
			Step:    5,
			Unit:    "%",
			Icon:    "mdi:brightness-6",
			Initial: float64(brightness),
		})
		numbers.Set(norm+"_light_transition", InputNumber{
			Name:    title + " Light Transition Time",
			Min:     0,
			Max:     10,
			Step:    0.5,
			Unit:    "s",
			Icon:    "mdi:transition",
			Initial: float64(transition),
		})
		booleans.Set(norm+"_light_color_mode", InputBoolean{
			Name: title + " Light Color Mode",
			Icon: "mdi:palette",
		})
	}

	for _, e := range device.Numbers {
		numbers.Set(e.Key, e.Value)
	}
	for _, e := range device.Booleans {
		booleans.Set(e.Key, e.Value)
	}

	// The override toggle is keyed by the object id of the confirmed entity
	// so the occupancy templates and the helper declaration stay in sync.
	overrideID := f.OverrideEntity()
	booleans.Set(ObjectID(overrideID), InputBoolean{
		Name: title + " Manual Occupancy Override",
		Icon: "mdi:account-check",
	})
	booleans.Set(norm+"_sleep_mode", InputBoolean{
		Name: title + " Sleep Mode",
		Icon: "mdi:power-sleep",
	})
	booleans.Set(norm+"_automations", InputBoolean{
		Name: title + " Automations",
		Icon: "mdi:robot",
	})

	if f.HumiditySensor {
		numbers.Set(norm+"_humidity_threshold", InputNumber{
			Name:    title + " Humidity Threshold",
			Min:     30,
			Max:     80,
			Step:    1,
			Unit:    "%",
			Icon:    "mdi:water-percent",
			Initial: 60,
		})
	}

	return InputControls{Numbers: numbers, Booleans: booleans}
}

