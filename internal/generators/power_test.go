package generators

import (
	"strings"
	"testing"

	"areagen/internal/haconfig"
)

func TestPowerComponents(t *testing.T) {
	tests := []struct {
		name    string
		devices []string
		keys    []string
	}{
		{
			name:    "computer",
			devices: []string{"computer"},
			keys:    []string{"pc", "monitors", "desk", "extras"},
		},
		{
			name:    "kitchen and tv",
			devices: []string{"kitchen", "tv"},
			keys:    []string{"kitchen_major", "kitchen_small", "tv", "entertainment", "extras"},
		},
		{
			name:    "duplicate kinds collapse",
			devices: []string{"tv", "tv"},
			keys:    []string{"tv", "entertainment", "extras"},
		},
		{
			name:    "unknown kind contributes nothing",
			devices: []string{"hot_tub"},
			keys:    nil,
		},
		{
			name:    "no devices",
			devices: nil,
			keys:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := PowerComponents(tt.devices)
			var keys []string
			for _, c := range components {
				keys = append(keys, c.Key)
			}
			if len(keys) != len(tt.keys) {
				t.Fatalf("keys = %v, want %v", keys, tt.keys)
			}
			for i := range keys {
				if keys[i] != tt.keys[i] {
					t.Errorf("key %d = %q, want %q", i, keys[i], tt.keys[i])
				}
			}
		})
	}
}

func TestPowerConfig(t *testing.T) {
	f := haconfig.Features{
		AreaName:        "Home Office",
		NormalizedName:  "home_office",
		PowerMonitoring: true,
		Devices:         []string{"computer"},
	}
	items := PowerConfig(f)
	if len(items) != 2 {
		t.Fatalf("got %d items, want power and energy sensors", len(items))
	}

	power := items[0].Sensor[0]
	if power.Name != "Home Office Total Power" {
		t.Errorf("power name = %q", power.Name)
	}
	if power.UniqueID != "home_office_total_power" {
		t.Errorf("power unique_id = %q", power.UniqueID)
	}
	if power.DeviceClass != "power" || power.StateClass != "measurement" || power.Unit != "W" {
		t.Errorf("power classing = %q/%q/%q", power.DeviceClass, power.StateClass, power.Unit)
	}
	state := string(power.State)
	for _, want := range []string{
		"'sensor.pc_power'",
		"'sensor.extras_power'",
		"{% for component in components %}",
		"{{ total.power|round(2) }}",
	} {
		if !strings.Contains(state, want) {
			t.Errorf("power state missing %q:\n%s", want, state)
		}
	}
	if len(power.Attributes) != 4 {
		t.Fatalf("power attributes = %+v", power.Attributes)
	}
	if power.Attributes[0].Key != "pc" || power.Attributes[3].Key != "extras" {
		t.Errorf("attribute order = %q .. %q", power.Attributes[0].Key, power.Attributes[3].Key)
	}

	energy := items[1].Sensor[0]
	if energy.UniqueID != "home_office_daily_energy" {
		t.Errorf("energy unique_id = %q", energy.UniqueID)
	}
	if energy.DeviceClass != "energy" || energy.StateClass != "total_increasing" || energy.Unit != "kWh" {
		t.Errorf("energy classing = %q/%q/%q", energy.DeviceClass, energy.StateClass, energy.Unit)
	}
	if !strings.Contains(string(energy.State), "{{ total.energy|round(3) }}") {
		t.Errorf("energy state:\n%s", energy.State)
	}
	if len(energy.Attributes) != 1 || energy.Attributes[0].Key != "last_reset" {
		t.Errorf("energy attributes = %+v", energy.Attributes)
	}
}

func TestPowerConfigNoComponents(t *testing.T) {
	f := haconfig.Features{
		AreaName:        "Hallway",
		NormalizedName:  "hallway",
		PowerMonitoring: true,
	}
	if items := PowerConfig(f); items != nil {
		t.Errorf("expected nil without components, got %+v", items)
	}
}
