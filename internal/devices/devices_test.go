package devices

import (
	"strings"
	"testing"

	"areagen/internal/haconfig"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{"computer", "tv", "appliance", "bathroom", "kitchen"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("got %d kinds, want %d", len(all), len(want))
	}
	for i, d := range all {
		if d.Name() != want[i] {
			t.Errorf("kind %d = %q, want %q", i, d.Name(), want[i])
		}
		if d.Description() == "" {
			t.Errorf("kind %q has no description", d.Name())
		}
	}
}

func TestLookup(t *testing.T) {
	if d, ok := Lookup("tv"); !ok || d.Name() != "tv" {
		t.Errorf("Lookup(tv) = %v, %v", d, ok)
	}
	if _, ok := Lookup("jacuzzi"); ok {
		t.Error("Lookup(jacuzzi) should miss")
	}
}

func testFeatures(kinds ...string) haconfig.Features {
	return haconfig.Features{
		AreaName:       "Game Room",
		NormalizedName: "game_room",
		Devices:        kinds,
	}
}

func TestComponentsFor(t *testing.T) {
	items := ComponentsFor(testFeatures("computer", "tv", "unknown"))
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (unknown skipped)", len(items))
	}

	pc := items[0].BinarySensor[0]
	if pc.UniqueID != "game_room_pc_active" {
		t.Errorf("pc unique_id = %q", pc.UniqueID)
	}
	if !strings.Contains(string(pc.State), "idle_time < 300 or power > 50") {
		t.Errorf("pc active state:\n%s", pc.State)
	}

	tvItem := items[1]
	if tvItem.BinarySensor[0].Name != "Game Room TV Active" {
		t.Errorf("tv name = %q", tvItem.BinarySensor[0].Name)
	}
	if len(tvItem.Sensor) != 2 {
		t.Fatalf("tv sensors = %+v", tvItem.Sensor)
	}
	powerState := tvItem.Sensor[1]
	if !strings.Contains(string(powerState.State), "{% if power > 50 %}on{% elif power > 10 %}standby{% else %}off{% endif %}") {
		t.Errorf("tv power state:\n%s", powerState.State)
	}
}

func TestApplianceComponents(t *testing.T) {
	item := appliance{}.Components("Laundry", "laundry")

	active := item.BinarySensor[0]
	if active.UniqueID != "laundry_generic_active" || active.DeviceClass != "running" {
		t.Errorf("active = %+v", active)
	}
	if item.Sensor[0].UniqueID != "laundry_generic_state" {
		t.Errorf("state unique_id = %q", item.Sensor[0].UniqueID)
	}

	if len(item.Fan) != 1 {
		t.Fatalf("fans = %+v", item.Fan)
	}
	fan := item.Fan[0]
	if fan.Platform != "template" {
		t.Errorf("fan platform = %q", fan.Platform)
	}
	spec, ok := fan.Fans.Get("laundry_generic_fan")
	if !ok {
		t.Fatalf("fan keys = %v", fan.Fans.Keys())
	}
	if spec.TurnOn.Service != "switch.turn_on" || spec.TurnOn.EntityID != "switch.laundry_generic_fan" {
		t.Errorf("turn_on = %+v", spec.TurnOn)
	}
	if spec.SetSpeed.Service != "input_number.set_value" {
		t.Errorf("set_speed = %+v", spec.SetSpeed)
	}
	if len(spec.Speeds) != 3 || spec.Speeds[1] != "medium" {
		t.Errorf("speeds = %v", spec.Speeds)
	}
}

func TestBathroomComponents(t *testing.T) {
	item := bathroom{}.Components("Main Bath", "main_bath")

	if item.BinarySensor[0].DeviceClass != "moisture" {
		t.Errorf("alert class = %q", item.BinarySensor[0].DeviceClass)
	}
	if !strings.Contains(string(item.BinarySensor[0].State), "{{ humidity > 70 }}") {
		t.Errorf("alert state:\n%s", item.BinarySensor[0].State)
	}
	if _, ok := item.Fan[0].Fans.Get("bathroom_fan"); !ok {
		t.Errorf("fan keys = %v", item.Fan[0].Fans.Keys())
	}
	// Must not shadow the climate-level humidity change sensor.
	if got := item.Sensor[0].UniqueID; got != "main_bath_bathroom_humidity_change" {
		t.Errorf("humidity change unique_id = %q", got)
	}
	comfort := item.Sensor[1]
	if !strings.Contains(string(comfort.State), "uncomfortable") {
		t.Errorf("comfort state:\n%s", comfort.State)
	}
}

func TestKitchenComponents(t *testing.T) {
	item := kitchen{}.Components("Kitchen", "kitchen")

	if !strings.Contains(string(item.BinarySensor[0].State), "oven_power > 50 or dishwasher_power > 50") {
		t.Errorf("active state:\n%s", item.BinarySensor[0].State)
	}
	energy := item.Sensor[0]
	if !strings.Contains(string(energy.State), "(oven_power + dishwasher_power + refrigerator_power)|round(2)") {
		t.Errorf("energy state:\n%s", energy.State)
	}
	if _, ok := item.Fan[0].Fans.Get("kitchen_ventilation"); !ok {
		t.Errorf("fan keys = %v", item.Fan[0].Fans.Keys())
	}
	status := item.Sensor[1]
	if !strings.Contains(string(status.State), "high_activity") {
		t.Errorf("status state:\n%s", status.State)
	}
}

func TestEntitiesFor(t *testing.T) {
	suggestions := EntitiesFor(testFeatures("computer", "kitchen"))
	want := []struct{ id, role string }{
		{"game_room_pc_power", "pc_power"},
		{"game_room_pc_active", "pc_active"},
		{"game_room_kitchen_power", "kitchen_power"},
		{"game_room_kitchen_active", "kitchen_active"},
	}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(want))
	}
	for i, w := range want {
		if suggestions[i].SuggestedID != w.id {
			t.Errorf("suggestion %d = %q, want %q", i, suggestions[i].SuggestedID, w.id)
		}
		if suggestions[i].RoleKey() != w.role {
			t.Errorf("suggestion %d role = %q, want %q", i, suggestions[i].RoleKey(), w.role)
		}
	}
}

func TestInputsFor(t *testing.T) {
	in := InputsFor(testFeatures("computer", "tv", "appliance"))

	var boolKeys []string
	for _, b := range in.Booleans {
		boolKeys = append(boolKeys, b.Key)
	}
	wantBools := []string{
		"game_room_pc_power_management",
		"game_room_tv_power_management",
		"game_room_appliance_monitoring",
	}
	if len(boolKeys) != len(wantBools) {
		t.Fatalf("boolean keys = %v", boolKeys)
	}
	for i, w := range wantBools {
		if boolKeys[i] != w {
			t.Errorf("boolean %d = %q, want %q", i, boolKeys[i], w)
		}
	}

	if len(in.Numbers) != 1 || in.Numbers[0].Key != "game_room_appliance_power_threshold" {
		t.Fatalf("number entries = %+v", in.Numbers)
	}
	n := in.Numbers[0].Value
	if n.Min != 50 || n.Max != 2000 || n.Step != 50 || n.Initial != 200 {
		t.Errorf("threshold range = %+v", n)
	}
}

func TestInputsForEmptyKinds(t *testing.T) {
	in := InputsFor(testFeatures("bathroom", "kitchen"))
	if len(in.Numbers) != 0 || len(in.Booleans) != 0 {
		t.Errorf("expected no inputs, got %+v", in)
	}
}
