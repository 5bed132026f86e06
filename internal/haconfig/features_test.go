package haconfig

import "testing"

func TestNormalizeAreaName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Office", "office"},
		{"Living Room", "living_room"},
		{"  Guest   Bedroom  ", "guest_bedroom"},
		{"kitchen", "kitchen"},
	}
	for _, tt := range tests {
		if got := NormalizeAreaName(tt.in); got != tt.want {
			t.Errorf("NormalizeAreaName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"living room", "Living Room"},
		{"living_room", "Living_Room"},
		{"office", "Office"},
		{"", ""},
		{"Guest Bedroom", "Guest Bedroom"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntitySuggestionRoleKey(t *testing.T) {
	tests := []struct {
		name string
		s    EntitySuggestion
		want string
	}{
		{
			name: "explicit role wins",
			s:    EntitySuggestion{SuggestedID: "living_room", Role: "climate"},
			want: "climate",
		},
		{
			name: "derived from last segment",
			s:    EntitySuggestion{SuggestedID: "living_room_pc_power"},
			want: "power",
		},
		{
			name: "single segment",
			s:    EntitySuggestion{SuggestedID: "office"},
			want: "office",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.RoleKey(); got != tt.want {
				t.Errorf("RoleKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueRole(t *testing.T) {
	taken := make(map[string]bool)
	if got := UniqueRole("power", taken); got != "power" {
		t.Errorf("first = %q, want power", got)
	}
	if got := UniqueRole("power", taken); got != "power_1" {
		t.Errorf("second = %q, want power_1", got)
	}
	if got := UniqueRole("power", taken); got != "power_2" {
		t.Errorf("third = %q, want power_2", got)
	}
}

func TestEntitySuggestionDefault(t *testing.T) {
	s := EntitySuggestion{Domain: "binary_sensor", SuggestedID: "Office_Motion"}
	if got := s.Default(); got != "binary_sensor.office_motion" {
		t.Errorf("Default() = %q", got)
	}
}

func TestValidateEntityID(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		id      string
		wantErr bool
	}{
		{"valid", "sensor", "sensor.office_temperature", false},
		{"missing dot", "sensor", "office_temperature", true},
		{"wrong domain", "sensor", "binary_sensor.office_motion", true},
		{"valid input_boolean", "input_boolean", "input_boolean.office_override", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityID(tt.domain, tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntityID(%q, %q) error = %v, wantErr %v",
					tt.domain, tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEntityID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{` "sensor.Office_Temp" `, "sensor.office_temp"},
		{`'sensor.x'`, "sensor.x"},
		{"SENSOR.X", "sensor.x"},
	}
	for _, tt := range tests {
		if got := NormalizeEntityID(tt.in); got != tt.want {
			t.Errorf("NormalizeEntityID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObjectID(t *testing.T) {
	if got := ObjectID("input_boolean.office_override"); got != "office_override" {
		t.Errorf("ObjectID = %q", got)
	}
	if got := ObjectID("no_domain"); got != "no_domain" {
		t.Errorf("ObjectID without dot = %q", got)
	}
}

func TestEntityIDsLookup(t *testing.T) {
	ids := EntityIDs{"motion": "binary_sensor.hall_motion", "empty": ""}
	if got := ids.Lookup("motion", "fallback"); got != "binary_sensor.hall_motion" {
		t.Errorf("confirmed lookup = %q", got)
	}
	if got := ids.Lookup("missing", "fallback"); got != "fallback" {
		t.Errorf("missing lookup = %q", got)
	}
	if got := ids.Lookup("empty", "fallback"); got != "fallback" {
		t.Errorf("empty lookup = %q", got)
	}
}

func TestFeaturesHelpers(t *testing.T) {
	f := Features{
		NormalizedName: "office",
		Devices:        []string{"computer", "tv"},
		EntityIDs:      EntityIDs{"override": "input_boolean.desk_override"},
	}
	if !f.HasDevice("tv") || f.HasDevice("kitchen") {
		t.Error("HasDevice misreported")
	}
	if got := f.OverrideEntity(); got != "input_boolean.desk_override" {
		t.Errorf("OverrideEntity = %q", got)
	}
	f.EntityIDs = nil
	if got := f.OverrideEntity(); got != "input_boolean.office_occupied_override" {
		t.Errorf("OverrideEntity fallback = %q", got)
	}
}
