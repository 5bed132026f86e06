package haconfig

import (
	"fmt"
	"strings"
)

// LightingDefaults holds the default smart lighting answers.
type LightingDefaults struct {
	Brightness int    // percent, 0-100
	ColorTemp  string // "warm" | "cool" | "neutral"
	Transition int    // seconds
}

// EntityIDs maps a logical role name ("motion", "override", "climate") to a
// confirmed Home Assistant entity id. Built once during the survey and
// read-only afterwards.
type EntityIDs map[string]string

// Lookup returns the confirmed entity id for role, or fallback when the role
// was never confirmed.
func (e EntityIDs) Lookup(role, fallback string) string {
	if id, ok := e[role]; ok && id != "" {
		return id
	}
	return fallback
}

// Features is the flat record of everything the survey learned about an area.
type Features struct {
	AreaName          string // display name as entered, e.g. "Living Room"
	NormalizedName    string // lowercase underscored, e.g. "living_room"
	MotionSensor      bool
	DoorSensor        bool
	WindowSensor      bool
	TemperatureSensor bool
	HumiditySensor    bool
	SmartLighting     bool
	Lighting          *LightingDefaults // nil unless SmartLighting
	PowerMonitoring   bool
	Devices           []string // device kinds in catalog order
	ClimateControl    bool
	EntityIDs         EntityIDs
}

// HasDevice reports whether the named device kind was selected.
func (f Features) HasDevice(kind string) bool {
	for _, d := range f.Devices {
		if d == kind {
			return true
		}
	}
	return false
}

// OverrideEntity returns the confirmed manual occupancy override entity id.
func (f Features) OverrideEntity() string {
	return f.EntityIDs.Lookup("override", "input_boolean."+f.NormalizedName+"_occupied_override")
}

// EntitySuggestion is one proposed entity id awaiting user confirmation.
type EntitySuggestion struct {
	Domain      string // "binary_sensor", "sensor", "climate", ...
	SuggestedID string // object id without the domain prefix
	Description string // human label used in the prompt
	Role        string // logical role; derived from SuggestedID when empty
}

// Default returns the full default entity id, domain.object_id.
func (s EntitySuggestion) Default() string {
	return s.Domain + "." + strings.ToLower(s.SuggestedID)
}

// RoleKey returns the logical role name for a suggestion. When no explicit
// role is set it falls back to the last underscore-separated segment of the
// suggested id ("living_room_pc_power" → "power"). Collisions are resolved
// by the caller via UniqueRole.
func (s EntitySuggestion) RoleKey() string {
	if s.Role != "" {
		return s.Role
	}
	parts := strings.Split(s.SuggestedID, "_")
	return parts[len(parts)-1]
}

// UniqueRole dedupes role against taken, appending _1, _2, ... as needed,
// and marks the result as taken.
func UniqueRole(role string, taken map[string]bool) string {
	key := role
	for n := 1; taken[key]; n++ {
		key = fmt.Sprintf("%s_%d", role, n)
	}
	taken[key] = true
	return key
}

// NormalizeAreaName converts a display name into the identifier used in
// entity ids and file names: lowercase with runs of spaces collapsed to
// single underscores.
func NormalizeAreaName(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "_")
}

// TitleCase capitalizes the first letter of each space- or
// underscore-separated word, leaving separators intact. Used for friendly
// names ("living room" → "Living Room").
func TitleCase(s string) string {
	var b strings.Builder
	startWord := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '_':
			startWord = true
			b.WriteRune(r)
		case startWord:
			b.WriteString(strings.ToUpper(string(r)))
			startWord = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateEntityID checks a user-supplied entity id against the expected
// domain: must contain a dot and start with "<domain>.".
func ValidateEntityID(domain, id string) error {
	if !strings.Contains(id, ".") {
		return fmt.Errorf("invalid format, must be %s.entity_id", domain)
	}
	if prefix := strings.SplitN(id, ".", 2)[0]; prefix != domain {
		return fmt.Errorf("invalid domain, must start with %s.", domain)
	}
	return nil
}

// NormalizeEntityID lowercases a user-supplied entity id and strips wrapping
// quotes pasted in from elsewhere.
func NormalizeEntityID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.Trim(id, `"'`)
	return strings.ToLower(id)
}

// ObjectID returns the part after the first dot of an entity id, or the
// whole string when there is none.
func ObjectID(entityID string) string {
	if i := strings.IndexByte(entityID, '.'); i >= 0 {
		return entityID[i+1:]
	}
	return entityID
}
