// Package haconfig models the generated Home Assistant area configuration
// document and its YAML emission.
//
// Document layout:
//
//	<area name>:
//	    template:       # list of component groups (binary_sensor/sensor/fan)
//	    input_number:   # id -> slider helper
//	    input_boolean:  # id -> toggle helper
//
// Field order in the structs below is the YAML output order. Multi-line
// formula strings emit as block literal scalars.
package haconfig

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a Jinja2 formula string evaluated later by Home Assistant.
// Multi-line templates marshal in block literal style so the formula stays
// readable in the generated file.
type Template string

// MarshalYAML cleans the template text and picks the scalar style.
func (t Template) MarshalYAML() (any, error) {
	s := CleanTemplate(string(t))
	node := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: s,
	}
	if strings.Contains(s, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node, nil
}

// CleanTemplate strips stray wrapping quotes introduced by naive string
// construction and trims trailing whitespace from every line. The yaml
// encoder refuses literal style for lines with trailing spaces, so the trim
// is what keeps multi-line formulas in block form.
func CleanTemplate(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// Attribute is one named formula on a template component.
type Attribute struct {
	Key   string
	Value Template
}

// Attributes is an ordered attribute map. Order is construction order, which
// is also the YAML output order.
type Attributes []Attribute

// Add appends an attribute and returns the extended list.
func (a Attributes) Add(key string, value Template) Attributes {
	return append(a, Attribute{Key: key, Value: value})
}

// MarshalYAML emits the attributes as a mapping in list order.
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, attr := range a {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Key}
		val := &yaml.Node{}
		if err := val.Encode(attr.Value); err != nil {
			return nil, fmt.Errorf("encode attribute %q: %w", attr.Key, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML restores the attribute order from a YAML mapping.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes: expected mapping, got %v", node.Kind)
	}
	out := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, Attribute{
			Key:   node.Content[i].Value,
			Value: Template(node.Content[i+1].Value),
		})
	}
	*a = out
	return nil
}

// OrderedMap is a string-keyed map that remembers insertion order. The
// generated document keys input helpers by entity object id; emission order
// must match construction order for stable output.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set inserts or replaces a key. A replaced key keeps its original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get looks up a key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// MarshalYAML emits the map as a mapping in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		val := &yaml.Node{}
		if err := val.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", k, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML restores entries in document order.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("ordered map: expected mapping, got %v", node.Kind)
	}
	*m = OrderedMap[V]{values: make(map[string]V)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decode key %q: %w", node.Content[i].Value, err)
		}
		m.Set(node.Content[i].Value, v)
	}
	return nil
}

// BinarySensor is a template binary_sensor definition.
type BinarySensor struct {
	Name        string     `yaml:"name"`
	UniqueID    string     `yaml:"unique_id"`
	DeviceClass string     `yaml:"device_class,omitempty"`
	State       Template   `yaml:"state"`
	Attributes  Attributes `yaml:"attributes,omitempty"`
}

// Sensor is a template sensor definition.
type Sensor struct {
	Name        string     `yaml:"name"`
	UniqueID    string     `yaml:"unique_id"`
	State       Template   `yaml:"state"`
	DeviceClass string     `yaml:"device_class,omitempty"`
	StateClass  string     `yaml:"state_class,omitempty"`
	Unit        string     `yaml:"unit_of_measurement,omitempty"`
	Attributes  Attributes `yaml:"attributes,omitempty"`
}

// ServiceCall is a Home Assistant service invocation inside a template fan.
type ServiceCall struct {
	Service  string              `yaml:"service"`
	EntityID string              `yaml:"entity_id"`
	Data     map[string]Template `yaml:"data_template,omitempty"`
}

// FanSpec is one fan under a template fan platform block.
type FanSpec struct {
	FriendlyName  string      `yaml:"friendly_name"`
	ValueTemplate Template    `yaml:"value_template"`
	SpeedTemplate Template    `yaml:"speed_template"`
	TurnOn        ServiceCall `yaml:"turn_on"`
	TurnOff       ServiceCall `yaml:"turn_off"`
	SetSpeed      ServiceCall `yaml:"set_speed"`
	Speeds        []string    `yaml:"speeds"`
}

// Fan is a legacy template fan platform definition.
type Fan struct {
	Platform string               `yaml:"platform"`
	Fans     *OrderedMap[FanSpec] `yaml:"fans"`
}

// NewFan wraps a single fan spec in a platform block.
func NewFan(objectID string, spec FanSpec) Fan {
	fans := NewOrderedMap[FanSpec]()
	fans.Set(objectID, spec)
	return Fan{Platform: "template", Fans: fans}
}

// TemplateItem groups the template components contributed by one generator
// or device.
type TemplateItem struct {
	BinarySensor []BinarySensor `yaml:"binary_sensor,omitempty"`
	Sensor       []Sensor       `yaml:"sensor,omitempty"`
	Fan          []Fan          `yaml:"fan,omitempty"`
}

// Empty reports whether the item carries no components.
func (t TemplateItem) Empty() bool {
	return len(t.BinarySensor) == 0 && len(t.Sensor) == 0 && len(t.Fan) == 0
}

// AreaBody is everything under the area name key.
type AreaBody struct {
	Template     []TemplateItem            `yaml:"template"`
	InputNumber  *OrderedMap[InputNumber]  `yaml:"input_number"`
	InputBoolean *OrderedMap[InputBoolean] `yaml:"input_boolean"`
}

// AreaConfig is the complete generated document for one area.
type AreaConfig struct {
	Name string
	Body AreaBody
}

// MarshalYAML emits the single-key document {<area name>: <body>}.
func (c AreaConfig) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name}
	body := &yaml.Node{}
	if err := body.Encode(c.Body); err != nil {
		return nil, fmt.Errorf("encode area body: %w", err)
	}
	node.Content = append(node.Content, key, body)
	return node, nil
}

// Marshal renders the document with 2-space indentation.
func (c AreaConfig) Marshal() ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshal area config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return []byte(b.String()), nil
}

// Validate checks that every template item carries at least one component
// and that component names and unique ids are non-empty.
func (c AreaConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("area config: empty area name")
	}
	for i, item := range c.Body.Template {
		if item.Empty() {
			return fmt.Errorf("area config: template item %d has no components", i)
		}
		for _, bs := range item.BinarySensor {
			if bs.Name == "" || bs.UniqueID == "" {
				return fmt.Errorf("area config: binary_sensor missing name or unique_id in item %d", i)
			}
		}
		for _, s := range item.Sensor {
			if s.Name == "" || s.UniqueID == "" {
				return fmt.Errorf("area config: sensor missing name or unique_id in item %d", i)
			}
		}
	}
	return nil
}
