package hardware

// Configuration holds the free-form key/value operational parameters of a
// node (driver, latency, ...). Values are scalars only.
type Configuration map[string]any

// Get returns the value for name, or nil when absent.
func (c Configuration) Get(name string) any {
	if c == nil {
		return nil
	}
	return c[name]
}

// Capabilities holds the free-form capability flags of a node. Values are
// either booleans or descriptive strings.
type Capabilities map[string]any

// Get returns the value for name, or nil when absent.
func (c Capabilities) Get(name string) any {
	if c == nil {
		return nil
	}
	return c[name]
}

// Node is one materialized hardware component. It is built once from one
// raw lshw JSON object and never mutated afterwards; the original object
// is retained as the ground truth for everything not promoted to a named
// field.
type Node struct {
	class  Class
	fields map[string]any
	raw    map[string]any

	configuration Configuration
	capabilities  Capabilities
	cpu           *CPUCapabilities

	children []*Node
	report   Report
}

// Class returns the node's resolved hardware class.
func (n *Node) Class() Class { return n.class }

// ID returns the raw id string, e.g. "cpu:0". Empty when the source
// object carried no id.
func (n *Node) ID() string {
	s, _ := n.fields["id"].(string)
	if s == "" {
		s, _ = n.raw["id"].(string)
	}
	return s
}

// Handle returns the opaque hardware handle string, if any.
func (n *Node) Handle() string {
	s, _ := n.raw["handle"].(string)
	return s
}

// Field returns the value of a declared named field, or nil when the
// field is not declared for this class or absent from the source object.
func (n *Node) Field(name string) any {
	return n.fields[name]
}

// Attribute returns the value of any attribute present in the raw source
// object, named field or not. Container-valued attributes are returned as
// deep copies so the ground truth cannot be mutated through them.
func (n *Node) Attribute(name string) any {
	v, ok := n.raw[name]
	if !ok {
		return nil
	}
	return copyValue(v)
}

// RawAttributes returns a deep copy of the complete original JSON object.
func (n *Node) RawAttributes() map[string]any {
	return copyMap(n.raw)
}

// Configuration returns the node's configuration mapping, or nil.
func (n *Node) Configuration() Configuration { return n.configuration }

// Capabilities returns the node's generic capability mapping, or nil.
func (n *Node) Capabilities() Capabilities { return n.capabilities }

// CPU returns the specialized capability schema for cpu-class nodes, and
// nil for every other class.
func (n *Node) CPU() *CPUCapabilities { return n.cpu }

// Children returns the node's children in source-document order. The
// returned slice is shared; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Report returns the integrity report recorded at construction time.
func (n *Node) Report() Report { return n.report }

// copyMap deep-copies a decoded JSON object.
func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copySlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		return copySlice(t)
	default:
		return v
	}
}

// isScalar reports whether a decoded JSON value is neither an object nor
// an array. Only scalars are promoted to named fields.
func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}
