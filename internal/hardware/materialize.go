package hardware

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrMalformedDocument marks input that is structurally unusable: not
	// a JSON object, or a children entry of the wrong JSON type. Fatal
	// for the subtree being materialized.
	ErrMalformedDocument = errors.New("malformed hardware document")

	// ErrUnknownClass marks an id prefix outside the taxonomy. The
	// materializer itself never fails on it; it falls back to an
	// unclassified node and logs a warning.
	ErrUnknownClass = errors.New("unknown hardware class")
)

// Decode parses one raw JSON document into the ground-truth mapping the
// materializer consumes. The input must already be banner-free.
func Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

// Materialize converts one raw object into a typed node, resolving the
// class from the id prefix and recursing into children. An object without
// an id stays an unclassified leaf carrying only raw data. The input
// mapping is deep-copied first, so later mutation of the argument cannot
// reach the tree.
func Materialize(raw map[string]any) (*Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformedDocument)
	}
	return materializeChild(raw)
}

// MaterializeComputer converts one complete raw document into the typed
// tree. The top-level object is always the computer root (its id is the
// hostname, not a taxonomy prefix); children dispatch by id as usual.
func MaterializeComputer(raw map[string]any) (*Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformedDocument)
	}
	return materialize(raw, ClassComputer)
}

// MaterializeDocument decodes data and materializes it as a full
// computer document.
func MaterializeDocument(data []byte) (*Node, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return MaterializeComputer(doc)
}

// materialize builds one node of a known class and recurses into its
// children. Children resolve their own class from their id; a child
// without an id stays a generic leaf, an unknown prefix becomes an
// unclassified node with all raw data retained.
func materialize(raw map[string]any, class Class) (*Node, error) {
	n := &Node{
		class:  class,
		raw:    copyMap(raw),
		fields: make(map[string]any),
	}

	for name, value := range n.raw {
		if isScalar(value) && declares(class, name) {
			n.fields[name] = value
		}
	}

	// configuration and capabilities are wrapped only when they are
	// objects; any other shape is a data anomaly, not a structural error,
	// and stays reachable through the raw mapping alone.
	if cfg, ok := n.raw["configuration"]; ok {
		if obj, ok := cfg.(map[string]any); ok {
			n.configuration = Configuration(copyMap(obj))
		} else {
			log.WithField("id", n.ID()).Warn("configuration is not an object, keeping it raw-only")
		}
	}

	if caps, ok := n.raw["capabilities"]; ok {
		if obj, ok := caps.(map[string]any); ok {
			n.capabilities = Capabilities(copyMap(obj))
			if class == ClassCPU {
				n.cpu = NewCPUCapabilities(obj)
			}
		} else {
			log.WithField("id", n.ID()).Warn("capabilities is not an object, keeping it raw-only")
		}
	}

	if kids, ok := n.raw["children"]; ok {
		arr, ok := kids.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: children of %q is not an array", ErrMalformedDocument, n.ID())
		}
		n.children = make([]*Node, 0, len(arr))
		for i, elem := range arr {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: child %d of %q is not an object", ErrMalformedDocument, i, n.ID())
			}
			child, err := materializeChild(obj)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		}
	}

	n.report = Check(n)
	if n.report.Count > 0 {
		log.WithFields(log.Fields{
			"id":     n.ID(),
			"class":  n.class,
			"errors": n.report.Count,
		}).Warn("integrity check found mismatched fields")
	}

	return n, nil
}

func materializeChild(obj map[string]any) (*Node, error) {
	id, _ := obj["id"].(string)
	if id == "" {
		// No id, no dispatch: the child is kept as an unclassified leaf
		// holding only raw data.
		return materialize(obj, ClassUnclassified)
	}

	class, err := Classify(id)
	if err != nil {
		log.WithField("id", id).Warn("unrecognized hardware class, keeping node unclassified")
	}
	return materialize(obj, class)
}
