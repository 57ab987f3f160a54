// Package query searches the raw hardware document directly, without
// going through the typed tree. The document is hierarchical, so every
// attribute name can occur at many depths; results carry the full dotted
// path to each occurrence.
package query

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Occurrence is one place in the document where an attribute was found.
type Occurrence struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Get resolves one dotted path (gjson syntax, e.g.
// "children.0.children.2.product") against the document.
func Get(doc []byte, path string) (string, bool) {
	r := gjson.GetBytes(doc, path)
	return r.String(), r.Exists()
}

// FindAttribute scans the whole document for every occurrence of the
// named attribute, at any depth, in document order.
func FindAttribute(doc []byte, name string) []Occurrence {
	var out []Occurrence
	walk("", gjson.ParseBytes(doc), func(path, key string, value gjson.Result) {
		if key == name {
			out = append(out, Occurrence{Path: path, Value: value.String()})
		}
	})
	return out
}

// FindValue scans for occurrences of the named attribute holding exactly
// the given value (compared by string form).
func FindValue(doc []byte, name, value string) []Occurrence {
	var out []Occurrence
	for _, occ := range FindAttribute(doc, name) {
		if occ.Value == value {
			out = append(out, occ)
		}
	}
	return out
}

// Index builds a value-to-paths index over one attribute name, the
// hash-lookup structure for repeated exact-match queries. Fuzzy matching
// still needs a scan of the key set.
func Index(doc []byte, name string) map[string][]string {
	idx := make(map[string][]string)
	for _, occ := range FindAttribute(doc, name) {
		idx[occ.Value] = append(idx[occ.Value], occ.Path)
	}
	return idx
}

// walk visits every key/value pair in the document depth-first, passing
// the dotted path of each visited entry.
func walk(prefix string, r gjson.Result, visit func(path, key string, value gjson.Result)) {
	if r.IsObject() {
		r.ForEach(func(key, value gjson.Result) bool {
			path := key.String()
			if prefix != "" {
				path = prefix + "." + path
			}
			visit(path, key.String(), value)
			walk(path, value, visit)
			return true
		})
		return
	}
	if r.IsArray() {
		i := 0
		r.ForEach(func(_, value gjson.Result) bool {
			path := strconv.Itoa(i)
			if prefix != "" {
				path = prefix + "." + path
			}
			walk(path, value, visit)
			i++
			return true
		})
	}
}
