// Package render draws the materialized hardware tree and per-node
// property sheets for a terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/go-tangra/hardinfo/internal/hardware"
)

// Tree renders the whole component hierarchy as a connected list, one
// line per node, in document order.
func Tree(root *hardware.Node) string {
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedLight)
	appendNode(w, root)
	return w.Render()
}

func appendNode(w list.Writer, n *hardware.Node) {
	w.AppendItem(Label(n))
	if len(n.Children()) > 0 {
		w.Indent()
		for _, child := range n.Children() {
			appendNode(w, child)
		}
		w.UnIndent()
	}
}

// Label builds the one-line summary for a node: id, class, the most
// descriptive of product/description, and a humanized size when present.
func Label(n *hardware.Node) string {
	var b strings.Builder

	id := n.ID()
	if id == "" {
		id = "(no id)"
	}
	fmt.Fprintf(&b, "%s [%s]", id, n.Class())

	if product, ok := n.Field("product").(string); ok && product != "" {
		fmt.Fprintf(&b, " %s", product)
	} else if desc, ok := n.Field("description").(string); ok && desc != "" {
		fmt.Fprintf(&b, " %s", desc)
	}

	if size := sizeOf(n); size != "" {
		fmt.Fprintf(&b, " (%s)", size)
	}
	return b.String()
}

// sizeOf humanizes the size field when the node declares byte units.
// lshw reports sizes for other units too (Hz for clocks, mWh for
// batteries); those render as plain numbers elsewhere.
func sizeOf(n *hardware.Node) string {
	units, _ := n.Field("units").(string)
	if units != "bytes" {
		return ""
	}
	size, ok := n.Field("size").(float64)
	if !ok {
		size, ok = n.Field("capacity").(float64)
	}
	if !ok || size <= 0 {
		return ""
	}
	return humanize.IBytes(uint64(size))
}

// Properties renders one node's property sheet: declared fields first,
// then configuration and capability entries, each section sorted by name.
func Properties(n *hardware.Node) string {
	w := table.NewWriter()
	w.SetTitle(Label(n))
	w.AppendHeader(table.Row{"Attribute", "Value"})

	for _, name := range hardware.DeclaredFields(n.Class()) {
		if v := n.Field(name); v != nil {
			w.AppendRow(table.Row{name, v})
		}
	}

	if cfg := n.Configuration(); len(cfg) > 0 {
		w.AppendSeparator()
		for _, name := range sortedKeys(cfg) {
			w.AppendRow(table.Row{"configuration." + name, cfg[name]})
		}
	}

	if caps := n.Capabilities(); len(caps) > 0 {
		w.AppendSeparator()
		for _, name := range sortedKeys(caps) {
			w.AppendRow(table.Row{"capability." + name, caps[name]})
		}
	}

	return w.Render()
}

// IntegrityTable renders per-node integrity reports for the operator.
func IntegrityTable(reports map[string]hardware.Report) string {
	w := table.NewWriter()
	w.SetTitle("Integrity mismatches")
	w.AppendHeader(table.Row{"Node", "Field", "Declared", "Raw"})

	ids := make([]string, 0, len(reports))
	for id := range reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, field := range sortedMismatchKeys(reports[id]) {
			m := reports[id].Errors[field]
			w.AppendRow(table.Row{id, field, fmt.Sprint(m.Declared), fmt.Sprint(m.Raw)})
		}
	}
	return w.Render()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMismatchKeys(r hardware.Report) []string {
	return sortedKeys(r.Errors)
}
