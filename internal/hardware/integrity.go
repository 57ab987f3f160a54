package hardware

// Mismatch records one declared field whose value differs from its raw
// counterpart, with both sides kept for triage.
type Mismatch struct {
	Declared any `json:"declared"`
	Raw      any `json:"raw"`
}

// Report is the outcome of one integrity check.
type Report struct {
	Count  int                 `json:"count"`
	Errors map[string]Mismatch `json:"errors,omitempty"`
}

// Check re-derives the set of fields that should have been promoted from
// the raw mapping and diffs them against the node's named fields. It is a
// construction-time self-test for the materializer's copy step, not a
// runtime validation of the input: a field present in the schema but
// never wired into promotion shows up here with both values.
//
// The children and logicalname entries are skipped, as is any list-typed
// value; none of them can be compared against a scalar field. Check never
// fails; strictness is the caller's policy.
func Check(n *Node) Report {
	report := Report{Errors: make(map[string]Mismatch)}
	for name, rawValue := range n.raw {
		if name == "children" || name == "logicalname" {
			continue
		}
		if !isScalar(rawValue) || !declares(n.class, name) {
			continue
		}
		declared, ok := n.fields[name]
		if !ok || declared != rawValue {
			report.Count++
			report.Errors[name] = Mismatch{Declared: declared, Raw: rawValue}
		}
	}
	return report
}

// CheckTree runs Check over the whole tree and returns the total mismatch
// count along with the per-node reports, keyed by node id.
func CheckTree(root *Node) (int, map[string]Report) {
	total := 0
	reports := make(map[string]Report)
	root.Walk(func(n *Node) bool {
		r := Check(n)
		if r.Count > 0 {
			total += r.Count
			reports[n.ID()] = r
		}
		return true
	})
	return total, reports
}
