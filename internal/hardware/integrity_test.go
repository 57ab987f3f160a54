package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanNode(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":      "cpu:0",
		"class":   "processor",
		"product": "Test CPU",
		"vendor":  "Intel Corp.",
		"width":   float64(64),
	})
	require.NoError(t, err)

	report := Check(n)
	assert.Zero(t, report.Count)
	assert.Empty(t, report.Errors)
}

func TestCheckDetectsDroppedField(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":      "cpu:0",
		"product": "Test CPU",
		"vendor":  "Intel Corp.",
	})
	require.NoError(t, err)

	// Simulate a materializer accounting bug: the promotion of one
	// declared field never happened.
	delete(n.fields, "vendor")

	report := Check(n)
	require.Equal(t, 1, report.Count)
	mismatch, ok := report.Errors["vendor"]
	require.True(t, ok)
	assert.Nil(t, mismatch.Declared)
	assert.Equal(t, "Intel Corp.", mismatch.Raw)
}

func TestCheckDetectsCorruptedValue(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":      "disk:0",
		"product": "SSD 870",
	})
	require.NoError(t, err)

	n.fields["product"] = "wrong"

	report := Check(n)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, "wrong", report.Errors["product"].Declared)
	assert.Equal(t, "SSD 870", report.Errors["product"].Raw)
}

func TestCheckSkipsLogicalnameAndLists(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":          "scsi:0",
		"logicalname": []any{"/dev/sda", "/dev/sg0"},
		"physid":      "1",
	})
	require.NoError(t, err)

	report := Check(n)
	assert.Zero(t, report.Count)
}

func TestCheckTreeAggregates(t *testing.T) {
	root, err := MaterializeComputer(map[string]any{
		"id": "host",
		"children": []any{
			map[string]any{"id": "core", "vendor": "ACME", "children": []any{
				map[string]any{"id": "cpu:0", "product": "Test CPU"},
			}},
		},
	})
	require.NoError(t, err)

	total, reports := CheckTree(root)
	assert.Zero(t, total)
	assert.Empty(t, reports)

	cpu := FindClass(root, ClassCPU)[0]
	cpu.fields["product"] = "wrong"

	total, reports = CheckTree(root)
	assert.Equal(t, 1, total)
	require.Contains(t, reports, "cpu:0")
	assert.Equal(t, 1, reports["cpu:0"].Count)
}
