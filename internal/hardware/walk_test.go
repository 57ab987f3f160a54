package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *Node {
	t.Helper()
	root, err := MaterializeComputer(map[string]any{
		"id":     "host",
		"vendor": "LENOVO",
		"children": []any{
			map[string]any{"id": "core", "children": []any{
				map[string]any{"id": "cpu:0", "vendor": "Intel Corp."},
				map[string]any{"id": "cpu:1", "vendor": "Intel Corp."},
				map[string]any{"id": "memory", "children": []any{
					map[string]any{"id": "bank:0", "vendor": "Samsung"},
					map[string]any{"id": "bank:1", "vendor": "Samsung"},
				}},
			}},
		},
	})
	require.NoError(t, err)
	return root
}

func TestWalkVisitsDocumentOrder(t *testing.T) {
	root := sampleTree(t)

	var ids []string
	root.Walk(func(n *Node) bool {
		ids = append(ids, n.ID())
		return true
	})

	assert.Equal(t, []string{"host", "core", "cpu:0", "cpu:1", "memory", "bank:0", "bank:1"}, ids)
}

func TestWalkEarlyStop(t *testing.T) {
	root := sampleTree(t)

	visited := 0
	root.Walk(func(n *Node) bool {
		visited++
		return n.ID() != "cpu:0"
	})

	assert.Equal(t, 3, visited)
}

func TestFindClass(t *testing.T) {
	root := sampleTree(t)

	cpus := FindClass(root, ClassCPU)
	require.Len(t, cpus, 2)
	assert.Equal(t, "cpu:0", cpus[0].ID())
	assert.Equal(t, "cpu:1", cpus[1].ID())

	banks := FindClass(root, ClassBank)
	assert.Len(t, banks, 2)

	assert.Empty(t, FindClass(root, ClassBattery))
}

func TestFindAttribute(t *testing.T) {
	root := sampleTree(t)

	withVendor := FindAttribute(root, "vendor")
	assert.Len(t, withVendor, 5)
}

func TestFindAttributeValue(t *testing.T) {
	root := sampleTree(t)

	intel := FindAttributeValue(root, "vendor", "Intel Corp.")
	require.Len(t, intel, 2)
	assert.Equal(t, ClassCPU, intel[0].Class())

	assert.Empty(t, FindAttributeValue(root, "vendor", "AMD"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 7, sampleTree(t).Count())
}
