package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuDoc() map[string]any {
	return map[string]any{
		"id":      "cpu:0",
		"class":   "processor",
		"product": "Test CPU",
		"capabilities": map[string]any{
			"sse2":   "true",
			"x86-64": "64bits extensions (x86-64)",
		},
	}
}

func TestMaterializeCPUWithCapabilities(t *testing.T) {
	n, err := Materialize(cpuDoc())
	require.NoError(t, err)

	assert.Equal(t, ClassCPU, n.Class())
	assert.Equal(t, "Test CPU", n.Field("product"))
	assert.Equal(t, "processor", n.Field("class"))
	assert.Zero(t, n.Report().Count)

	require.NotNil(t, n.CPU())
	sse2, ok := n.CPU().Flag("sse2")
	require.True(t, ok)
	assert.Equal(t, "true", sse2)

	x8664, ok := n.CPU().Flag("x86_64")
	require.True(t, ok)
	assert.Equal(t, "64bits extensions (x86-64)", x8664)
}

func TestMaterializeChildrenOrderAndDispatch(t *testing.T) {
	doc := map[string]any{
		"id": "memory",
		"children": []any{
			map[string]any{"id": "cache:0", "class": "memory"},
			map[string]any{"id": "bank:0", "class": "memory"},
		},
	}

	n, err := Materialize(doc)
	require.NoError(t, err)

	kids := n.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, ClassCache, kids[0].Class())
	assert.Equal(t, ClassBank, kids[1].Class())
	assert.Equal(t, "cache:0", kids[0].ID())
	assert.Equal(t, "bank:0", kids[1].ID())
}

func TestMaterializeRejectsMalformedChildren(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":       "cpu:0",
		"children": "not-a-list",
	})
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Nil(t, n)
}

func TestMaterializeRejectsNonObjectChild(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":       "core",
		"children": []any{"scalar"},
	})
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Nil(t, n)
}

func TestMaterializeNonObjectConfigurationIsNotFatal(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":            "cpu:0",
		"product":       "Test CPU",
		"configuration": "oops-not-an-object",
	})
	require.NoError(t, err)

	assert.Nil(t, n.Configuration())
	assert.Equal(t, "oops-not-an-object", n.Attribute("configuration"))
	assert.Equal(t, "Test CPU", n.Field("product"))
}

func TestMaterializeNonObjectCapabilitiesIsNotFatal(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":           "cpu:0",
		"capabilities": []any{"sse2"},
	})
	require.NoError(t, err)

	assert.Nil(t, n.Capabilities())
	assert.Nil(t, n.CPU())
	assert.Equal(t, []any{"sse2"}, n.Attribute("capabilities"))
}

func TestMaterializeNilDocument(t *testing.T) {
	_, err := Materialize(nil)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestScalarRoundTrip(t *testing.T) {
	doc := map[string]any{
		"id":          "disk:0",
		"class":       "disk",
		"product":     "SSD 870",
		"vendor":      "Samsung",
		"serial":      "S123",
		"size":        float64(500107862016),
		"units":       "bytes",
		"logicalname": "/dev/sda",
	}
	n, err := Materialize(doc)
	require.NoError(t, err)

	raw := n.RawAttributes()
	for _, f := range DeclaredFields(ClassDisk) {
		rawValue, present := raw[f]
		if !present {
			continue
		}
		assert.Equal(t, rawValue, n.Attribute(f), "field %s", f)
		if f != "children" && isScalar(rawValue) {
			assert.Equal(t, rawValue, n.Field(f), "field %s", f)
		}
	}
}

func TestUndeclaredScalarStaysRawOnly(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":     "medium:x",
		"class":  "disk",
		"vendor": "ACME", // not declared for medium
	})
	require.NoError(t, err)

	assert.Equal(t, ClassMedium, n.Class())
	assert.Nil(t, n.Field("vendor"))
	assert.Equal(t, "ACME", n.Attribute("vendor"))
	assert.Zero(t, n.Report().Count)
}

func TestContainerValuesAreNotPromoted(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":     "network:0",
		"serial": []any{"a", "b"},
	})
	require.NoError(t, err)

	assert.Nil(t, n.Field("serial"))
	assert.Equal(t, []any{"a", "b"}, n.Attribute("serial"))
}

func TestImmutabilityAgainstInputMutation(t *testing.T) {
	doc := cpuDoc()
	n, err := Materialize(doc)
	require.NoError(t, err)

	doc["product"] = "Tampered"
	doc["capabilities"].(map[string]any)["sse2"] = "false"

	assert.Equal(t, "Test CPU", n.Field("product"))
	assert.Equal(t, "Test CPU", n.RawAttributes()["product"])
	assert.Equal(t, "true", n.Capabilities().Get("sse2"))
}

func TestImmutabilityOfAccessorReturns(t *testing.T) {
	n, err := Materialize(cpuDoc())
	require.NoError(t, err)

	raw := n.RawAttributes()
	raw["product"] = "Mutated"
	raw["capabilities"].(map[string]any)["sse2"] = "false"

	assert.Equal(t, "Test CPU", n.RawAttributes()["product"])
	assert.Equal(t, "true", n.Capabilities().Get("sse2"))
}

func TestUnknownClassFallback(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id":     "widget:3",
		"vendor": "ACME",
		"children": []any{
			map[string]any{"id": "cpu:0"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, ClassUnclassified, n.Class())
	assert.Equal(t, "ACME", n.Attribute("vendor"))
	require.Len(t, n.Children(), 1)
	assert.Equal(t, ClassCPU, n.Children()[0].Class())
}

func TestChildWithoutIDStaysUnclassifiedLeaf(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id": "core",
		"children": []any{
			map[string]any{"description": "mystery device"},
		},
	})
	require.NoError(t, err)

	require.Len(t, n.Children(), 1)
	child := n.Children()[0]
	assert.Equal(t, ClassUnclassified, child.Class())
	assert.Equal(t, "mystery device", child.Attribute("description"))
}

func TestMaterializeComputerRoot(t *testing.T) {
	n, err := MaterializeComputer(map[string]any{
		"id":     "myhost",
		"class":  "system",
		"vendor": "LENOVO",
		"children": []any{
			map[string]any{"id": "core", "children": []any{
				map[string]any{"id": "cpu:0"},
			}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, ClassComputer, n.Class())
	assert.Equal(t, "LENOVO", n.Field("vendor"))
	require.Len(t, n.Children(), 1)
	assert.Equal(t, ClassCore, n.Children()[0].Class())
}

func TestMaterializeDocument(t *testing.T) {
	data := []byte(`{"id":"host","class":"system","children":[{"id":"core"}]}`)
	n, err := MaterializeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, ClassComputer, n.Class())
	assert.Len(t, n.Children(), 1)
}

func TestDecodeRejectsNonObject(t *testing.T) {
	_, err := Decode([]byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = Decode([]byte(`garbage`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestNonCPUCapabilitiesStayGeneric(t *testing.T) {
	n, err := Materialize(map[string]any{
		"id": "network:0",
		"capabilities": map[string]any{
			"ethernet": true,
			"tp":       "twisted pair",
		},
	})
	require.NoError(t, err)

	assert.Nil(t, n.CPU())
	assert.Equal(t, true, n.Capabilities().Get("ethernet"))
}
