package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUCapabilitiesHyphenRewrite(t *testing.T) {
	caps := NewCPUCapabilities(map[string]any{
		"x86-64": "64bits extensions (x86-64)",
		"sse2":   true,
	})

	v, ok := caps.Flag("x86_64")
	require.True(t, ok)
	assert.Equal(t, "64bits extensions (x86-64)", v)

	// Lookup by the raw hyphenated key works too.
	v, ok = caps.Flag("x86-64")
	require.True(t, ok)
	assert.Equal(t, "64bits extensions (x86-64)", v)

	assert.Equal(t, "64bits extensions (x86-64)", caps.Get("x86-64"))
}

func TestCPUCapabilitiesUnknownFlags(t *testing.T) {
	caps := NewCPUCapabilities(map[string]any{
		"sse2":        true,
		"vmx":         true,
		"avx512_vnni": true, // newer than the schema snapshot
	})

	_, ok := caps.Flag("avx512_vnni")
	assert.False(t, ok)
	assert.Equal(t, true, caps.Get("avx512_vnni"))
	assert.Equal(t, []string{"avx512_vnni"}, caps.Unknown())
}

func TestCPUCapabilitiesNamedSubset(t *testing.T) {
	caps := NewCPUCapabilities(map[string]any{
		"fpu":     true,
		"nx":      true,
		"rdtscp":  true,
		"mystery": "value",
	})

	named := caps.Named()
	assert.Len(t, named, 3)
	assert.Contains(t, named, "fpu")
	assert.Contains(t, named, "nx")
	assert.Contains(t, named, "rdtscp")
	assert.NotContains(t, named, "mystery")
}

func TestRegisterCPUFlags(t *testing.T) {
	RegisterCPUFlags([]string{"avx512-test-flag"})

	caps := NewCPUCapabilities(map[string]any{"avx512-test-flag": true})
	v, ok := caps.Flag("avx512_test_flag")
	require.True(t, ok)
	assert.Equal(t, true, v)
	assert.Empty(t, caps.Unknown())
}

func TestCPUCapabilitiesSkipContainers(t *testing.T) {
	caps := NewCPUCapabilities(map[string]any{
		"sse2":   true,
		"nested": map[string]any{"a": 1},
	})

	_, ok := caps.Flag("nested")
	assert.False(t, ok)
	assert.NotNil(t, caps.Get("nested"))
	assert.Empty(t, caps.Unknown())
}
