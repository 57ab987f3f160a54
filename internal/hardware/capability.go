package hardware

import "strings"

// cpuFlagSchema is the fixed set of recognized x86/x86-64 feature flags,
// keyed by identifier name. The lshw key "x86-64" is stored under
// "x86_64". This is a versioned snapshot of one CPU generation's flag
// set; new vendor flags land in the generic mapping until the schema is
// extended, either here or at runtime through RegisterCPUFlags.
var cpuFlagSchema = []string{
	"x86_64", "fpu", "fpu_exception", "wp", "vme", "de", "pse", "tsc",
	"msr", "pae", "mce", "cx8", "apic", "sep", "mtrr", "pge", "mca",
	"cmov", "pat", "pse36", "clflush", "dts", "acpi", "mmx", "fxsr",
	"sse", "sse2", "ss", "ht", "tm", "pbe", "syscall", "nx", "rdtscp",
	"constant_tsc", "arch_perfmon", "pebs", "bts", "rep_good", "nopl",
	"xtopology", "nonstop_tsc", "cpuid", "aperfmperf", "pni", "dtes64",
	"monitor", "ds_cpl", "vmx", "est", "tm2", "ssse3", "cx16", "xtpr",
	"pdcm", "pcid", "sse4_1", "sse4_2", "popcnt", "lahf_lm", "pti",
	"ssbd", "ibrs", "ibpb", "stibp", "tpr_shadow", "vnmi",
	"flexpriority", "ept", "vpid", "dtherm", "ida", "arat", "flush_l1d",
	"cpufreq",
}

var cpuFlagSet = func() map[string]bool {
	set := make(map[string]bool, len(cpuFlagSchema))
	for _, f := range cpuFlagSchema {
		set[f] = true
	}
	return set
}()

// RegisterCPUFlags extends the recognized flag schema at startup, e.g.
// from configuration. Names are normalized the same way lshw keys are.
// Not safe for use after materialization has started.
func RegisterCPUFlags(names []string) {
	for _, name := range names {
		id := flagIdentifier(name)
		if !cpuFlagSet[id] {
			cpuFlagSet[id] = true
			cpuFlagSchema = append(cpuFlagSchema, id)
		}
	}
}

// flagIdentifier rewrites a raw lshw capability key into its identifier
// form ("x86-64" -> "x86_64").
func flagIdentifier(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// CPUCapabilities specializes the capability mapping of a cpu-class node
// into the fixed flag schema while retaining the complete original
// mapping for everything the schema does not recognize.
type CPUCapabilities struct {
	all   Capabilities
	named map[string]any
}

// NewCPUCapabilities materializes the schema from a raw capabilities
// object. Only scalar values participate; container values stay reachable
// through the generic mapping alone.
func NewCPUCapabilities(raw map[string]any) *CPUCapabilities {
	c := &CPUCapabilities{
		all:   Capabilities(copyMap(raw)),
		named: make(map[string]any),
	}
	for name, value := range raw {
		if !isScalar(value) {
			continue
		}
		if id := flagIdentifier(name); cpuFlagSet[id] {
			c.named[id] = value
		}
	}
	return c
}

// Flag returns the value of a recognized schema flag by identifier name
// and whether the flag was present in the source mapping.
func (c *CPUCapabilities) Flag(name string) (any, bool) {
	v, ok := c.named[flagIdentifier(name)]
	return v, ok
}

// Get returns the value for a raw capability key from the full original
// mapping, recognized by the schema or not.
func (c *CPUCapabilities) Get(name string) any { return c.all.Get(name) }

// All returns the complete original capability mapping.
func (c *CPUCapabilities) All() Capabilities { return c.all }

// Named returns the recognized flags that were present, keyed by
// identifier name.
func (c *CPUCapabilities) Named() map[string]any {
	out := make(map[string]any, len(c.named))
	for k, v := range c.named {
		out[k] = v
	}
	return out
}

// Unknown lists the capability keys present in the source mapping but
// absent from the schema, signalling that the flag snapshot may need
// updating for newer CPUs.
func (c *CPUCapabilities) Unknown() []string {
	var out []string
	for name, value := range c.all {
		if !isScalar(value) {
			continue
		}
		if !cpuFlagSet[flagIdentifier(name)] {
			out = append(out, name)
		}
	}
	return out
}
