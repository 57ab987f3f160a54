package hardware

// declaredFields lists, per class, the scalar attribute names promoted
// from the raw document onto the node's named fields. Attributes outside
// this set stay reachable through the raw mapping only. The sets are a
// snapshot of what lshw emits per class on DMI-capable hosts; they are
// data, not behavior, so extending them never touches the materializer.
var declaredFields = map[Class][]string{
	ClassComputer: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "serial", "width",
	},
	ClassCore: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "version", "serial",
	},
	ClassFirmware: {
		"id", "class", "claimed", "description", "vendor", "physid",
		"version", "date", "units", "size", "capacity",
	},
	ClassCPU: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "slot", "units",
		"size", "capacity", "width", "clock",
	},
	ClassCache: {
		"id", "class", "claimed", "handle", "description", "physid",
		"slot", "units", "size", "capacity",
	},
	ClassMemory: {
		"id", "class", "claimed", "handle", "description", "physid",
		"slot", "units", "size",
	},
	ClassBank: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "serial", "slot", "units", "size", "width",
		"clock",
	},
	ClassPCI: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassDisplay: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassCommunication: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassUSB: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassUSBHost: {
		"id", "class", "claimed", "handle", "product", "vendor",
		"physid", "businfo", "logicalname", "version",
	},
	ClassMultimedia: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassGeneric: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassFireWire: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassNetwork: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "logicalname", "version",
		"serial", "units", "capacity", "width", "clock",
	},
	ClassISA: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassStorage: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "version", "width", "clock",
	},
	ClassSCSI: {
		"id", "class", "claimed", "physid", "logicalname",
	},
	ClassDisk: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "logicalname", "dev", "version",
		"serial", "units", "size",
	},
	ClassVolume: {
		"id", "class", "claimed", "description", "physid", "businfo",
		"logicalname", "dev", "version", "serial", "size", "capacity",
	},
	ClassLogicalVolume: {
		"id", "class", "claimed", "description", "vendor", "physid",
		"logicalname", "dev", "version", "serial", "size", "capacity",
	},
	ClassCDROM: {
		"id", "class", "claimed", "handle", "description", "product",
		"vendor", "physid", "businfo", "logicalname", "dev", "version",
	},
	ClassMedium: {
		"id", "class", "claimed", "physid", "logicalname", "dev",
	},
	ClassBattery: {
		"id", "class", "claimed", "handle", "product", "vendor",
		"physid", "slot", "units", "capacity",
	},
}

// DeclaredFields returns the scalar attribute names promoted for a class.
// An unclassified node declares nothing; everything stays raw-only.
func DeclaredFields(c Class) []string {
	fields := declaredFields[c]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// declares reports whether name is in the class's declared field set.
func declares(c Class, name string) bool {
	for _, f := range declaredFields[c] {
		if f == name {
			return true
		}
	}
	return false
}
