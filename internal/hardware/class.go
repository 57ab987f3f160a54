package hardware

import (
	"fmt"
	"strings"
)

// Class identifies one category of hardware component as reported in the
// id field of lshw output (the portion before the first ':').
type Class string

const (
	ClassComputer      Class = "computer"
	ClassCore          Class = "core"
	ClassFirmware      Class = "firmware"
	ClassCPU           Class = "cpu"
	ClassCache         Class = "cache"
	ClassMemory        Class = "memory"
	ClassBank          Class = "bank"
	ClassPCI           Class = "pci"
	ClassDisplay       Class = "display"
	ClassCommunication Class = "communication"
	ClassUSB           Class = "usb"
	ClassUSBHost       Class = "usbhost"
	ClassMultimedia    Class = "multimedia"
	ClassGeneric       Class = "generic"
	ClassFireWire      Class = "firewire"
	ClassNetwork       Class = "network"
	ClassISA           Class = "isa"
	ClassStorage       Class = "storage"
	ClassSCSI          Class = "scsi"
	ClassDisk          Class = "disk"
	ClassVolume        Class = "volume"
	ClassLogicalVolume Class = "logicalvolume"
	ClassCDROM         Class = "cdrom"
	ClassMedium        Class = "medium"
	ClassBattery       Class = "battery"

	// ClassUnclassified marks a node whose id prefix is not in the
	// taxonomy. The node keeps all raw data and children; only the
	// declared-field promotion is skipped.
	ClassUnclassified Class = "unclassified"
)

func (c Class) String() string { return string(c) }

// classByPrefix maps an id prefix to its Class. ClassComputer is absent on
// purpose: the document root carries the hostname as its id and is never
// dispatched by prefix.
var classByPrefix = map[string]Class{
	"core":          ClassCore,
	"firmware":      ClassFirmware,
	"cpu":           ClassCPU,
	"cache":         ClassCache,
	"memory":        ClassMemory,
	"bank":          ClassBank,
	"pci":           ClassPCI,
	"display":       ClassDisplay,
	"communication": ClassCommunication,
	"usb":           ClassUSB,
	"usbhost":       ClassUSBHost,
	"multimedia":    ClassMultimedia,
	"generic":       ClassGeneric,
	"firewire":      ClassFireWire,
	"network":       ClassNetwork,
	"isa":           ClassISA,
	"storage":       ClassStorage,
	"scsi":          ClassSCSI,
	"disk":          ClassDisk,
	"volume":        ClassVolume,
	"logicalvolume": ClassLogicalVolume,
	"cdrom":         ClassCDROM,
	"medium":        ClassMedium,
	"battery":       ClassBattery,
}

// indexedClasses are the classes whose id always carries a ':n' suffix
// with a sequential enumeration index.
var indexedClasses = map[Class]bool{
	ClassCache:         true,
	ClassBank:          true,
	ClassPCI:           true,
	ClassUSB:           true,
	ClassGeneric:       true,
	ClassVolume:        true,
	ClassLogicalVolume: true,
}

// Classify resolves the Class for a raw id string. The prefix before the
// first ':' is looked up in the taxonomy; an id without ':' is looked up
// whole. An unregistered prefix yields ErrUnknownClass; callers that want
// the lenient policy use ClassUnclassified instead of failing the subtree.
func Classify(id string) (Class, error) {
	prefix, _, _ := strings.Cut(id, ":")
	if c, ok := classByPrefix[prefix]; ok {
		return c, nil
	}
	return ClassUnclassified, fmt.Errorf("%w: %q", ErrUnknownClass, prefix)
}

// Indexed reports whether ids of this class always carry a numeric suffix.
func (c Class) Indexed() bool { return indexedClasses[c] }

// Classes returns the closed taxonomy in a stable order, excluding the
// computer root and the unclassified fallback marker.
func Classes() []Class {
	out := []Class{
		ClassCore, ClassFirmware, ClassCPU, ClassCache, ClassMemory,
		ClassBank, ClassPCI, ClassDisplay, ClassCommunication, ClassUSB,
		ClassUSBHost, ClassMultimedia, ClassGeneric, ClassFireWire,
		ClassNetwork, ClassISA, ClassStorage, ClassSCSI, ClassDisk,
		ClassVolume, ClassLogicalVolume, ClassCDROM, ClassMedium,
		ClassBattery,
	}
	return out
}
