//go:build linux

package collector

import (
	"fmt"

	"github.com/siderolabs/go-smbios/smbios"
)

// DMIInfo is the subset of the SMBIOS tables the inventory reports. It is
// read straight from /sys/firmware/dmi, so it works without shelling out
// to dmidecode, though root is still required.
type DMIInfo struct {
	SystemManufacturer string `json:"system_manufacturer"`
	ProductName        string `json:"product_name"`
	ProductVersion     string `json:"product_version"`
	SystemSerial       string `json:"system_serial"`
	SystemUUID         string `json:"system_uuid"`

	BIOSVendor      string `json:"bios_vendor"`
	BIOSVersion     string `json:"bios_version"`
	BIOSReleaseDate string `json:"bios_release_date"`

	BoardManufacturer string `json:"board_manufacturer"`
	BoardProduct      string `json:"board_product"`
	BoardSerial       string `json:"board_serial"`

	Processors []DMIProcessor `json:"processors,omitempty"`
}

// DMIProcessor is one populated processor socket from DMI type 4.
type DMIProcessor struct {
	Socket       string `json:"socket"`
	Manufacturer string `json:"manufacturer"`
	Version      string `json:"version"`
	MaxSpeedMHz  int    `json:"max_speed_mhz"`
	CoreCount    int    `json:"core_count"`
	ThreadCount  int    `json:"thread_count"`
}

// CollectDMI reads the SMBIOS entry point and tables and extracts the
// system, BIOS, baseboard, and processor information.
func CollectDMI() (*DMIInfo, error) {
	s, err := smbios.New()
	if err != nil {
		return nil, fmt.Errorf("read SMBIOS tables: %w", err)
	}

	info := &DMIInfo{
		SystemManufacturer: s.SystemInformation.Manufacturer,
		ProductName:        s.SystemInformation.ProductName,
		ProductVersion:     s.SystemInformation.Version,
		SystemSerial:       s.SystemInformation.SerialNumber,
		SystemUUID:         s.SystemInformation.UUID,

		BIOSVendor:      s.BIOSInformation.Vendor,
		BIOSVersion:     s.BIOSInformation.Version,
		BIOSReleaseDate: s.BIOSInformation.ReleaseDate,

		BoardManufacturer: s.BaseboardInformation.Manufacturer,
		BoardProduct:      s.BaseboardInformation.Product,
		BoardSerial:       s.BaseboardInformation.SerialNumber,
	}

	for _, p := range s.ProcessorInformation {
		if p.ProcessorVersion == "" && p.ProcessorManufacturer == "" {
			continue
		}
		info.Processors = append(info.Processors, DMIProcessor{
			Socket:       p.SocketDesignation,
			Manufacturer: p.ProcessorManufacturer,
			Version:      p.ProcessorVersion,
			MaxSpeedMHz:  int(p.MaxSpeed),
			CoreCount:    int(p.CoreCount),
			ThreadCount:  int(p.ThreadCount),
		})
	}

	return info, nil
}
