//go:build linux

package collector

import (
	"fmt"
	"os"
	"time"
)

// HostInfo identifies the machine an inventory run was taken on.
type HostInfo struct {
	CollectedAt time.Time `json:"collected_at"`
	Hostname    string    `json:"hostname"`
	Uname       UnameInfo `json:"uname"`
	DMI         *DMIInfo  `json:"dmi,omitempty"`
}

// CollectHost gathers host identification from uname and the SMBIOS
// tables. It attempts both sources and returns partial results alongside
// any errors; DMI in particular fails without root.
func CollectHost() (*HostInfo, error) {
	hostname, _ := os.Hostname()

	info := &HostInfo{
		CollectedAt: time.Now().UTC(),
		Hostname:    hostname,
	}

	var errs []error

	uname, err := CollectUname()
	if err != nil {
		errs = append(errs, fmt.Errorf("uname: %w", err))
	}
	info.Uname = uname

	dmi, err := CollectDMI()
	if err != nil {
		errs = append(errs, fmt.Errorf("dmi: %w", err))
	}
	info.DMI = dmi

	if len(errs) > 0 {
		return info, fmt.Errorf("collection errors: %v", errs)
	}
	return info, nil
}
