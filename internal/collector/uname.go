//go:build linux

package collector

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// UnameInfo holds the kernel identification normally printed by uname.
type UnameInfo struct {
	Sysname  string `json:"sysname"`
	Nodename string `json:"nodename"`
	Release  string `json:"release"`
	Version  string `json:"version"`
	Machine  string `json:"machine"`
}

// CollectUname reads kernel identification through the uname syscall
// instead of shelling out to the command.
func CollectUname() (UnameInfo, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return UnameInfo{}, fmt.Errorf("uname: %w", err)
	}

	return UnameInfo{
		Sysname:  unix.ByteSliceToString(u.Sysname[:]),
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Version:  unix.ByteSliceToString(u.Version[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
