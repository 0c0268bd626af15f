//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	attrHidden       = 0x02
	attrSystem       = 0x04
	attrReparsePoint = 0x0400
)

// IsHidden checks the hidden attribute, falling back to the dot-file rule when
// attributes cannot be read.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&attrHidden != 0
}

// ShouldHideFromListing reports entries that never appear in listings, even
// when hidden files are shown (compatibility junctions such as "Application Data").
func ShouldHideFromListing(fullPath, name string) bool {
	if fullPath == "" && name == "" {
		return false
	}
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const junction = attrSystem | attrReparsePoint
	return attrs&junction == junction
}

func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err == nil {
		return attrs, nil
	}

	if os.IsNotExist(err) && fullPath != "" && fullPath != name {
		if alt, convErr := syscall.UTF16PtrFromString(name); convErr == nil {
			if altAttrs, altErr := syscall.GetFileAttributes(alt); altErr == nil {
				return altAttrs, nil
			}
		}
	}
	return 0, err
}
