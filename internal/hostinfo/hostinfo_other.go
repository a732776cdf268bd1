//go:build !linux && !darwin

package hostinfo

import "runtime"

// Get falls back to the Go runtime's view of the platform.
func Get() (Info, error) {
	return Info{OS: runtime.GOOS, Machine: runtime.GOARCH}, nil
}
