//go:build linux || darwin

package hostinfo

import "golang.org/x/sys/unix"

// Get returns the host description from uname(2).
func Get() (Info, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Info{}, err
	}
	return Info{
		OS:      cstr(uts.Sysname[:]),
		Release: cstr(uts.Release[:]),
		Machine: cstr(uts.Machine[:]),
	}, nil
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
