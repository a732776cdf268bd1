// Package hostinfo identifies the machine a benchmark ran on, so
// records collected from different hosts can be told apart.
package hostinfo

// Info describes the host kernel and architecture.
type Info struct {
	OS      string
	Release string
	Machine string
}

// String renders the info as a single log-friendly token sequence.
func (i Info) String() string {
	if i.OS == "" {
		return "unknown"
	}
	return i.OS + " " + i.Release + " " + i.Machine
}
