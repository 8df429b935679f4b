package editor

import "os/exec"

// Probe reports whether a tool can be found
type Probe interface {
	Available(tool string) bool
}

// PathProbe looks tools up on PATH
type PathProbe struct{}

// Available implements Probe
func (PathProbe) Available(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// ProbeFunc adapts a function to Probe
type ProbeFunc func(tool string) bool

// Available implements Probe
func (f ProbeFunc) Available(tool string) bool {
	return f(tool)
}

// Snapshot probes every catalog entry once, in catalog order
func Snapshot(p Probe) []bool {
	avail := make([]bool, len(Catalog))
	for i, e := range Catalog {
		avail[i] = p.Available(e.Binary)
	}
	return avail
}
