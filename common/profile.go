package common

import (
	"fmt"

	"github.com/pkg/profile"
)

// StartProfile starts a pprof profile written to dir. Mode is "cpu", "mem",
// "allocs" or empty for none. The returned func stops it.
func StartProfile(mode, dir string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "allocs":
		opt = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("profile: unknown mode %q", mode)
	}
	if dir == "" {
		dir = "."
	}
	p := profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook)
	return p.Stop, nil
}
