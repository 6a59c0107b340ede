package terrain

import "errors"

var (
	// ErrNoTargets is a caller contract violation: planning needs at least one target.
	ErrNoTargets = errors.New("terrain: at least one target is required")
	// ErrDiscovery wraps any failure of the discovery capability.
	ErrDiscovery = errors.New("terrain: discovery failed")
	// ErrNoDiscoverer is returned when filling is requested without a discovery capability.
	ErrNoDiscoverer = errors.New("terrain: discovery requested but no discoverer given")
)
