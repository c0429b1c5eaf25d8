package minecraft

import "errors"

var (
	// ErrConnectivity is returned when the version manifest cannot be fetched.
	// mdget treats this as "offline" and refuses to run.
	ErrConnectivity = errors.New("failed to connect to the internet")

	// ErrUnknownVersion is returned when a game version is not in the manifest.
	ErrUnknownVersion = errors.New("unknown game version")
)
