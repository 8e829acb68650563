// pkg/platform/errors.go
package platform

import "errors"

var (
	// ErrUnknownOS indicates an OS name that is not one of OperatingSystems
	ErrUnknownOS = errors.New("unknown operating system")

	// ErrUnknownArchitecture indicates a name that is not one of Architectures
	ErrUnknownArchitecture = errors.New("unknown architecture")

	// ErrInvalidVersion indicates a missing Node.js version
	ErrInvalidVersion = errors.New("invalid node version")

	// ErrInvalidDownloadRoot indicates a download root that is not an absolute URL
	ErrInvalidDownloadRoot = errors.New("invalid download root")
)
