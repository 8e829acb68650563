// errors.go
package nodedist

import (
	"fmt"

	"github.com/arc-language/nodedist/pkg/platform"
)

var (
	// ErrUnknownOS indicates an OS name that could not be parsed
	ErrUnknownOS = platform.ErrUnknownOS

	// ErrUnknownArchitecture indicates an architecture name that could not be parsed
	ErrUnknownArchitecture = platform.ErrUnknownArchitecture

	// ErrInvalidVersion indicates a missing Node.js version
	ErrInvalidVersion = platform.ErrInvalidVersion

	// ErrInvalidDownloadRoot indicates a download root that is not an absolute URL
	ErrInvalidDownloadRoot = platform.ErrInvalidDownloadRoot
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Version string // Node.js version if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Version, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
