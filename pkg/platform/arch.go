// pkg/platform/arch.go
package platform

import (
	"context"
	"fmt"
	"strings"
)

// Architecture is a CPU architecture as named by the Node.js distribution
type Architecture int

const (
	X86 Architecture = iota
	X64
	PPC64LE
	S390X
	ARM64
	ARMV6L
	ARMV7L
)

// Architectures lists every supported architecture
var Architectures = []Architecture{X86, X64, PPC64LE, S390X, ARM64, ARMV6L, ARMV7L}

// String returns the architecture name used in distribution filenames
func (a Architecture) String() string {
	switch a {
	case X86:
		return "x86"
	case X64:
		return "x64"
	case PPC64LE:
		return "ppc64le"
	case S390X:
		return "s390x"
	case ARM64:
		return "arm64"
	case ARMV6L:
		return "armv6l"
	case ARMV7L:
		return "armv7l"
	default:
		return fmt.Sprintf("Architecture(%d)", int(a))
	}
}

// ParseArchitecture parses an architecture name such as "x64" or "armv7l"
func ParseArchitecture(s string) (Architecture, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Architectures {
		if a.String() == name {
			return a, nil
		}
	}
	return X86, fmt.Errorf("%w: %q", ErrUnknownArchitecture, s)
}

// GuessArchitecture classifies a raw architecture string, as reported by
// the JVM-style os.arch property. A bare "arm" is disambiguated with the
// identifier; an inconclusive answer means armv7l.
func GuessArchitecture(ctx context.Context, arch string, id SystemIdentifier) Architecture {
	switch arch {
	case "ppc64le":
		return PPC64LE
	case "aarch64":
		return ARM64
	case "s390x":
		return S390X
	case "arm":
		if id == nil {
			return ARMV7L
		}
		line, ok := id.Identify(ctx)
		if ok && strings.Contains(line, ARMV6L.String()) {
			return ARMV6L
		}
		return ARMV7L
	}

	if strings.Contains(arch, "64") {
		return X64
	}
	return X86
}
