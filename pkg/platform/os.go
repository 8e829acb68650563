// pkg/platform/os.go
package platform

import (
	"fmt"
	"strings"
)

// OS is an operating system family
type OS int

const (
	Windows OS = iota
	Mac
	Linux
	SunOS
)

// OperatingSystems lists every supported OS
var OperatingSystems = []OS{Windows, Mac, Linux, SunOS}

func (o OS) String() string {
	switch o {
	case Windows:
		return "Windows"
	case Mac:
		return "Mac"
	case Linux:
		return "Linux"
	case SunOS:
		return "SunOS"
	default:
		return fmt.Sprintf("OS(%d)", int(o))
	}
}

// ArchiveExtension returns the extension of the distribution archive
func (o OS) ArchiveExtension() string {
	switch o {
	case Windows:
		return "zip"
	default:
		return "tar.gz"
	}
}

// Codename returns the platform label used in distribution filenames
func (o OS) Codename() string {
	switch o {
	case Mac:
		return "darwin"
	case Windows:
		return "win"
	case SunOS:
		return "sunos"
	default:
		return "linux"
	}
}

// ParseOS parses an OS by name ("Mac") or codename ("darwin"), ignoring case
func ParseOS(s string) (OS, error) {
	name := strings.TrimSpace(s)
	for _, o := range OperatingSystems {
		if strings.EqualFold(name, o.String()) || strings.EqualFold(name, o.Codename()) {
			return o, nil
		}
	}
	return Linux, fmt.Errorf("%w: %q", ErrUnknownOS, s)
}

// GuessOS classifies a raw OS name as reported by the JVM-style os.name
// property. Anything unrecognized is treated as Linux.
func GuessOS(name string) OS {
	switch {
	case strings.Contains(name, "Windows"):
		return Windows
	case strings.Contains(name, "Mac"):
		return Mac
	case strings.Contains(name, "SunOS"):
		return SunOS
	default:
		return Linux
	}
}
