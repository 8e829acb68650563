// nodedist.go
package nodedist

import (
	"context"
	"log"
	"os"

	"github.com/arc-language/nodedist/pkg/core"
	"github.com/arc-language/nodedist/pkg/platform"
)

// Re-export platform types for convenience
type (
	OS               = platform.OS
	Architecture     = platform.Architecture
	Platform         = platform.Platform
	Artifact         = platform.Artifact
	Detector         = platform.Detector
	Env              = platform.Env
	SystemIdentifier = platform.SystemIdentifier
	Config           = core.Config
)

// Re-export OS and architecture constants
const (
	Windows = platform.Windows
	Mac     = platform.Mac
	Linux   = platform.Linux
	SunOS   = platform.SunOS

	X86     = platform.X86
	X64     = platform.X64
	PPC64LE = platform.PPC64LE
	S390X   = platform.S390X
	ARM64   = platform.ARM64
	ARMV6L  = platform.ARMV6L
	ARMV7L  = platform.ARMV7L
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// New returns the platform for o and arch
func New(o OS, arch Architecture) Platform {
	return platform.New(o, arch)
}

// Guess detects the platform of the running host
func Guess(ctx context.Context) Platform {
	return platform.Guess(ctx)
}

// Resolve detects the host platform and resolves the distribution of
// version for it. Raw OS and architecture overrides in config take
// precedence over the host environment.
func Resolve(ctx context.Context, version string, config *Config) (*Artifact, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	d := platform.NewDetector()
	if config.OSName != "" {
		d.Env.OSName = config.OSName
	}
	if config.Arch != "" {
		d.Env.Arch = config.Arch
	}
	if config.Debug {
		d.Logger = log.New(os.Stderr, "[nodedist] ", log.LstdFlags)
	}

	p := d.Guess(ctx)
	a, err := platform.ResolveArtifact(p, version, config)
	if err != nil {
		if version == "" {
			version = config.NodeVersion
		}
		return nil, &Error{Op: "resolve", Version: version, Err: err}
	}
	return a, nil
}
