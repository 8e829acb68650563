// pkg/platform/detect.go
package platform

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
)

const (
	// EnvOSName overrides the raw OS name reported by HostEnv
	EnvOSName = "NODEDIST_OS_NAME"
	// EnvArch overrides the raw architecture reported by HostEnv
	EnvArch = "NODEDIST_ARCH"
)

// Env holds the raw strings detection works from. The vocabulary is the
// one of the JVM os.name and os.arch properties ("Mac OS X", "amd64").
type Env struct {
	OSName string
	Arch   string
}

// HostEnv describes the running process, honoring EnvOSName and EnvArch
func HostEnv() Env {
	env := hostEnv(runtime.GOOS, runtime.GOARCH)
	if name := os.Getenv(EnvOSName); name != "" {
		env.OSName = name
	}
	if arch := os.Getenv(EnvArch); arch != "" {
		env.Arch = arch
	}
	return env
}

func hostEnv(goos, goarch string) Env {
	var env Env

	switch goos {
	case "windows":
		env.OSName = "Windows"
	case "darwin":
		env.OSName = "Mac OS X"
	case "solaris", "illumos":
		env.OSName = "SunOS"
	case "linux":
		env.OSName = "Linux"
	default:
		env.OSName = goos
	}

	switch goarch {
	case "386":
		env.Arch = "x86"
	case "arm64":
		env.Arch = "aarch64"
	default:
		// amd64, arm, ppc64le and s390x already match
		env.Arch = goarch
	}

	return env
}

// Detector guesses the platform from an Env
type Detector struct {
	Env        Env
	Identifier SystemIdentifier // consulted for a bare "arm" only
	Logger     *log.Logger      // optional
}

// NewDetector returns a detector for the running host that runs "uname -a"
// when it needs to tell ARM revisions apart.
func NewDetector() *Detector {
	return &Detector{
		Env:        HostEnv(),
		Identifier: UnameCommand{},
	}
}

// Guess detects the platform. It never fails: ambiguous input falls back
// to a default classification.
func (d *Detector) Guess(ctx context.Context) Platform {
	d.logf("Detecting platform from os.name=%q os.arch=%q", d.Env.OSName, d.Env.Arch)

	o := GuessOS(d.Env.OSName)
	arch := GuessArchitecture(ctx, d.Env.Arch, d.identifier())
	p := New(o, arch)

	d.logf("Detected %s/%s (%s)", o, arch, p.NodeClassifier())
	return p
}

func (d *Detector) identifier() SystemIdentifier {
	if d.Identifier == nil {
		return nil
	}
	return IdentifierFunc(func(ctx context.Context) (string, bool) {
		line, ok := d.Identifier.Identify(ctx)
		if ok {
			d.logf("System identification: %s", line)
		} else {
			d.logf("System identification inconclusive, assuming %s", ARMV7L)
		}
		return line, ok
	})
}

func (d *Detector) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// Guess detects the platform of the running host
func Guess(ctx context.Context) Platform {
	return NewDetector().Guess(ctx)
}

// Describe returns a one-line human readable summary of p
func Describe(p Platform) string {
	return fmt.Sprintf("%s/%s (classifier: %s, archive: %s)",
		p.OS(), p.Architecture(), p.NodeClassifier(), p.ArchiveExtension())
}
