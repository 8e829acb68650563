// pkg/platform/platform.go
package platform

import (
	"strings"
)

const (
	// legacyVersionPrefix marks releases published under the 0.x layout
	legacyVersionPrefix = "v0."

	windowsExecutable = "node.exe"
)

// Platform is an OS and architecture pair. It is a plain value and never
// changes after construction.
type Platform struct {
	os   OS
	arch Architecture
}

// New returns the platform for os and arch. Any combination is accepted.
func New(os OS, arch Architecture) Platform {
	return Platform{os: os, arch: arch}
}

// OS returns the operating system
func (p Platform) OS() OS {
	return p.os
}

// Architecture returns the CPU architecture
func (p Platform) Architecture() Architecture {
	return p.arch
}

// ArchiveExtension returns "zip" on Windows and "tar.gz" elsewhere
func (p Platform) ArchiveExtension() string {
	return p.os.ArchiveExtension()
}

// Codename returns the OS codename, e.g. "darwin"
func (p Platform) Codename() string {
	return p.os.Codename()
}

func (p Platform) IsWindows() bool {
	return p.os == Windows
}

func (p Platform) IsMac() bool {
	return p.os == Mac
}

// NodeClassifier returns "<codename>-<arch>", e.g. "linux-x64"
func (p Platform) NodeClassifier() string {
	return p.Codename() + "-" + p.arch.String()
}

// LongNodeFilename returns the local name of the distribution without its
// extension. On Windows without an archive it is the bare executable.
func (p Platform) LongNodeFilename(nodeVersion string, archiveOnWindows bool) string {
	if p.IsWindows() && !archiveOnWindows {
		return windowsExecutable
	}
	return "node-" + nodeVersion + "-" + p.NodeClassifier()
}

// NodeDownloadFilename returns the path of the distribution relative to the
// download root.
func (p Platform) NodeDownloadFilename(nodeVersion string, archiveOnWindows bool) string {
	if !p.IsWindows() || archiveOnWindows {
		return nodeVersion + "/" + p.LongNodeFilename(nodeVersion, archiveOnWindows) + "." + p.ArchiveExtension()
	}

	legacy := strings.HasPrefix(nodeVersion, legacyVersionPrefix)
	switch {
	case p.arch == X64 && legacy:
		return nodeVersion + "/x64/" + windowsExecutable
	case p.arch == X64:
		return nodeVersion + "/win-x64/" + windowsExecutable
	case legacy:
		return nodeVersion + "/" + windowsExecutable
	default:
		return nodeVersion + "/win-x86/" + windowsExecutable
	}
}

// String returns the classifier
func (p Platform) String() string {
	return p.NodeClassifier()
}
