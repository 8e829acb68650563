// pkg/platform/resolver.go
package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/arc-language/nodedist/pkg/core"
)

// Artifact describes where a Node.js distribution lives and what it is
// called once downloaded.
type Artifact struct {
	Version       string `yaml:"version"`
	Classifier    string `yaml:"classifier"`
	DownloadPath  string `yaml:"download_path"`
	URL           string `yaml:"url"`
	LocalFilename string `yaml:"local_filename"`
	Extension     string `yaml:"extension"`
	Archived      bool   `yaml:"archived"`
	Legacy        bool   `yaml:"legacy"`
}

// ResolveArtifact resolves the distribution of version for platform p
// using the download settings in config. An empty version falls back to
// config.NodeVersion.
func ResolveArtifact(p Platform, version string, config *core.Config) (*Artifact, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if version == "" {
		version = config.NodeVersion
	}
	if version == "" {
		return nil, fmt.Errorf("%w: no version given and node_version is not configured", ErrInvalidVersion)
	}

	root := config.DownloadRoot
	if root == "" {
		root = core.DefaultDownloadRoot
	}

	archived := !p.IsWindows() || config.ArchiveOnWindows
	downloadPath := p.NodeDownloadFilename(version, config.ArchiveOnWindows)

	u, err := joinURL(root, downloadPath)
	if err != nil {
		return nil, err
	}

	a := &Artifact{
		Version:       version,
		Classifier:    p.NodeClassifier(),
		DownloadPath:  downloadPath,
		URL:           u,
		LocalFilename: p.LongNodeFilename(version, config.ArchiveOnWindows),
		Archived:      archived,
		Legacy:        strings.HasPrefix(version, legacyVersionPrefix),
	}
	if archived {
		a.Extension = p.ArchiveExtension()
	}

	return a, nil
}

func joinURL(root, path string) (string, error) {
	base, err := url.Parse(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDownloadRoot, err)
	}
	if !base.IsAbs() || (base.Host == "" && base.Scheme != "file") {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidDownloadRoot, root)
	}
	return base.JoinPath(path).String(), nil
}
