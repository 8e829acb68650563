package platform

import (
	"errors"
	"testing"

	"github.com/arc-language/nodedist/pkg/core"
)

func TestResolveArtifact(t *testing.T) {
	tests := []struct {
		name    string
		p       Platform
		version string
		config  core.Config
		want    Artifact
	}{
		{
			name:    "linux",
			p:       New(Linux, X64),
			version: "v18.17.1",
			config:  core.Config{DownloadRoot: "https://nodejs.org/dist/"},
			want: Artifact{
				Version:       "v18.17.1",
				Classifier:    "linux-x64",
				DownloadPath:  "v18.17.1/node-v18.17.1-linux-x64.tar.gz",
				URL:           "https://nodejs.org/dist/v18.17.1/node-v18.17.1-linux-x64.tar.gz",
				LocalFilename: "node-v18.17.1-linux-x64",
				Extension:     "tar.gz",
				Archived:      true,
			},
		},
		{
			name:    "windows bare legacy",
			p:       New(Windows, X64),
			version: "v0.12.7",
			config:  core.Config{DownloadRoot: "https://mirror.example.com/node"},
			want: Artifact{
				Version:       "v0.12.7",
				Classifier:    "win-x64",
				DownloadPath:  "v0.12.7/x64/node.exe",
				URL:           "https://mirror.example.com/node/v0.12.7/x64/node.exe",
				LocalFilename: "node.exe",
				Legacy:        true,
			},
		},
		{
			name:    "windows archive from config version",
			p:       New(Windows, X86),
			version: "",
			config:  core.Config{NodeVersion: "v20.0.0", ArchiveOnWindows: true, DownloadRoot: "https://nodejs.org/dist/"},
			want: Artifact{
				Version:       "v20.0.0",
				Classifier:    "win-x86",
				DownloadPath:  "v20.0.0/node-v20.0.0-win-x86.zip",
				URL:           "https://nodejs.org/dist/v20.0.0/node-v20.0.0-win-x86.zip",
				LocalFilename: "node-v20.0.0-win-x86",
				Extension:     "zip",
				Archived:      true,
			},
		},
		{
			name:    "file mirror",
			p:       New(Mac, ARM64),
			version: "v18.0.0",
			config:  core.Config{DownloadRoot: "file:///srv/node-mirror/"},
			want: Artifact{
				Version:       "v18.0.0",
				Classifier:    "darwin-arm64",
				DownloadPath:  "v18.0.0/node-v18.0.0-darwin-arm64.tar.gz",
				URL:           "file:///srv/node-mirror/v18.0.0/node-v18.0.0-darwin-arm64.tar.gz",
				LocalFilename: "node-v18.0.0-darwin-arm64",
				Extension:     "tar.gz",
				Archived:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			got, err := ResolveArtifact(tt.p, tt.version, &cfg)
			if err != nil {
				t.Fatalf("ResolveArtifact: %v", err)
			}
			if *got != tt.want {
				t.Fatalf("got  %+v\nwant %+v", *got, tt.want)
			}
		})
	}
}

func TestResolveArtifactDefaultRoot(t *testing.T) {
	got, err := ResolveArtifact(New(Linux, ARM64), "v16.0.0", &core.Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := "https://nodejs.org/dist/v16.0.0/node-v16.0.0-linux-arm64.tar.gz"
	if got.URL != want {
		t.Fatalf("URL = %q, want %q", got.URL, want)
	}
}

func TestResolveArtifactErrors(t *testing.T) {
	p := New(Linux, X64)

	if _, err := ResolveArtifact(p, "", &core.Config{}); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}

	for _, root := range []string{"nodejs.org/dist", "/dist", "://bad"} {
		_, err := ResolveArtifact(p, "v18.0.0", &core.Config{DownloadRoot: root})
		if !errors.Is(err, ErrInvalidDownloadRoot) {
			t.Errorf("root %q: expected ErrInvalidDownloadRoot, got %v", root, err)
		}
	}
}
