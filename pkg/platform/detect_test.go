package platform

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

func TestHostEnvMapping(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         Env
		platform     Platform
	}{
		{"linux", "amd64", Env{"Linux", "amd64"}, New(Linux, X64)},
		{"windows", "386", Env{"Windows", "x86"}, New(Windows, X86)},
		{"darwin", "arm64", Env{"Mac OS X", "aarch64"}, New(Mac, ARM64)},
		{"solaris", "amd64", Env{"SunOS", "amd64"}, New(SunOS, X64)},
		{"illumos", "amd64", Env{"SunOS", "amd64"}, New(SunOS, X64)},
		{"linux", "ppc64le", Env{"Linux", "ppc64le"}, New(Linux, PPC64LE)},
		{"linux", "s390x", Env{"Linux", "s390x"}, New(Linux, S390X)},
		{"freebsd", "amd64", Env{"freebsd", "amd64"}, New(Linux, X64)},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			env := hostEnv(tt.goos, tt.goarch)
			if env != tt.want {
				t.Fatalf("hostEnv = %+v, want %+v", env, tt.want)
			}

			d := &Detector{Env: env}
			if got := d.Guess(context.Background()); got != tt.platform {
				t.Fatalf("Guess = %s/%s, want %s/%s", got.OS(), got.Architecture(), tt.platform.OS(), tt.platform.Architecture())
			}
		})
	}
}

func TestHostEnvOverrides(t *testing.T) {
	t.Setenv(EnvOSName, "Windows 11")
	t.Setenv(EnvArch, "arm")

	env := HostEnv()
	if env.OSName != "Windows 11" || env.Arch != "arm" {
		t.Fatalf("overrides ignored: %+v", env)
	}
}

func TestDetectorGuessArm(t *testing.T) {
	var buf bytes.Buffer
	d := &Detector{
		Env:        Env{OSName: "Linux", Arch: "arm"},
		Identifier: staticIdentifier("Linux pi 4.19.66+ armv6l GNU/Linux", true),
		Logger:     log.New(&buf, "", 0),
	}

	p := d.Guess(context.Background())
	if p != New(Linux, ARMV6L) {
		t.Fatalf("got %s", p)
	}
	if !strings.Contains(buf.String(), "armv6l GNU/Linux") {
		t.Fatalf("identification not logged:\n%s", buf.String())
	}
}

func TestDetectorGuessArmInconclusive(t *testing.T) {
	var buf bytes.Buffer
	d := &Detector{
		Env:        Env{OSName: "Linux", Arch: "arm"},
		Identifier: staticIdentifier("", false),
		Logger:     log.New(&buf, "", 0),
	}

	if p := d.Guess(context.Background()); p != New(Linux, ARMV7L) {
		t.Fatalf("got %s", p)
	}
	if !strings.Contains(buf.String(), "inconclusive") {
		t.Fatalf("fallback not logged:\n%s", buf.String())
	}
}

func TestDetectorWithoutLogger(t *testing.T) {
	d := &Detector{Env: Env{OSName: "Mac OS X", Arch: "x86_64"}}
	if p := d.Guess(context.Background()); p != New(Mac, X64) {
		t.Fatalf("got %s", p)
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(New(Windows, X64))
	want := "Windows/x64 (classifier: win-x64, archive: zip)"
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}
