// pkg/platform/uname_other.go

//go:build !(linux || darwin || freebsd || netbsd || openbsd || solaris)

package platform

import "context"

// KernelIdentifier is always inconclusive on systems without uname(2)
type KernelIdentifier struct{}

func (KernelIdentifier) Identify(ctx context.Context) (string, bool) {
	return "", false
}
