// pkg/platform/uname_unix.go

//go:build linux || darwin || freebsd || netbsd || openbsd || solaris

package platform

import (
	"context"
	"strings"

	"golang.org/x/sys/unix"
)

// KernelIdentifier identifies the system with the uname(2) system call
// instead of spawning a process. The line has the same field order as
// "uname -a".
type KernelIdentifier struct{}

func (KernelIdentifier) Identify(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", false
	}

	fields := []string{
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Nodename[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Version[:]),
		unix.ByteSliceToString(u.Machine[:]),
	}
	line := strings.Join(fields, " ")
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}
