// pkg/platform/utils.go
package platform

import (
	"bufio"
	"io"
	"strings"
)

// firstLine reads the first non-empty line from r
func firstLine(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
