// Package version exposes the daemon's own build identity for logs and
// the /healthz response.
package version

import "fmt"

const (
	// Name of the service.
	Name = "logtaild"
	// Version of the service.
	Version = "0.1.0"
)

// String returns a plain text representation, e.g. "logtaild 0.1.0".
func String() string {
	return fmt.Sprintf("%s %s", Name, Version)
}
