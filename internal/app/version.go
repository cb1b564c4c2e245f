package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/AniDashyan/parallel-summation/internal/app.Version=...".
var Version = "1.0.0"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "parsum %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
