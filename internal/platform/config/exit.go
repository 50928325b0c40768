package config

import (
	"fmt"
	"os"
)

// exitPrefix tags startup failures in shared stderr.
const exitPrefix = "mjk-site: "

// Exitf reports a fatal cmd/site startup failure (bad flags, env or a
// listener that would not bind) on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, exitPrefix+format+"\n", args...)
	os.Exit(1)
}
