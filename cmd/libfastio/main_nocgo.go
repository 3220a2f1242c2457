//go:build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "libfastio must be built with cgo enabled")
	os.Exit(1)
}
