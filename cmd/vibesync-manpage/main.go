package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/vibesync/cmd/vibesync"
	"github.com/arthur-debert/vibesync/internal/version"
)

func main() {
	rootCmd := vibesync.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "VIBESYNC",
		Section: "1",
		Source:  "vibesync " + version.Version,
		Manual:  "vibesync manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
