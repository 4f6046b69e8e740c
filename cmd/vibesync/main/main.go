package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/vibesync/cmd/vibesync"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/style"
)

func main() {
	rootCmd := vibesync.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The check report already told the user what drifted
		if !errors.IsErrorCode(err, errors.ErrOutOfSync) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
