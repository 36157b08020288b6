package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wheresmy/cmd/wheresmy"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/ui/output/styles"
)

func main() {
	rootCmd := wheresmy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Errors without a code come from cobra itself (bad flags, unknown
		// commands), where the usage is the useful part
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
