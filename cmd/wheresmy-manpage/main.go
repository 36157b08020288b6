package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wheresmy/cmd/wheresmy"
	"github.com/arthur-debert/wheresmy/internal/version"
)

func main() {
	rootCmd := wheresmy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WHERESMY",
		Section: "1",
		Source:  "wheresmy " + version.Version,
		Manual:  "wheresmy manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
