// Command fileclean-completions writes a shell completion script to stdout.
// Packaging runs it once per shell at build time.
package main

import (
	"fmt"
	"os"

	"github.com/kenchou/file-clean/cmd/fileclean"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(2)
	}

	rootCmd := fileclean.NewRootCmd()
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs([]string{"completion", os.Args[1]})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s completion: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}
