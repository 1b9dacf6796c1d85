package main

import (
	"fmt"
	"os"

	"github.com/kenchou/file-clean/cmd/fileclean"
	"github.com/kenchou/file-clean/pkg/style"
)

func main() {
	rootCmd := fileclean.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
