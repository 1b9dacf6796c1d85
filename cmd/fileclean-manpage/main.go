// Command fileclean-manpage writes the fileclean(1) manual page in roff to
// stdout. Only the root page is written; subcommands are listed under
// SEE ALSO.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/kenchou/file-clean/cmd/fileclean"
	"github.com/kenchou/file-clean/internal/version"
)

// manHeader dates the page with the build date when it is known
func manHeader() *doc.GenManHeader {
	header := &doc.GenManHeader{
		Title:   "FILECLEAN",
		Section: "1",
		Source:  version.String(),
		Manual:  "File cleaning utilities",
	}
	if built, err := time.Parse(time.RFC3339, version.Date); err == nil {
		header.Date = &built
	}
	return header
}

func main() {
	if err := doc.GenMan(fileclean.NewRootCmd(), manHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fileclean-manpage: %v\n", err)
		os.Exit(1)
	}
}
