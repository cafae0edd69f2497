// Command surreal renders surreal view trees headlessly and manages theme
// files.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/surreal-ui/surreal/cmd/surreal/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		prefix := "Error:"
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			prefix = "\x1b[31mError:\x1b[0m"
		}
		fmt.Fprintln(os.Stderr, prefix, err)
		os.Exit(1)
	}
}
