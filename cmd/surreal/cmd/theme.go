package cmd

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print or validate theme files",
		Long: `Work with YAML theme files.

A theme file only needs the keys it overrides; everything else keeps the
default value. Unknown keys are rejected.

Usage:
  surreal theme print            # Print the default theme
  surreal theme print FILE       # Print FILE merged over the default theme
  surreal theme validate FILE    # Check FILE and report the first problem`,
		Usage: "surreal theme <print|validate> [FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand is required (print or validate)\n\nUsage: surreal theme <print|validate> [FILE]")
	}

	switch args[0] {
	case "print":
		th := theme.Default()
		if len(args) > 1 {
			var err error
			if th, err = theme.Load(args[1]); err != nil {
				return err
			}
		}
		data, err := theme.Marshal(th)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case "validate":
		if len(args) < 2 {
			return fmt.Errorf("validate requires a theme file")
		}
		if _, err := theme.Load(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: ok\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown theme subcommand %q (use print or validate)", args[0])
	}
}
