package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routelab/dtab/pkg/errors"
	"github.com/routelab/dtab/pkg/parser"
	"github.com/routelab/dtab/pkg/style"
)

var (
	fmtWrite bool
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Rewrite dtab files in canonical form",
	Long: `Parse each dtab file and re-emit it in canonical form: one dentry per
line, " => " between prefix and destination, normalized spacing around
operators, and explicit weights on union arms. Comments are not
preserved. By default the result is printed to stdout; -w writes it
back to the file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := 0
		for _, file := range args {
			differs, err := formatFile(file)
			if err != nil {
				return err
			}
			if differs {
				changed++
				if fmtCheck {
					fmt.Fprintf(os.Stderr, "%s %s\n",
						style.Render(style.WarningStyle, "needs formatting:"),
						style.Render(style.PathStyle, file))
				}
			}
		}
		if fmtCheck && changed > 0 {
			return errors.Newf(errors.ErrInvalidInput,
				"%d files need formatting", changed)
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Write the canonical form back to the file")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false,
		"Exit non-zero when a file is not in canonical form, without printing it")
}

func formatFile(file string) (changed bool, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "reading %s", file)
	}

	table, err := parser.ParseDtab(string(data))
	if err != nil {
		return false, err
	}

	canonical := table.String()
	changed = canonical != string(data)

	switch {
	case fmtCheck:
		// Report only.
	case fmtWrite:
		if changed {
			if err := os.WriteFile(file, []byte(canonical), 0644); err != nil {
				return false, errors.Wrapf(err, errors.ErrFileWrite, "writing %s", file)
			}
		}
	default:
		fmt.Print(canonical)
	}
	return changed, nil
}
