package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routelab/dtab/pkg/config"
	"github.com/routelab/dtab/pkg/errors"
	"github.com/routelab/dtab/pkg/logging"
	"github.com/routelab/dtab/pkg/parser"
	"github.com/routelab/dtab/pkg/style"
)

var (
	checkStrict     bool
	checkAllowEmpty bool
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate dtab files against the dtab grammar",
	Long: `Parse each dtab file and report the first syntax or label error with
its position. With no arguments, file patterns are read from .dtab.toml
in the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := resolveFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return errors.New(errors.ErrInvalidInput,
				"no dtab files given and no .dtab.toml found")
		}

		failed := 0
		for _, file := range files {
			if err := checkFile(file); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s %s: %v\n",
					style.Render(style.ErrorStyle, "✗"),
					style.Render(style.PathStyle, file), err)
				continue
			}
			fmt.Printf("%s %s\n",
				style.Render(style.SuccessStyle, "✓"),
				style.Render(style.PathStyle, file))
		}

		if failed > 0 {
			return errors.Newf(errors.ErrInvalidInput,
				"%d of %d files failed", failed, len(files))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false,
		"Treat warnings, such as an empty dtab file, as failures")
	checkCmd.Flags().BoolVar(&checkAllowEmpty, "allow-empty", false,
		"Accept empty dtab files even under --strict")
}

// resolveFiles expands the command's file arguments; without arguments it
// falls back to the .dtab.toml globs.
func resolveFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrFileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if cfg.Strict {
		checkStrict = true
	}
	if cfg.AllowEmpty {
		checkAllowEmpty = true
	}

	var files []string
	for _, pattern := range cfg.Files {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"bad file pattern %q", pattern)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func checkFile(file string) error {
	logger := logging.GetLogger("check")

	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "reading %s", file)
	}

	table, err := parser.ParseDtab(string(data))
	if err != nil {
		return err
	}

	logger.Debug().Str("file", file).Int("entries", len(table)).Msg("checked dtab")
	if checkStrict && !checkAllowEmpty && len(table) == 0 {
		return errors.New(errors.ErrInvalidInput, "dtab is empty")
	}
	return nil
}
