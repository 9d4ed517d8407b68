package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

var saveStdout bool

func init() {
	cmd := newSaveCmd()
	cmd.Flags().BoolVar(&saveStdout, "stdout", false, "Write to stdout instead of a file")
	rootCmd.AddCommand(cmd)
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <root> [path] <file>",
		Short: "Write a subtree out (save_registry)",
		Long: `Example:
  regctl --config bootstrap.yaml save HKEY_LOCAL_MACHINE "Software\\MyApp" out.reg
  regctl --config bootstrap.yaml save HKEY_LOCAL_MACHINE --stdout -`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(args)
		},
	}
}

func runSave(args []string) error {
	rootName := args[0]
	var path, file string
	if len(args) == 3 {
		path, file = args[1], args[2]
	} else {
		file = args[1]
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	h, err := openPath(reg, rootName, path, regtypes.KeyQueryValue|regtypes.KeyEnumerateSubKeys)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	var w = os.Stdout
	if !saveStdout {
		printVerbose("Writing snapshot: %s\n", file)
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("create %s: %w", file, err)
		}
		defer f.Close()
		w = f
	}

	if err := reg.SaveRegistry(h, w); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}

	if !saveStdout {
		printInfo("saved to %s\n", file)
	}
	return nil
}
