package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newLoadCmd())
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <root> <path> <file>",
		Short: "Merge a .reg v2 file under a key (load_registry)",
		Long: `Example:
  regctl load HKEY_LOCAL_MACHINE "Software\\MyApp" snapshot.reg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args)
		},
	}
}

func runLoad(args []string) error {
	rootName, path, file := args[0], args[1], args[2]

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	h, err := openPath(reg, rootName, path, regtypes.KeySetValue|regtypes.KeyCreateSubKey)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	printVerbose("Reading snapshot: %s\n", file)
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	if err := reg.LoadRegistry(h, f); err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"file": file, "success": true})
	}
	printInfo("loaded %s under %s\\%s\n", file, rootName, path)
	return nil
}
