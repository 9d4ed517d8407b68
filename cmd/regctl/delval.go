package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newDelValCmd())
}

func newDelValCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delval <root> <path> <name>",
		Short: "Delete a key value (delete_key_value)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelVal(args)
		},
	}
}

func runDelVal(args []string) error {
	rootName, path, name := args[0], args[1], args[2]

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	h, err := openPath(reg, rootName, path, regtypes.KeySetValue)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	if err := reg.DeleteKeyValue(h, name); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"name": name, "success": true})
	}
	printInfo("deleted %s\n", name)
	return nil
}
