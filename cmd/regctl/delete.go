package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <root> <parent-path> <name>",
		Short: "Delete a childless key (delete_key)",
		Long: `Example:
  regctl delete HKEY_LOCAL_MACHINE "Software\\MyApp" "OldKey"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(args []string) error {
	rootName, parentPath, name := args[0], args[1], args[2]

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	parent, err := openPath(reg, rootName, parentPath, regtypes.KeyCreateSubKey)
	if err != nil {
		return err
	}
	defer reg.CloseKey(parent)

	if err := reg.DeleteKey(parent, name); err != nil {
		return fmt.Errorf("delete key: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"name": name, "success": true})
	}
	printInfo("deleted %s\n", name)
	return nil
}
