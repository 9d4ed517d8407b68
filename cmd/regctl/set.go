package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, multi_sz, dword, qword, binary)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <root> <path> <name> <value>",
		Short: "Set a key value (set_key_value)",
		Long: `Example:
  regctl set HKEY_LOCAL_MACHINE "Software\\MyApp" Version "1.0.0"
  regctl set HKEY_LOCAL_MACHINE "Software\\MyApp" Enabled "1" --type dword`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	rootName, path, name, value := args[0], args[1], args[2], args[3]

	typ, data, err := parseValue(setType, value)
	if err != nil {
		return err
	}

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

	if err := reg.SetKeyValue(h, name, typ, data); err != nil {
		return fmt.Errorf("set value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"name": name, "type": typ.String(), "success": true})
	}
	printInfo("set %s = %s (%s)\n", name, value, typ)
	return nil
}
