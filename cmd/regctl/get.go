package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <root> <path> <name>",
		Short: "Get a key value (get_key_value)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	rootName, path, name := args[0], args[1], args[2]

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	h, err := openPath(reg, rootName, path, regtypes.KeyQueryValue)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	typ, data, err := reg.GetKeyValue(h, name)
	if err != nil {
		return fmt.Errorf("get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"name": name, "type": typ.String(), "size": len(data), "value": formatValue(typ, data)})
	}
	printInfo("%s\n", formatValue(typ, data))
	return nil
}
