package main

import (
	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newOpenCmd())
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <root> <path>",
		Short: "Resolve a key and report whether it exists (open_key)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args)
		},
	}
}

func runOpen(args []string) error {
	rootName, path := args[0], args[1]

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

	if jsonOut {
		return printJSON(map[string]any{"path": path, "exists": true})
	}
	printInfo("ok %s\\%s\n", rootName, path)
	return nil
}
