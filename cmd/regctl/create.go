package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

var (
	createClass    string
	createVolatile bool
)

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(&createClass, "class", "", "Class string attached to the new key")
	cmd.Flags().BoolVar(&createVolatile, "volatile", false, "Create as REG_OPTION_VOLATILE")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <root> <path>",
		Short: "Create a key (create_key)",
		Long: `Example:
  regctl create HKEY_LOCAL_MACHINE "Software\\MyApp" --volatile`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
}

func runCreate(args []string) error {
	rootName, path := args[0], args[1]

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	rh, err := resolveRoot(reg, rootName, regtypes.KeyCreateSubKey)
	if err != nil {
		return err
	}
	defer reg.CloseKey(rh)

	options := regtypes.OptionNonVolatile
	if createVolatile {
		options = regtypes.OptionVolatile
	}
	h, created, err := reg.CreateKey(rh, path, createClass, options, regtypes.KeyAllAccess)
	if err != nil {
		return fmt.Errorf("create key: %w", err)
	}
	defer reg.CloseKey(h)

	if jsonOut {
		return printJSON(map[string]any{"path": path, "created": created})
	}
	printInfo("created=%v path=%s\\%s\n", created, rootName, path)
	return nil
}
