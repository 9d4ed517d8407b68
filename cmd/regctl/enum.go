package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newEnumCmd())
}

func newEnumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enum <root> [path]",
		Short: "List a key's direct subkeys (enum_key)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnum(args)
		},
	}
}

func runEnum(args []string) error {
	rootName := args[0]
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	h, err := openPath(reg, rootName, path, regtypes.KeyEnumerateSubKeys)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	type child struct {
		Name  string `json:"name"`
		Class string `json:"class,omitempty"`
	}
	var children []child
	for i := 0; ; i++ {
		name, class, _, err := reg.EnumKey(h, i)
		if errors.Is(err, regtypes.ErrNoMoreItems) {
			break
		}
		if err != nil {
			return err
		}
		children = append(children, child{Name: name, Class: class})
	}

	if jsonOut {
		return printJSON(children)
	}
	for _, c := range children {
		printInfo("%s\n", c.Name)
	}
	return nil
}
