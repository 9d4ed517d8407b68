package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newEnumValCmd())
}

func newEnumValCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumval <root> [path]",
		Short: "List a key's values (enum_key_value)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumVal(args)
		},
	}
}

func runEnumVal(args []string) error {
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

	h, err := openPath(reg, rootName, path, regtypes.KeyQueryValue)
	if err != nil {
		return err
	}
	defer reg.CloseKey(h)

	type val struct {
		Name  string `json:"name"`
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	var values []val
	for i := 0; ; i++ {
		name, typ, data, err := reg.EnumKeyValue(h, i)
		if errors.Is(err, regtypes.ErrNoMoreItems) {
			break
		}
		if err != nil {
			return err
		}
		values = append(values, val{Name: name, Type: typ.String(), Value: formatValue(typ, data)})
	}

	if jsonOut {
		return printJSON(values)
	}
	for _, v := range values {
		printInfo("%s (%s) = %s\n", v.Name, v.Type, v.Value)
	}
	return nil
}
