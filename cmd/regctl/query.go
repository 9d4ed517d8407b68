package main

import (
	"github.com/spf13/cobra"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <root> [path]",
		Short: "Print a key's counts and metadata (query_key_info)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
}

func runQuery(args []string) error {
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

	info, err := reg.QueryKeyInfo(h)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(info)
	}
	printInfo("subkeys=%d maxSubkeyNameLen=%d maxClassLen=%d values=%d maxValueNameLen=%d maxValueDataLen=%d modif=%s class=%q\n",
		info.SubkeyCount, info.MaxSubkeyNameLen, info.MaxClassLen,
		info.ValueCount, info.MaxValueNameLen, info.MaxValueDataLen,
		info.Modif.Format("2006-01-02T15:04:05Z07:00"), info.Class)
	return nil
}
