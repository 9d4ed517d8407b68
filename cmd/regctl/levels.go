package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLevelsCmd())
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels <current> <saving>",
		Short: "Print what set_registry_levels would update",
		Long: `levels reports the current_level/saving_level pair a subsequent
--config-driven invocation would apply; the registry context itself only
lives for the duration of one process, so there is nothing persistent to
mutate here beyond what --config already seeds (set_registry_levels).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(args)
		},
	}
}

func runLevels(args []string) error {
	current, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	saving, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	reg.SetRegistryLevels(current, saving)

	if jsonOut {
		return printJSON(map[string]any{"current_level": current, "saving_level": saving})
	}
	printInfo("current_level=%d saving_level=%d\n", current, saving)
	return nil
}
