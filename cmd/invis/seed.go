package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DT021/invis/pkg/contract"
)

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a seed file applies cleanly to the builtin requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := contract.NewRegistry(contract.WithLogger(a.log))
			before := len(reg.Names())
			if err := reg.LoadSeedFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d requirements ok\n", args[0], len(reg.Names())-before)
			return nil
		},
	})
	return cmd
}
