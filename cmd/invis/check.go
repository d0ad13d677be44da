package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/validator"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "check <name> <value>",
		Short: "Check a YAML literal against a requirement",
		Long: `Check parses <value> as a YAML literal (42, 1.5, "42", true, [1, 2], {a: 1})
and checks it against the requirement called <name>. It exits with status 1
when the value is rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			req, err := reg.Resolve(args[0])
			if err != nil {
				return err
			}
			var value any
			if err := yaml.Unmarshal([]byte(args[1]), &value); err != nil {
				return fmt.Errorf("parse value %q: %w", args[1], err)
			}

			out := cmd.OutOrStdout()
			if err := reg.Enforce("value", req, value); err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				if explain {
					printExplanation(cmd, req, value)
				}
				return errCheckFailed
			}
			fmt.Fprintf(out, "ok: %s accepts %v (%s)\n", req.Name(), value, contract.TypeName(value))
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "list every failing rule instead of the first one")
	return cmd
}

func printExplanation(cmd *cobra.Command, req *contract.Requirement, value any) {
	err := req.Explain(value)
	if contract.IsTypeMismatch(err) {
		return
	}
	for _, v := range validator.ExtractValidationErrors(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", v.Rule, v.Message)
	}
}
