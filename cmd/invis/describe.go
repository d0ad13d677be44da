package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type description struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Accepts string      `yaml:"accepts"`
	Chain   []string    `yaml:"chain,flow"`
	Layers  []layerDesc `yaml:"layers,omitempty"`
}

type layerDesc struct {
	Requirement string   `yaml:"requirement"`
	Rules       []string `yaml:"rules,flow"`
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Show the chain and rules of a requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			req, err := reg.Resolve(args[0])
			if err != nil {
				return err
			}

			d := description{
				Name:    req.Name(),
				Kind:    req.Kind().String(),
				Accepts: req.Accepts(),
				Chain:   req.Chain(),
			}
			for _, l := range req.Layers() {
				if len(l.Rules) == 0 {
					continue
				}
				ld := layerDesc{Requirement: l.Requirement}
				for _, r := range l.Rules {
					ld.Rules = append(ld.Rules, r.String())
				}
				d.Layers = append(d.Layers, ld)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(d); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
