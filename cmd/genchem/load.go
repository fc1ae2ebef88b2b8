package main

import (
	"github.com/daniacca/genchem/internal/genchem"
	"github.com/spf13/cobra"
)

type loadOptions struct {
	maxOrder int
	charge   bool
	output   outputFlags
}

func newLoadCmd(a *app) *cobra.Command {
	o := &loadOptions{}
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Build the reactions of a species system read from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := genchem.LoadSystemConfig(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-order") {
				cfg.MaxOrder = o.maxOrder
			}
			if cmd.Flags().Changed("charge") {
				cfg.TrackCharge = o.charge
			}
			a.logger.Debugf("System file loaded: path=%s name=%s species=%d", args[0], cfg.Name, len(cfg.Species))

			chem, err := genchem.BuildChemistryFromConfig(cfg, a.logger)
			if err != nil {
				return err
			}
			return o.output.write(a.out, chem)
		},
	}

	cmd.Flags().IntVarP(&o.maxOrder, "max-order", "k", 0, "override the file's max_order")
	cmd.Flags().BoolVar(&o.charge, "charge", false, "override the file's track_charge")
	o.output.register(cmd)
	return cmd
}
