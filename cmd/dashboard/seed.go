package main

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert default transport rates and the bootstrap administrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.migrate(); err != nil {
			return err
		}
		return a.seed(cmd.Context())
	},
}
