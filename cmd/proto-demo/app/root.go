package app

import (
	"github.com/spf13/cobra"
)

// NewRootCmd returns the proto-demo command. It accepts no arguments.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "proto-demo",
		Short:        "Build a pithos.common.User message and greet it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := New(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
}
