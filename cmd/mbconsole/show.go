package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one exchange or queue.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "exchange <name>",
			Short: "Show an exchange.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, nil)
				if err != nil {
					return err
				}
				exchange, err := api.GetExchange(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return out.Exchange(cmd.OutOrStdout(), exchange)
			},
		},
		&cobra.Command{
			Use:   "queue <name>",
			Short: "Show a queue.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, nil)
				if err != nil {
					return err
				}
				queue, err := api.GetQueue(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return out.Queue(cmd.OutOrStdout(), queue)
			},
		},
	)
	return cmd
}
