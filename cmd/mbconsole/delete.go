package main

import (
	"fmt"

	"github.com/ottermq/mbconsole/internal/output"
	"github.com/spf13/cobra"
)

func newDeleteCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an exchange or queue, or purge a queue's messages.",
	}

	var exchangeIfUnused bool
	exchange := &cobra.Command{
		Use:   "exchange <name>",
		Short: "Delete an exchange.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := prepare(g, nil)
			if err != nil {
				return err
			}
			if err := api.DeleteExchange(cmd.Context(), args[0], exchangeIfUnused); err != nil {
				return err
			}
			return output.Message(cmd.OutOrStdout(), fmt.Sprintf("Exchange %s deleted", args[0]))
		},
	}
	exchange.Flags().BoolVar(&exchangeIfUnused, "if-unused", false, "only delete when no queue is bound")

	var queueIfUnused, ifEmpty bool
	queue := &cobra.Command{
		Use:   "queue <name>",
		Short: "Delete a queue.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := prepare(g, nil)
			if err != nil {
				return err
			}
			if err := api.DeleteQueue(cmd.Context(), args[0], queueIfUnused, ifEmpty); err != nil {
				return err
			}
			return output.Message(cmd.OutOrStdout(), fmt.Sprintf("Queue %s deleted", args[0]))
		},
	}
	queue.Flags().BoolVar(&queueIfUnused, "if-unused", false, "only delete when the queue has no consumers")
	queue.Flags().BoolVar(&ifEmpty, "if-empty", false, "only delete when the queue holds no messages")

	messages := &cobra.Command{
		Use:   "messages <queue>",
		Short: "Purge every ready message from a queue.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := prepare(g, nil)
			if err != nil {
				return err
			}
			n, err := api.PurgeQueue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Message(cmd.OutOrStdout(), fmt.Sprintf("%d messages purged from %s", n, args[0]))
		},
	}

	cmd.AddCommand(exchange, queue, messages)
	return cmd
}
