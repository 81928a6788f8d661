package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/output"
	"github.com/spf13/cobra"
)

func newCreateCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an exchange or queue.",
	}

	var (
		kind            string
		exchangeDurable bool
	)
	exchange := &cobra.Command{
		Use:   "exchange <name>",
		Short: "Create an exchange.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := prepare(g, nil)
			if err != nil {
				return err
			}
			dialog := &console.ExchangeDialog{
				Name:       args[0],
				Type:       kind,
				Durability: durability(exchangeDurable),
			}
			if err := dialog.Submit(cmd.Context(), api); err != nil {
				return validationAsUsage(err)
			}
			return output.Message(cmd.OutOrStdout(), fmt.Sprintf("Exchange %s created", args[0]))
		},
	}
	exchange.Flags().StringVar(&kind, "type", "direct", "exchange type: direct, fanout, topic or headers")
	exchange.Flags().BoolVar(&exchangeDurable, "durable", false, "survive a broker restart")

	var (
		queueDurable bool
		autoDelete   bool
	)
	queue := &cobra.Command{
		Use:   "queue <name>",
		Short: "Create a queue.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := prepare(g, nil)
			if err != nil {
				return err
			}
			dialog := &console.QueueDialog{
				Name:       args[0],
				Durability: durability(queueDurable),
				AutoDelete: strconv.FormatBool(autoDelete),
			}
			if err := dialog.Submit(cmd.Context(), api); err != nil {
				return validationAsUsage(err)
			}
			return output.Message(cmd.OutOrStdout(), fmt.Sprintf("Queue %s created", args[0]))
		},
	}
	queue.Flags().BoolVar(&queueDurable, "durable", false, "survive a broker restart")
	queue.Flags().BoolVar(&autoDelete, "auto-delete", false, "delete once the last consumer leaves")

	cmd.AddCommand(exchange, queue)
	return cmd
}

func durability(durable bool) string {
	if durable {
		return "durable"
	}
	return "transient"
}

func validationAsUsage(err error) error {
	if errors.Is(err, console.ErrValidation) {
		return usageError("%v", err)
	}
	return err
}
