package main

import (
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/internal/output"
	"github.com/spf13/cobra"
)

// listOptions apply the console's search box and pager to command output.
type listOptions struct {
	filterColumn string
	filter       string
	page         int
	pageSize     int
}

func newListCmd(g *globalOptions) *cobra.Command {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exchanges, queues, consumers or bindings.",
	}

	f := cmd.PersistentFlags()
	f.StringVar(&lo.filterColumn, "filter-column", "", "column the filter applies to (defaults to the first column)")
	f.StringVar(&lo.filter, "filter", "", "case-insensitive substring the column must contain")
	f.IntVar(&lo.page, "page", 0, "zero based page index")
	f.IntVar(&lo.pageSize, "page-size", 0, "rows per page; 0 prints every matching row")

	cmd.AddCommand(
		&cobra.Command{
			Use:     "exchange",
			Aliases: []string{"exchanges"},
			Short:   "List exchanges.",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, lo)
				if err != nil {
					return err
				}
				exchanges, err := api.ListExchanges(cmd.Context())
				if err != nil {
					return err
				}
				rows := window(lo, console.MapExchangeRows(exchanges), console.ExchangeColumns)
				return out.Exchanges(cmd.OutOrStdout(), console.Select(exchanges, rows, func(r console.ExchangeRow) int { return r.ID }))
			},
		},
		&cobra.Command{
			Use:     "queue",
			Aliases: []string{"queues"},
			Short:   "List queues.",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, lo)
				if err != nil {
					return err
				}
				queues, err := api.ListQueues(cmd.Context())
				if err != nil {
					return err
				}
				rows := window(lo, console.MapQueueRows(queues), console.QueueColumns)
				return out.Queues(cmd.OutOrStdout(), console.Select(queues, rows, func(r console.QueueRow) int { return r.ID }))
			},
		},
		&cobra.Command{
			Use:     "consumer <queue>",
			Aliases: []string{"consumers"},
			Short:   "List the consumers of a queue.",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, lo)
				if err != nil {
					return err
				}
				consumers, err := api.ListQueueConsumers(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				rows := window(lo, console.MapConsumerRows(consumers), console.ConsumerColumns)
				return out.Consumers(cmd.OutOrStdout(), console.Select(consumers, rows, func(r console.ConsumerRow) int { return r.ID }))
			},
		},
		&cobra.Command{
			Use:     "binding <exchange>",
			Aliases: []string{"bindings"},
			Short:   "List the bindings of an exchange.",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, api, err := prepare(g, lo)
				if err != nil {
					return err
				}
				sets, err := api.ListExchangeBindings(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				rows := window(lo, console.MapBindingRows(sets), console.BindingColumns)
				return out.Bindings(cmd.OutOrStdout(), bindingSets(rows))
			},
		},
	)
	return cmd
}

func prepare(g *globalOptions, lo *listOptions) (output.Formatter, *client.Client, error) {
	if lo != nil && (lo.page < 0 || lo.pageSize < 0) {
		return nil, nil, usageError("--page and --page-size must not be negative")
	}
	out, err := g.formatter()
	if err != nil {
		return nil, nil, err
	}
	api, err := g.brokerClient()
	if err != nil {
		return nil, nil, err
	}
	return out, api, nil
}

// window filters rows and, when a page size is set, cuts the requested page.
func window[R console.Row](lo *listOptions, rows []R, columns []string) []R {
	column := lo.filterColumn
	if column == "" {
		column = columns[0]
	}
	if lo.pageSize == 0 {
		return console.Filter(rows, column, lo.filter)
	}
	state := console.NewListState[R](lo.pageSize)
	state.SetRows(rows)
	state.SetFilter(column, lo.filter)
	state.SetPage(lo.page)
	return state.Visible()
}

// bindingSets regroups flattened rows by pattern, keeping first-seen order.
func bindingSets(rows []console.BindingRow) []models.BindingSet {
	var sets []models.BindingSet
	index := map[string]int{}
	for _, r := range rows {
		i, ok := index[r.Pattern]
		if !ok {
			i = len(sets)
			index[r.Pattern] = i
			sets = append(sets, models.BindingSet{BindingPattern: r.Pattern, Bindings: []models.BoundQueue{}})
		}
		if r.Queue != "" {
			sets[i].Bindings = append(sets[i].Bindings, models.BoundQueue{QueueName: r.Queue})
		}
	}
	return sets
}
