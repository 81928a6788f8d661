package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ottermq/mbconsole/internal/core/models"
)

// Table draws bordered tables:
//
//	+ ---------- + ------ +
//	| Name       | Type   |
//	+ ---------- + ------ +
//	| amq.direct | direct |
//	+ ---------- + ------ +
type Table struct{}

func (t *Table) Exchanges(w io.Writer, exchanges []models.ExchangeMetadata) error {
	records := make([][]string, len(exchanges))
	for i, e := range exchanges {
		records[i] = exchangeRecord(e)
	}
	return printTable(w, exchangeHeader, records)
}

func (t *Table) Exchange(w io.Writer, exchange *models.ExchangeMetadata) error {
	if exchange == nil {
		return nil
	}
	return printDetail(w, exchangeHeader, exchangeRecord(*exchange), exchange.Permissions)
}

func (t *Table) Queues(w io.Writer, queues []models.QueueMetadata) error {
	records := make([][]string, len(queues))
	for i, q := range queues {
		records[i] = queueRecord(q)
	}
	return printTable(w, queueHeader, records)
}

func (t *Table) Queue(w io.Writer, queue *models.QueueMetadata) error {
	if queue == nil {
		return nil
	}
	return printDetail(w, queueHeader, queueRecord(*queue), queue.Permissions)
}

func (t *Table) Bindings(w io.Writer, bindings []models.BindingSet) error {
	return printTable(w, bindingHeader, bindingRecords(bindings))
}

func (t *Table) Consumers(w io.Writer, consumers []models.ConsumerMetadata) error {
	records := make([][]string, len(consumers))
	for i, c := range consumers {
		records[i] = consumerRecord(c)
	}
	return printTable(w, consumerHeader, records)
}

func printTable(w io.Writer, header []string, records [][]string) error {
	if len(records) == 0 {
		return nil
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, rec := range records {
		if len(rec) != len(header) {
			return fmt.Errorf("row has %d columns, header has %d", len(rec), len(header))
		}
		for i, cell := range rec {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	separator(&sb, widths)
	row(&sb, widths, header)
	separator(&sb, widths)
	for _, rec := range records {
		row(&sb, widths, rec)
	}
	separator(&sb, widths)

	_, err := io.WriteString(w, sb.String())
	return err
}

func separator(sb *strings.Builder, widths []int) {
	for _, width := range widths {
		sb.WriteString("+ ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" ")
	}
	sb.WriteString("+\n")
}

func row(sb *strings.Builder, widths []int, cells []string) {
	for i, cell := range cells {
		sb.WriteString("| ")
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}

// printDetail lists one resource as "Field : value" lines followed by its permissions.
func printDetail(w io.Writer, header, values []string, permissions []models.Permission) error {
	width := 0
	for _, h := range header {
		width = max(width, runewidth.StringWidth(h))
	}

	var sb strings.Builder
	for i, h := range header {
		fmt.Fprintf(&sb, "%s: %s\n", runewidth.FillRight(h, width+1), values[i])
	}
	if len(permissions) > 0 {
		sb.WriteString("\nPermissions\n===========\n")
		for _, p := range permissions {
			fmt.Fprintf(&sb, "%s: %s\n", p.Action, strings.Join(p.UserGroups, ","))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
