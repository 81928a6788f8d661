package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ottermq/mbconsole/internal/core/models"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

var (
	exchangeHeader = []string{"Name", "Type", "Durable", "Owner"}
	queueHeader    = []string{"Name", "Consumers", "Capacity", "Size", "Durable", "AutoDelete", "Owner"}
	bindingHeader  = []string{"Queue", "Pattern"}
	consumerHeader = []string{"ID", "Exclusive", "FlowEnabled", "Connection", "Channel"}
)

// Formatter renders broker resources for the command line. Empty lists print nothing.
type Formatter interface {
	Exchanges(w io.Writer, exchanges []models.ExchangeMetadata) error
	Exchange(w io.Writer, exchange *models.ExchangeMetadata) error
	Queues(w io.Writer, queues []models.QueueMetadata) error
	Queue(w io.Writer, queue *models.QueueMetadata) error
	Bindings(w io.Writer, bindings []models.BindingSet) error
	Consumers(w io.Writer, consumers []models.ConsumerMetadata) error
}

// New returns the formatter registered under name.
func New(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatTable:
		return &Table{}, nil
	case FormatCSV:
		return &CSV{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (use %s or %s)", name, FormatTable, FormatCSV)
}

// Message prints a one line status, e.g. after a create or delete.
func Message(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func exchangeRecord(e models.ExchangeMetadata) []string {
	return []string{e.Name, e.Type, strconv.FormatBool(e.Durable), e.Owner}
}

func queueRecord(q models.QueueMetadata) []string {
	return []string{
		q.Name,
		strconv.Itoa(q.ConsumerCount),
		strconv.Itoa(q.Capacity),
		strconv.Itoa(q.Size),
		strconv.FormatBool(q.Durable),
		strconv.FormatBool(q.AutoDelete),
		q.Owner,
	}
}

func bindingRecords(sets []models.BindingSet) [][]string {
	var records [][]string
	for _, set := range sets {
		for _, b := range set.Bindings {
			records = append(records, []string{b.QueueName, set.BindingPattern})
		}
	}
	return records
}

func consumerRecord(c models.ConsumerMetadata) []string {
	return []string{
		strconv.Itoa(c.ID),
		strconv.FormatBool(c.IsExclusive),
		strconv.FormatBool(c.FlowEnabled),
		strconv.Itoa(c.TransportProperties.ConnectionID),
		strconv.Itoa(c.TransportProperties.ChannelID),
	}
}
