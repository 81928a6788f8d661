package output

import (
	"encoding/csv"
	"io"

	"github.com/ottermq/mbconsole/internal/core/models"
)

// CSV writes a header row followed by one record per resource.
type CSV struct{}

func (c *CSV) Exchanges(w io.Writer, exchanges []models.ExchangeMetadata) error {
	records := make([][]string, len(exchanges))
	for i, e := range exchanges {
		records[i] = exchangeRecord(e)
	}
	return writeCSV(w, exchangeHeader, records)
}

func (c *CSV) Exchange(w io.Writer, exchange *models.ExchangeMetadata) error {
	if exchange == nil {
		return nil
	}
	return c.Exchanges(w, []models.ExchangeMetadata{*exchange})
}

func (c *CSV) Queues(w io.Writer, queues []models.QueueMetadata) error {
	records := make([][]string, len(queues))
	for i, q := range queues {
		records[i] = queueRecord(q)
	}
	return writeCSV(w, queueHeader, records)
}

func (c *CSV) Queue(w io.Writer, queue *models.QueueMetadata) error {
	if queue == nil {
		return nil
	}
	return c.Queues(w, []models.QueueMetadata{*queue})
}

func (c *CSV) Bindings(w io.Writer, bindings []models.BindingSet) error {
	return writeCSV(w, bindingHeader, bindingRecords(bindings))
}

func (c *CSV) Consumers(w io.Writer, consumers []models.ConsumerMetadata) error {
	records := make([][]string, len(consumers))
	for i, cm := range consumers {
		records[i] = consumerRecord(cm)
	}
	return writeCSV(w, consumerHeader, records)
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	if len(records) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
