package console

import (
	"strconv"
	"strings"

	"github.com/ottermq/mbconsole/internal/core/models"
)

// Row is anything the filter predicate can look into.
type Row interface {
	// Column returns the display value of the named column and whether the column exists.
	Column(name string) (string, bool)
}

// Filter columns offered by the list views.
const (
	ColumnName       = "Name"
	ColumnType       = "Type"
	ColumnDurability = "Durability"
	ColumnAutoDelete = "autoDelete"
)

// ExchangeRow is one exchange rendered in the exchanges table.
type ExchangeRow struct {
	ID         int
	Name       string
	Type       string
	Durability string
}

func (r ExchangeRow) Column(name string) (string, bool) {
	switch {
	case strings.EqualFold(name, ColumnName):
		return r.Name, true
	case strings.EqualFold(name, ColumnType):
		return r.Type, true
	case strings.EqualFold(name, ColumnDurability):
		return r.Durability, true
	}
	return "", false
}

type QueueRow struct {
	ID         int
	Name       string
	Durability string
	AutoDelete string
}

func (r QueueRow) Column(name string) (string, bool) {
	switch {
	case strings.EqualFold(name, ColumnName):
		return r.Name, true
	case strings.EqualFold(name, ColumnDurability):
		return r.Durability, true
	case strings.EqualFold(name, ColumnAutoDelete):
		return r.AutoDelete, true
	}
	return "", false
}

type ConsumerRow struct {
	ID           int
	ConsumerID   string
	ConsumerTag  string
	Exclusive    string
	FlowEnabled  string
	ConnectionID string
	ChannelID    string
}

func (r ConsumerRow) Column(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "id":
		return r.ConsumerID, true
	case "consumertag":
		return r.ConsumerTag, true
	case "exclusive", "isexclusive":
		return r.Exclusive, true
	case "flowenabled":
		return r.FlowEnabled, true
	case "connectionid":
		return r.ConnectionID, true
	case "channelid":
		return r.ChannelID, true
	}
	return "", false
}

// BindingRow flattens a binding set to one row per bound queue.
type BindingRow struct {
	ID      int
	Pattern string
	Queue   string
}

func (r BindingRow) Column(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "pattern", "bindingpattern":
		return r.Pattern, true
	case "queue", "queuename":
		return r.Queue, true
	}
	return "", false
}

// ExchangeColumns and friends list the filter choices shown next to each table.
var (
	ExchangeColumns = []string{ColumnName, ColumnType, ColumnDurability}
	QueueColumns    = []string{ColumnName, ColumnDurability, ColumnAutoDelete}
	ConsumerColumns = []string{"consumerTag", "id", "exclusive", "flowEnabled", "connectionId", "channelId"}
	BindingColumns  = []string{"queue", "pattern"}
)

// MapExchangeRows assigns display ids by position; they are not stable across fetches.
func MapExchangeRows(exchanges []models.ExchangeMetadata) []ExchangeRow {
	rows := make([]ExchangeRow, len(exchanges))
	for i, e := range exchanges {
		rows[i] = ExchangeRow{
			ID:         i,
			Name:       e.Name,
			Type:       e.Type,
			Durability: strconv.FormatBool(e.Durable),
		}
	}
	return rows
}

func MapQueueRows(queues []models.QueueMetadata) []QueueRow {
	rows := make([]QueueRow, len(queues))
	for i, q := range queues {
		rows[i] = QueueRow{
			ID:         i,
			Name:       q.Name,
			Durability: strconv.FormatBool(q.Durable),
			AutoDelete: strconv.FormatBool(q.AutoDelete),
		}
	}
	return rows
}

func MapConsumerRows(consumers []models.ConsumerMetadata) []ConsumerRow {
	rows := make([]ConsumerRow, len(consumers))
	for i, c := range consumers {
		rows[i] = ConsumerRow{
			ID:           i,
			ConsumerID:   strconv.Itoa(c.ID),
			ConsumerTag:  c.ConsumerTag,
			Exclusive:    strconv.FormatBool(c.IsExclusive),
			FlowEnabled:  strconv.FormatBool(c.FlowEnabled),
			ConnectionID: strconv.Itoa(c.TransportProperties.ConnectionID),
			ChannelID:    strconv.Itoa(c.TransportProperties.ChannelID),
		}
	}
	return rows
}

// MapBindingRows expands every binding set; a pattern without queues still yields one row.
func MapBindingRows(sets []models.BindingSet) []BindingRow {
	rows := make([]BindingRow, 0, len(sets))
	for _, set := range sets {
		if len(set.Bindings) == 0 {
			rows = append(rows, BindingRow{ID: len(rows), Pattern: set.BindingPattern})
			continue
		}
		for _, b := range set.Bindings {
			rows = append(rows, BindingRow{ID: len(rows), Pattern: set.BindingPattern, Queue: b.QueueName})
		}
	}
	return rows
}
