package output

import (
	"bytes"
	"testing"

	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &Table{}, f)

	f, err = New("CSV")
	require.NoError(t, err)
	assert.IsType(t, &CSV{}, f)

	_, err = New("yaml")
	assert.Error(t, err)
}

func TestTableExchanges(t *testing.T) {
	var buf bytes.Buffer
	err := (&Table{}).Exchanges(&buf, []models.ExchangeMetadata{
		{Name: "amq.direct", Type: "direct", Durable: true, Owner: "admin"},
		{Name: "x", Type: "topic"},
	})
	require.NoError(t, err)

	want := "" +
		"+ ---------- + ------ + ------- + ----- +\n" +
		"| Name       | Type   | Durable | Owner |\n" +
		"+ ---------- + ------ + ------- + ----- +\n" +
		"| amq.direct | direct | true    | admin |\n" +
		"| x          | topic  | false   |       |\n" +
		"+ ---------- + ------ + ------- + ----- +\n"
	assert.Equal(t, want, buf.String())
}

func TestTableWideRunes(t *testing.T) {
	var buf bytes.Buffer
	err := (&Table{}).Bindings(&buf, []models.BindingSet{
		{BindingPattern: "#", Bindings: []models.BoundQueue{{QueueName: "注文"}}},
	})
	require.NoError(t, err)

	want := "" +
		"+ ----- + ------- +\n" +
		"| Queue | Pattern |\n" +
		"+ ----- + ------- +\n" +
		"| 注文  | #       |\n" +
		"+ ----- + ------- +\n"
	assert.Equal(t, want, buf.String())
}

func TestEmptyListsPrintNothing(t *testing.T) {
	for _, f := range []Formatter{&Table{}, &CSV{}} {
		var buf bytes.Buffer
		require.NoError(t, f.Exchanges(&buf, nil))
		require.NoError(t, f.Queues(&buf, []models.QueueMetadata{}))
		require.NoError(t, f.Bindings(&buf, []models.BindingSet{{BindingPattern: "a"}}))
		require.NoError(t, f.Consumers(&buf, nil))
		assert.Empty(t, buf.String())
	}
}

func TestTableQueueDetail(t *testing.T) {
	var buf bytes.Buffer
	err := (&Table{}).Queue(&buf, &models.QueueMetadata{
		Name: "jobs", ConsumerCount: 1, Capacity: 100, Size: 3, Durable: true,
		Permissions: []models.Permission{{Action: "consume", UserGroups: []string{"ops", "dev"}}},
	})
	require.NoError(t, err)

	want := "" +
		"Name       : jobs\n" +
		"Consumers  : 1\n" +
		"Capacity   : 100\n" +
		"Size       : 3\n" +
		"Durable    : true\n" +
		"AutoDelete : false\n" +
		"Owner      : \n" +
		"\nPermissions\n===========\n" +
		"consume: ops,dev\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVQueuesAndConsumers(t *testing.T) {
	var buf bytes.Buffer
	c := &CSV{}
	require.NoError(t, c.Queues(&buf, []models.QueueMetadata{{Name: "a,b", ConsumerCount: 2, Capacity: 10, Size: 1}}))
	assert.Equal(t, "Name,Consumers,Capacity,Size,Durable,AutoDelete,Owner\n\"a,b\",2,10,1,false,false,\n", buf.String())

	buf.Reset()
	require.NoError(t, c.Consumers(&buf, []models.ConsumerMetadata{{ID: 4, IsExclusive: true, TransportProperties: models.TransportProperties{ConnectionID: 1, ChannelID: 2}}}))
	assert.Equal(t, "ID,Exclusive,FlowEnabled,Connection,Channel\n4,true,false,1,2\n", buf.String())

	buf.Reset()
	require.NoError(t, c.Exchange(&buf, &models.ExchangeMetadata{Name: "x", Type: "fanout", Durable: true}))
	assert.Equal(t, "Name,Type,Durable,Owner\nx,fanout,true,\n", buf.String())
}

func TestMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Message(&buf, "Exchange created successfully"))
	assert.Equal(t, "Exchange created successfully\n", buf.String())
}
