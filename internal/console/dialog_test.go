package console

import (
	"context"
	"errors"
	"testing"

	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	exchanges []models.CreateExchangeRequest
	queues    []models.CreateQueueRequest
	err       error
}

func (f *fakeCreator) CreateExchange(_ context.Context, req models.CreateExchangeRequest) error {
	f.exchanges = append(f.exchanges, req)
	return f.err
}

func (f *fakeCreator) CreateQueue(_ context.Context, req models.CreateQueueRequest) error {
	f.queues = append(f.queues, req)
	return f.err
}

func TestExchangeDialogEmptyNameMakesNoCall(t *testing.T) {
	api := &fakeCreator{}
	d := &ExchangeDialog{Name: "", Type: "direct", Durability: "durable"}

	err := d.Submit(context.Background(), api)
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, d.ShowError)
	assert.False(t, d.ShowSuccess)
	assert.Empty(t, api.exchanges)

	d.Name = "   "
	require.Error(t, d.Submit(context.Background(), api))
	assert.Empty(t, api.exchanges)
}

func TestExchangeDialogMissingFields(t *testing.T) {
	api := &fakeCreator{}
	for _, d := range []*ExchangeDialog{
		{Name: "orders", Durability: "durable"},
		{Name: "orders", Type: "direct"},
		{Name: "orders", Type: "direct", Durability: "sometimes"},
	} {
		require.ErrorIs(t, d.Submit(context.Background(), api), ErrValidation)
		assert.True(t, d.ShowError)
	}
	assert.Empty(t, api.exchanges)
}

func TestExchangeDialogSubmitPostsOnce(t *testing.T) {
	api := &fakeCreator{}
	d := &ExchangeDialog{Name: "orders", Type: "direct", Durability: "durable"}

	require.NoError(t, d.Submit(context.Background(), api))
	require.Len(t, api.exchanges, 1)
	assert.Equal(t, models.CreateExchangeRequest{Name: "orders", Type: "direct", Durable: true}, api.exchanges[0])
	assert.True(t, d.ShowSuccess)
	assert.False(t, d.ShowError)
}

func TestExchangeDialogBrokerFailure(t *testing.T) {
	boom := errors.New("conflict")
	api := &fakeCreator{err: boom}
	d := &ExchangeDialog{Name: "orders", Type: "direct", Durability: "transient"}

	assert.ErrorIs(t, d.Submit(context.Background(), api), boom)
	assert.False(t, d.ShowSuccess)
	assert.False(t, d.ShowError)
	assert.Equal(t, boom, d.Err)
	assert.False(t, api.exchanges[0].Durable)

	d.Clear()
	assert.Equal(t, ExchangeDialog{}, *d)
}

func TestQueueDialog(t *testing.T) {
	api := &fakeCreator{}

	d := &QueueDialog{Name: "jobs"}
	assert.ErrorIs(t, d.Submit(context.Background(), api), ErrValidation)
	assert.True(t, d.ShowError)
	assert.Empty(t, api.queues)

	d = &QueueDialog{Name: " jobs ", Durability: "true", AutoDelete: "on"}
	require.NoError(t, d.Submit(context.Background(), api))
	assert.True(t, d.ShowSuccess)
	require.Len(t, api.queues, 1)
	assert.Equal(t, models.CreateQueueRequest{Name: "jobs", Durable: true, AutoDelete: true}, api.queues[0])
}

// Auto-delete is a checkbox: leaving it unset is a complete form.
func TestQueueDialogUncheckedAutoDelete(t *testing.T) {
	api := &fakeCreator{}
	d := &QueueDialog{Name: "mail", Durability: "durable"}

	require.NoError(t, d.Submit(context.Background(), api))
	assert.True(t, d.ShowSuccess)
	assert.Equal(t, []models.CreateQueueRequest{{Name: "mail", Durable: true, AutoDelete: false}}, api.queues)
}

func TestParseDurability(t *testing.T) {
	cases := map[string]struct{ durable, ok bool }{
		"durable":   {true, true},
		"Durable":   {true, true},
		"true":      {true, true},
		"transient": {false, true},
		"false":     {false, true},
		"":          {false, false},
		"maybe":     {false, false},
	}
	for in, want := range cases {
		durable, ok := ParseDurability(in)
		assert.Equal(t, want.durable, durable, in)
		assert.Equal(t, want.ok, ok, in)
	}
}
