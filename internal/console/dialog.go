package console

import (
	"context"
	"errors"
	"strings"

	"github.com/ottermq/mbconsole/internal/core/models"
)

// ErrValidation means a required form field was left empty.
var ErrValidation = errors.New("please fill in all required fields")

type ExchangeCreator interface {
	CreateExchange(ctx context.Context, req models.CreateExchangeRequest) error
}

type QueueCreator interface {
	CreateQueue(ctx context.Context, req models.CreateQueueRequest) error
}

// ExchangeTypes are the choices offered by the create exchange form.
var ExchangeTypes = []string{"direct", "fanout", "topic", "headers"}

// ExchangeDialog is the create exchange modal. Submitting it never refreshes the list behind it.
type ExchangeDialog struct {
	Name       string
	Type       string
	Durability string

	ShowError   bool
	ShowSuccess bool
	Err         error
}

func (d *ExchangeDialog) Request() (models.CreateExchangeRequest, error) {
	name := strings.TrimSpace(d.Name)
	kind := strings.TrimSpace(d.Type)
	durable, ok := ParseDurability(d.Durability)
	if name == "" || kind == "" || !ok {
		return models.CreateExchangeRequest{}, ErrValidation
	}
	return models.CreateExchangeRequest{Name: name, Type: kind, Durable: durable}, nil
}

// Submit validates the form and issues one create call when it is complete.
func (d *ExchangeDialog) Submit(ctx context.Context, api ExchangeCreator) error {
	d.ShowError, d.ShowSuccess, d.Err = false, false, nil

	req, err := d.Request()
	if err != nil {
		d.ShowError = true
		d.Err = err
		return err
	}
	if err := api.CreateExchange(ctx, req); err != nil {
		d.Err = err
		return err
	}
	d.ShowSuccess = true
	return nil
}

// Clear resets the form after the dialog is closed.
func (d *ExchangeDialog) Clear() {
	*d = ExchangeDialog{}
}

type QueueDialog struct {
	Name       string
	Durability string
	AutoDelete string

	ShowError   bool
	ShowSuccess bool
	Err         error
}

func (d *QueueDialog) Request() (models.CreateQueueRequest, error) {
	name := strings.TrimSpace(d.Name)
	durable, ok := ParseDurability(d.Durability)
	if name == "" || !ok {
		return models.CreateQueueRequest{}, ErrValidation
	}
	return models.CreateQueueRequest{Name: name, Durable: durable, AutoDelete: parseFlag(d.AutoDelete)}, nil
}

func (d *QueueDialog) Submit(ctx context.Context, api QueueCreator) error {
	d.ShowError, d.ShowSuccess, d.Err = false, false, nil

	req, err := d.Request()
	if err != nil {
		d.ShowError = true
		d.Err = err
		return err
	}
	if err := api.CreateQueue(ctx, req); err != nil {
		d.Err = err
		return err
	}
	d.ShowSuccess = true
	return nil
}

func (d *QueueDialog) Clear() {
	*d = QueueDialog{}
}

// ParseDurability reads the durability select. ok is false for empty or unknown values.
func ParseDurability(v string) (durable bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "durable", "true", "yes":
		return true, true
	case "transient", "false", "no", "non-durable":
		return false, true
	}
	return false, false
}

// parseFlag reads a checkbox value; an unchecked box posts nothing and reads as false.
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "yes", "1":
		return true
	}
	return false
}
