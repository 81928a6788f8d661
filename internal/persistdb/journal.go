package persistdb

import (
	"context"
	"time"
)

// Journal is the activity log as seen by the web server and the CLI.
type Journal interface {
	Record(ctx context.Context, a Activity) error
	List(ctx context.Context, limit, offset int) ([]Activity, error)
	Count(ctx context.Context) (int, error)
}

var (
	_ Journal = (*DB)(nil)
	_ Journal = NopJournal{}
)

// NopJournal is used when the activity log is disabled.
type NopJournal struct{}

func (NopJournal) Record(context.Context, Activity) error { return nil }

func (NopJournal) List(context.Context, int, int) ([]Activity, error) { return []Activity{}, nil }

func (NopJournal) Count(context.Context) (int, error) { return 0, nil }

// NewEntry builds an activity row; a non-nil err marks it as a failure and becomes the detail.
func NewEntry(username, broker, action, kind, name string, err error) Activity {
	a := Activity{
		At:       time.Now(),
		Username: username,
		Broker:   broker,
		Action:   action,
		Kind:     kind,
		Name:     name,
		Outcome:  OutcomeSuccess,
	}
	if err != nil {
		a.Outcome = OutcomeFailure
		a.Detail = err.Error()
	}
	return a
}
