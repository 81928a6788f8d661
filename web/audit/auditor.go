package audit

import (
	"context"
	"strconv"

	"github.com/ottermq/mbconsole/internal/persistdb"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Actor is who performed an action and against which broker.
type Actor struct {
	Username string
	Broker   string
}

// Auditor writes every console action to the log, the metrics recorder and the activity journal.
type Auditor struct {
	journal  persistdb.Journal
	recorder metrics.Recorder
}

func New(journal persistdb.Journal, recorder metrics.Recorder) *Auditor {
	if journal == nil {
		journal = persistdb.NopJournal{}
	}
	if recorder == nil {
		recorder = metrics.NewNoopRecorder()
	}
	return &Auditor{journal: journal, recorder: recorder}
}

func (a *Auditor) Journal() persistdb.Journal {
	return a.journal
}

func (a *Auditor) Login(ctx context.Context, who Actor, err error) {
	a.recorder.RecordLogin(err == nil)
	a.record(ctx, persistdb.NewEntry(who.Username, who.Broker, persistdb.ActionLogin, "", "", err))
}

func (a *Auditor) Logout(ctx context.Context, who Actor) {
	a.recorder.RecordLogout()
	a.record(ctx, persistdb.NewEntry(who.Username, who.Broker, persistdb.ActionLogout, "", "", nil))
}

func (a *Auditor) Create(ctx context.Context, who Actor, kind, name string, err error) {
	a.recorder.RecordCreate(kind, err == nil)
	a.record(ctx, persistdb.NewEntry(who.Username, who.Broker, persistdb.ActionCreate, kind, name, err))
}

func (a *Auditor) Delete(ctx context.Context, who Actor, kind, name string, err error) {
	a.recorder.RecordDelete(kind, err == nil)
	a.record(ctx, persistdb.NewEntry(who.Username, who.Broker, persistdb.ActionDelete, kind, name, err))
}

// Purge records a purge; on success the detail carries the number of messages removed.
func (a *Auditor) Purge(ctx context.Context, who Actor, queue string, deleted int, err error) {
	a.recorder.RecordDelete("messages", err == nil)
	entry := persistdb.NewEntry(who.Username, who.Broker, persistdb.ActionPurge, "queue", queue, err)
	if err == nil {
		entry.Detail = strconv.Itoa(deleted) + " messages deleted"
	}
	a.record(ctx, entry)
}

func (a *Auditor) record(ctx context.Context, entry persistdb.Activity) {
	var ev *zerolog.Event
	if entry.Outcome == persistdb.OutcomeSuccess {
		ev = log.Info()
	} else {
		ev = log.Warn().Str("detail", entry.Detail)
	}
	ev.Str("user", entry.Username).
		Str("broker", entry.Broker).
		Str("action", entry.Action).
		Str("kind", entry.Kind).
		Str("name", entry.Name).
		Str("outcome", entry.Outcome).
		Msg("Console action")

	if err := a.journal.Record(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", entry.Action).Msg("Failed to record activity")
	}
}
