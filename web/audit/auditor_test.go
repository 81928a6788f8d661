package audit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ottermq/mbconsole/internal/persistdb"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditorRecordsActions(t *testing.T) {
	db, err := persistdb.Open(filepath.Join(t.TempDir(), persistdb.DefaultFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rec := metrics.NewMockRecorder()
	a := New(db, rec)
	ctx := context.Background()
	who := Actor{Username: "admin", Broker: "localhost:9000"}

	a.Login(ctx, who, nil)
	a.Create(ctx, who, "exchange", "orders", nil)
	a.Delete(ctx, who, "queue", "jobs", errors.New("queue in use"))
	a.Purge(ctx, who, "jobs", 3, nil)
	a.Logout(ctx, who)

	n, err := db.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	entries, err := db.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	byAction := map[string]persistdb.Activity{}
	for _, e := range entries {
		byAction[e.Action] = e
	}
	assert.Equal(t, persistdb.OutcomeFailure, byAction[persistdb.ActionDelete].Outcome)
	assert.Equal(t, "queue in use", byAction[persistdb.ActionDelete].Detail)
	assert.Equal(t, "3 messages deleted", byAction[persistdb.ActionPurge].Detail)
	assert.Equal(t, "orders", byAction[persistdb.ActionCreate].Name)

	assert.Equal(t, 1, rec.Logins[true])
	assert.Equal(t, 1, rec.Logouts)
}

func TestAuditorDefaults(t *testing.T) {
	a := New(nil, nil)
	a.Login(context.Background(), Actor{Username: "x"}, errors.New("bad password"))

	n, err := a.Journal().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
