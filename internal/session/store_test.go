package session

import (
	"sync"
	"testing"
	"time"

	"github.com/ottermq/mbconsole/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetDelete(t *testing.T) {
	s := NewStore(time.Hour, time.Hour)
	defer s.Close()

	creds := client.Credentials{Host: "h", Port: "1", Username: "admin", Password: "admin"}
	sess := s.Create(creds)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, sess.CreatedAt.Add(time.Hour), sess.ExpiresAt)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, creds, got.Credentials)

	s.Delete(sess.ID)
	_, err = s.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(time.Minute, time.Hour)
	defer s.Close()

	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	a := s.Create(client.Credentials{Username: "a"})
	now = now.Add(30 * time.Second)
	b := s.Create(client.Credentials{Username: "b"})

	now = now.Add(31 * time.Second)
	_, err := s.Get(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get(b.ID)
	assert.NoError(t, err)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestStoreSweeperRuns(t *testing.T) {
	s := NewStore(time.Millisecond, 5*time.Millisecond)
	defer s.Close()

	s.Create(client.Credentials{Username: "a"})
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStoreCloseTwice(t *testing.T) {
	s := NewStore(time.Hour, time.Hour)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestStoreConcurrent(t *testing.T) {
	s := NewStore(time.Hour, time.Hour)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := s.Create(client.Credentials{Username: "u"})
			_, _ = s.Get(sess.ID)
			s.Delete(sess.ID)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, s.Len())
}
