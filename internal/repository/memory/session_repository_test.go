package memory

import (
	"testing"

	"laptop-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	session := &store.Session{ID: "s1", State: store.StateCollecting}
	repo.Save(session)

	got, found := repo.Get("s1")
	require.True(t, found)
	assert.Same(t, session, got)

	_, found = repo.Get("missing")
	assert.False(t, found)

	repo.Delete("s1")
	_, found = repo.Get("s1")
	assert.False(t, found)
}

func TestLockIsStablePerSession(t *testing.T) {
	repo := NewSessionRepository()

	mu1 := repo.Lock("s1")
	mu2 := repo.Lock("s1")
	other := repo.Lock("s2")

	assert.Same(t, mu1, mu2, "same session must always get the same mutex")
	assert.NotSame(t, mu1, other, "different sessions get independent mutexes")
}
