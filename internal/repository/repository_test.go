package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestQueryTimeoutIsApplied(t *testing.T) {
	s := store{timeout: 50 * time.Millisecond}

	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestZeroQueryTimeoutHasNoDeadline(t *testing.T) {
	ctx, cancel := store{}.withTimeout(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}

func TestNewRepositoriesSharesHandle(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock, time.Second)

	assert.Same(t, repos.Alunos.db, repos.Professores.db)
	assert.Equal(t, time.Second, repos.DiasSemAula.timeout)
}
