package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	t.Run("no rows reads as missing", func(t *testing.T) {
		require.True(t, isMissing(sql.ErrNoRows))
	})

	t.Run("malformed uuid path parameter reads as missing", func(t *testing.T) {
		// Postgres rejects a garbage id with 22P02 before the query runs;
		// callers must see a not-found, never a server fault.
		castErr := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "garbage"`}
		require.True(t, isMissing(castErr))
		require.True(t, isMissing(fmt.Errorf("failed to find profile: %w", castErr)))
	})

	t.Run("other failures stay unexpected", func(t *testing.T) {
		require.False(t, isMissing(nil))
		require.False(t, isMissing(errors.New("connection refused")))
		require.False(t, isMissing(&pq.Error{Code: "23505"}))
	})
}

func TestIsDuplicate(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "users_email_key"}
	require.True(t, isDuplicate(uniqueErr))
	require.True(t, isDuplicate(fmt.Errorf("failed to create user: %w", uniqueErr)))

	require.False(t, isDuplicate(nil))
	require.False(t, isDuplicate(sql.ErrNoRows))
	require.False(t, isDuplicate(&pq.Error{Code: "22P02"}))
}
