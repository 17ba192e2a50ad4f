package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsersSkipsInactiveAccounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, db, "Alice")
	createTestUser(t, db, "alicia")
	createTestUser(t, db, "bob")
	inactive := createTestUser(t, db, "alistair")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	// Case-insensitive match on username, active accounts only.
	got, err := repo.SearchUsers("ALI")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, user := range got {
		assert.NotEqual(t, inactive.ID, user.ID)
	}
}

func TestGetUsersSkipsInactiveAccounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, db, "alice")
	inactive := createTestUser(t, db, "ghost")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	got, err := repo.GetUsers()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
}
