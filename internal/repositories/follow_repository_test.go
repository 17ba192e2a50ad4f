package repositories

import (
	"sync"
	"testing"

	"github.com/ideavault/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFollowDefaultsToActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	follow := &models.Follow{FollowingUserID: alice.ID, FollowedUserID: bob.ID}
	require.NoError(t, repo.CreateFollow(follow))
	assert.True(t, follow.IsFollowing)

	// The unique pair index rejects a second row.
	dup := &models.Follow{FollowingUserID: alice.ID, FollowedUserID: bob.ID}
	assert.Error(t, repo.CreateFollow(dup))
}

func TestFollowToggleFlipsInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	follow, err := repo.Toggle(alice.ID, bob.ID, true)
	require.NoError(t, err)
	assert.True(t, follow.IsFollowing)

	unfollowed, err := repo.Toggle(alice.ID, bob.ID, false)
	require.NoError(t, err)
	assert.Equal(t, follow.ID, unfollowed.ID)
	assert.False(t, unfollowed.IsFollowing)

	refollowed, err := repo.Toggle(alice.ID, bob.ID, true)
	require.NoError(t, err)
	assert.Equal(t, follow.ID, refollowed.ID)
	assert.True(t, refollowed.IsFollowing)

	var rows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestFollowConcurrentTogglesKeepOneRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		desired := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Toggle(alice.ID, bob.ID, desired)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var rows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestFollowQueriesHonorTheActiveFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Toggle(alice.ID, bob.ID, true)
	require.NoError(t, err)
	_, err = repo.Toggle(alice.ID, carol.ID, true)
	require.NoError(t, err)
	_, err = repo.Toggle(carol.ID, bob.ID, true)
	require.NoError(t, err)

	following, err := repo.GetFollowing(alice.ID)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := repo.GetFollowers(bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	active, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, active)

	// An unfollow drops alice from bob's followers without deleting the row.
	_, err = repo.Toggle(alice.ID, bob.ID, false)
	require.NoError(t, err)

	followers, err = repo.GetFollowers(bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 1)

	active, err = repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, active)

	ids, err := repo.GetFollowingIDs(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{carol.ID}, ids)
}
