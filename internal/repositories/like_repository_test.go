package repositories

import (
	"sync"
	"testing"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggleCreatesThenFlipsInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	liker := createTestUser(t, db, "liker")
	author := createTestUser(t, db, "author")
	idea := createTestIdea(t, db, author.ID, "an idea")
	ref := target.Ref{Kind: target.KindIdea, ID: idea.ID}

	like, err := repo.Toggle(liker.ID, ref, true)
	require.NoError(t, err)
	assert.True(t, like.IsLiked)
	require.NotNil(t, like.LikedIdeaID)
	assert.Equal(t, idea.ID, *like.LikedIdeaID)
	assert.Equal(t, target.KindIdea, like.TargetKind)

	// Unliking flips the flag on the same row.
	unliked, err := repo.Toggle(liker.ID, ref, false)
	require.NoError(t, err)
	assert.Equal(t, like.ID, unliked.ID)
	assert.False(t, unliked.IsLiked)

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestLikeToggleIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	liker := createTestUser(t, db, "liker")
	author := createTestUser(t, db, "author")
	memo := createTestMemo(t, db, author.ID, "a memo")
	ref := target.Ref{Kind: target.KindMemo, ID: memo.ID}

	first, err := repo.Toggle(liker.ID, ref, true)
	require.NoError(t, err)
	second, err := repo.Toggle(liker.ID, ref, true)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsLiked)

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestLikeConcurrentTogglesKeepOneRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	liker := createTestUser(t, db, "liker")
	author := createTestUser(t, db, "author")
	idea := createTestIdea(t, db, author.ID, "an idea")
	ref := target.Ref{Kind: target.KindIdea, ID: idea.ID}

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		desired := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Toggle(liker.ID, ref, desired)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// However the toggles interleave, the upsert admits one row per
	// (actor, target).
	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestLikeSlotsAreIndependentPerKind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	liker := createTestUser(t, db, "liker")
	author := createTestUser(t, db, "author")
	idea := createTestIdea(t, db, author.ID, "an idea")
	memo := createTestMemo(t, db, author.ID, "a memo")

	_, err := repo.Toggle(liker.ID, target.Ref{Kind: target.KindIdea, ID: idea.ID}, true)
	require.NoError(t, err)
	_, err = repo.Toggle(liker.ID, target.Ref{Kind: target.KindMemo, ID: memo.ID}, true)
	require.NoError(t, err)

	// Same actor, different kinds: two distinct rows.
	likes, err := repo.GetLikesByUserID(liker.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}

func TestLikeToggleRejectsUnknownKind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)

	_, err := repo.Toggle(1, target.Ref{Kind: target.KindAnnounce, ID: 1}, true)
	assert.ErrorIs(t, err, target.ErrInvalidKind)
}

func TestGetLikesCountForTarget(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	author := createTestUser(t, db, "author")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	idea := createTestIdea(t, db, author.ID, "an idea")
	ref := target.Ref{Kind: target.KindIdea, ID: idea.ID}

	_, err := repo.Toggle(alice.ID, ref, true)
	require.NoError(t, err)
	_, err = repo.Toggle(bob.ID, ref, true)
	require.NoError(t, err)

	count, err := repo.GetLikesCountForTarget(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// An inactive row no longer counts but still exists.
	_, err = repo.Toggle(bob.ID, ref, false)
	require.NoError(t, err)

	count, err = repo.GetLikesCountForTarget(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
