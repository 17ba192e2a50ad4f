package repositories

import (
	"testing"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationItemIsAddressedIDOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	actor := createTestUser(t, db, "actor")
	recipient := createTestUser(t, db, "recipient")

	// The referenced idea does not exist; creation must still succeed.
	notif := &models.Notification{
		NotificatorID: actor.ID,
		RecipientID:   recipient.ID,
		Type:          models.NotificationTypeLike,
		ItemKind:      target.KindIdea,
		ItemID:        "12345",
	}
	require.NoError(t, repo.CreateNotification(notif))

	got, total, err := repo.GetByRecipientID(recipient.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "12345", got[0].ItemID)
	assert.False(t, got[0].IsChecked)
}

func TestNotificationPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	actor := createTestUser(t, db, "actor")
	recipient := createTestUser(t, db, "recipient")

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateNotification(&models.Notification{
			NotificatorID: actor.ID,
			RecipientID:   recipient.ID,
			Type:          models.NotificationTypeFollow,
			ItemKind:      target.KindFollowedUser,
			ItemID:        "1",
		}))
	}

	first, total, err := repo.GetByRecipientID(recipient.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, first, 2)

	last, _, err := repo.GetByRecipientID(recipient.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestMarkAsCheckedIsScopedToTheRecipient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	actor := createTestUser(t, db, "actor")
	recipient := createTestUser(t, db, "recipient")
	other := createTestUser(t, db, "other")

	notif := &models.Notification{
		NotificatorID: actor.ID,
		RecipientID:   recipient.ID,
		Type:          models.NotificationTypeComment,
		ItemKind:      target.KindComment,
		ItemID:        "7",
	}
	require.NoError(t, repo.CreateNotification(notif))

	// Someone else cannot mark it read.
	err := repo.MarkAsChecked(notif.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.GetUnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.MarkAsChecked(notif.ID, recipient.ID))

	count, err = repo.GetUnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkAllAsChecked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	actor := createTestUser(t, db, "actor")
	recipient := createTestUser(t, db, "recipient")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateNotification(&models.Notification{
			NotificatorID: actor.ID,
			RecipientID:   recipient.ID,
			Type:          models.NotificationTypeAnnounce,
			ItemKind:      target.KindAnnounce,
			ItemID:        "64f0c1a2b3d4e5f601020304",
		}))
	}

	require.NoError(t, repo.MarkAllAsChecked(recipient.ID))

	count, err := repo.GetUnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
