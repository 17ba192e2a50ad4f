package models

import (
	"testing"

	"github.com/ideavault/backend/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadTargetRoundTrip(t *testing.T) {
	var thread Thread
	thread.SetTarget(target.Ref{Kind: target.KindMemo, ID: 9})

	kind, id, err := thread.Target()
	require.NoError(t, err)
	assert.Equal(t, target.KindMemo, kind)
	assert.Equal(t, uint(9), id)
	assert.Nil(t, thread.TargetIdeaID)

	// Retargeting clears the previous slot.
	thread.SetTarget(target.Ref{Kind: target.KindIdea, ID: 4})
	kind, id, err = thread.Target()
	require.NoError(t, err)
	assert.Equal(t, target.KindIdea, kind)
	assert.Equal(t, uint(4), id)
	assert.Nil(t, thread.TargetMemoID)
}

func TestThreadTargetCorruption(t *testing.T) {
	one := uint(1)
	two := uint(2)

	t.Run("tag without slot", func(t *testing.T) {
		thread := Thread{TargetKind: target.KindIdea}
		_, _, err := thread.Target()
		assert.ErrorIs(t, err, target.ErrCorruptReference)
	})

	t.Run("slot mismatching tag", func(t *testing.T) {
		thread := Thread{TargetKind: target.KindIdea, TargetMemoID: &two}
		_, _, err := thread.Target()
		assert.ErrorIs(t, err, target.ErrCorruptReference)
	})

	t.Run("both slots populated", func(t *testing.T) {
		thread := Thread{TargetKind: target.KindIdea, TargetIdeaID: &one, TargetMemoID: &two}
		_, _, err := thread.Target()
		assert.ErrorIs(t, err, target.ErrCorruptReference)
	})

	t.Run("tag outside the thread set", func(t *testing.T) {
		thread := Thread{TargetKind: target.KindComment, TargetIdeaID: &one}
		_, _, err := thread.Target()
		assert.ErrorIs(t, err, target.ErrCorruptReference)
	})
}

func TestLikeTargetRoundTrip(t *testing.T) {
	var like Like
	like.SetTarget(target.Ref{Kind: target.KindComment, ID: 3})

	kind, id, err := like.Target()
	require.NoError(t, err)
	assert.Equal(t, target.KindComment, kind)
	assert.Equal(t, uint(3), id)
	assert.Nil(t, like.LikedIdeaID)
	assert.Nil(t, like.LikedMemoID)
}

func TestLikeTargetCorruption(t *testing.T) {
	one := uint(1)

	like := Like{TargetKind: target.KindMemo, LikedCommentID: &one}
	_, _, err := like.Target()
	assert.ErrorIs(t, err, target.ErrCorruptReference)
}

func TestSlotColumns(t *testing.T) {
	col, ok := ThreadSlotColumn(target.KindIdea)
	require.True(t, ok)
	assert.Equal(t, "target_idea_id", col)

	_, ok = ThreadSlotColumn(target.KindComment)
	assert.False(t, ok)

	col, ok = LikeSlotColumn(target.KindComment)
	require.True(t, ok)
	assert.Equal(t, "liked_comment_id", col)

	_, ok = LikeSlotColumn(target.KindAnnounce)
	assert.False(t, ok)
}

func TestNotificationTypeValid(t *testing.T) {
	assert.True(t, NotificationTypeLike.Valid())
	assert.True(t, NotificationTypeAnnounce.Valid())
	assert.False(t, NotificationType("Poke").Valid())
	assert.False(t, NotificationType("").Valid())
}
