package models

import (
	"time"

	"github.com/ideavault/backend/internal/target"
)

// Like is a boolean-state relationship between a user and one liked idea,
// memo or comment. Toggling flips is_liked in place; rows are never
// deleted. The composite unique indexes pair the user with each typed slot
// column; NULL slots stay distinct, so one index per kind keys the row by
// (actor, target).
type Like struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	LikedUserID    uint        `json:"liked_user_id" gorm:"not null;index:idx_like_user_idea,unique;index:idx_like_user_memo,unique;index:idx_like_user_comment,unique"`
	LikedUser      *User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TargetKind     target.Kind `json:"target_kind" gorm:"size:20;not null"`
	LikedIdeaID    *uint       `json:"liked_idea_id,omitempty" gorm:"index:idx_like_user_idea,unique"`
	LikedIdea      *Idea       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	LikedMemoID    *uint       `json:"liked_memo_id,omitempty" gorm:"index:idx_like_user_memo,unique"`
	LikedMemo      *Memo       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	LikedCommentID *uint       `json:"liked_comment_id,omitempty" gorm:"index:idx_like_user_comment,unique"`
	LikedComment   *Comment    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IsLiked        bool        `json:"is_liked" gorm:"default:false"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"-"`
}

// SetTarget fills the kind tag and the matching slot from a resolved
// reference, clearing all other slots.
func (l *Like) SetTarget(ref target.Ref) {
	l.TargetKind = ref.Kind
	l.LikedIdeaID = nil
	l.LikedMemoID = nil
	l.LikedCommentID = nil
	id := ref.ID
	switch ref.Kind {
	case target.KindIdea:
		l.LikedIdeaID = &id
	case target.KindMemo:
		l.LikedMemoID = &id
	case target.KindComment:
		l.LikedCommentID = &id
	}
}

// Target rehydrates the persisted reference, defensively checking that
// exactly the slot matching the kind tag is populated.
func (l *Like) Target() (target.Kind, uint, error) {
	return target.Rehydrate(target.LikeTargets, l.TargetKind, map[target.Kind]*uint{
		target.KindIdea:    l.LikedIdeaID,
		target.KindMemo:    l.LikedMemoID,
		target.KindComment: l.LikedCommentID,
	})
}

// LikeSlotColumn maps a kind to its typed foreign-key column.
func LikeSlotColumn(kind target.Kind) (string, bool) {
	switch kind {
	case target.KindIdea:
		return "liked_idea_id", true
	case target.KindMemo:
		return "liked_memo_id", true
	case target.KindComment:
		return "liked_comment_id", true
	}
	return "", false
}

// CreateLikeRequest defines the request body for liking content. Target
// ids are opaque external identifiers.
type CreateLikeRequest struct {
	LikeTargetType string `json:"like_target_type" validate:"required"`
	LikedIdeaID    string `json:"liked_idea_id,omitempty"`
	LikedMemoID    string `json:"liked_memo_id,omitempty"`
	LikedCommentID string `json:"liked_comment_id,omitempty"`
}

// Candidates collects the supplied target ids keyed by kind.
func (r CreateLikeRequest) Candidates() target.Candidates {
	return target.Candidates{
		target.KindIdea:    r.LikedIdeaID,
		target.KindMemo:    r.LikedMemoID,
		target.KindComment: r.LikedCommentID,
	}
}

// UpdateLikeRequest defines the request body for setting the like state on
// a target.
type UpdateLikeRequest struct {
	CreateLikeRequest
	IsLiked *bool `json:"is_liked" validate:"required"`
}
