package models

import (
	"time"

	"github.com/ideavault/backend/internal/target"
)

// Thread is a comment thread attached to exactly one idea or memo. The
// target is stored as a kind tag plus one nullable typed foreign key per
// possible kind; deleting the target cascades to the thread.
type Thread struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	TargetKind   target.Kind `json:"target_kind" gorm:"size:20;not null;index"`
	TargetIdeaID *uint       `json:"target_idea_id,omitempty" gorm:"index"`
	TargetIdea   *Idea       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TargetMemoID *uint       `json:"target_memo_id,omitempty" gorm:"index"`
	TargetMemo   *Memo       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SetTarget fills the kind tag and the matching slot from a resolved
// reference, clearing all other slots.
func (t *Thread) SetTarget(ref target.Ref) {
	t.TargetKind = ref.Kind
	t.TargetIdeaID = nil
	t.TargetMemoID = nil
	id := ref.ID
	switch ref.Kind {
	case target.KindIdea:
		t.TargetIdeaID = &id
	case target.KindMemo:
		t.TargetMemoID = &id
	}
}

// Target rehydrates the persisted reference, defensively checking that
// exactly the slot matching the kind tag is populated.
func (t *Thread) Target() (target.Kind, uint, error) {
	return target.Rehydrate(target.ThreadTargets, t.TargetKind, map[target.Kind]*uint{
		target.KindIdea: t.TargetIdeaID,
		target.KindMemo: t.TargetMemoID,
	})
}

// ThreadSlotColumn maps a kind to its typed foreign-key column.
func ThreadSlotColumn(kind target.Kind) (string, bool) {
	switch kind {
	case target.KindIdea:
		return "target_idea_id", true
	case target.KindMemo:
		return "target_memo_id", true
	}
	return "", false
}

// CreateThreadRequest defines the request body for opening a thread.
// Target ids are opaque external identifiers.
type CreateThreadRequest struct {
	ThreadTargetType string `json:"thread_target_type" validate:"required"`
	TargetIdeaID     string `json:"target_idea_id,omitempty"`
	TargetMemoID     string `json:"target_memo_id,omitempty"`
}

// Candidates collects the supplied target ids keyed by kind.
func (r CreateThreadRequest) Candidates() target.Candidates {
	return target.Candidates{
		target.KindIdea: r.TargetIdeaID,
		target.KindMemo: r.TargetMemoID,
	}
}
