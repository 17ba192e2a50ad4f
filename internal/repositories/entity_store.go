package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"gorm.io/gorm"
)

// EntityStore adapts the relational store to target.Getter so the resolver
// can dereference candidate ids. Only kinds with a typed foreign-key slot
// are resolvable here; notification items are addressed id-only and never
// resolved.
type EntityStore struct {
	db *gorm.DB
}

// NewEntityStore creates a new EntityStore
func NewEntityStore(db *gorm.DB) *EntityStore {
	return &EntityStore{db: db}
}

func (s *EntityStore) Get(ctx context.Context, kind target.Kind, id uint) (interface{}, error) {
	var entity interface{}
	switch kind {
	case target.KindIdea:
		entity = &models.Idea{}
	case target.KindMemo:
		entity = &models.Memo{}
	case target.KindComment:
		entity = &models.Comment{}
	case target.KindFollowedUser:
		entity = &models.User{}
	default:
		return nil, fmt.Errorf("%w: no store accessor for kind %q", target.ErrInvalidKind, kind)
	}

	if err := s.db.WithContext(ctx).First(entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s %d", target.ErrTargetNotFound, kind, id)
		}
		return nil, err
	}
	return entity, nil
}
