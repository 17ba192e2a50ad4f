package target

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainCodec decodes "Kind:id" without the base64 wrapping, enough to
// exercise the resolver in isolation.
type plainCodec struct{}

func (plainCodec) Decode(external string) (Kind, string, error) {
	kind, id, ok := strings.Cut(external, ":")
	if !ok {
		return "", "", errors.New("malformed external id")
	}
	return Kind(kind), id, nil
}

type fakeEntity struct {
	Kind Kind
	ID   uint
}

type fakeStore struct {
	entities map[Kind]map[uint]fakeEntity
}

func newFakeStore(refs ...Ref) *fakeStore {
	s := &fakeStore{entities: make(map[Kind]map[uint]fakeEntity)}
	for _, ref := range refs {
		if s.entities[ref.Kind] == nil {
			s.entities[ref.Kind] = make(map[uint]fakeEntity)
		}
		s.entities[ref.Kind][ref.ID] = fakeEntity{Kind: ref.Kind, ID: ref.ID}
	}
	return s
}

func (s *fakeStore) Get(_ context.Context, kind Kind, id uint) (interface{}, error) {
	if e, ok := s.entities[kind][id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s %d", ErrTargetNotFound, kind, id)
}

func TestResolve(t *testing.T) {
	store := newFakeStore(
		Ref{Kind: KindIdea, ID: 1},
		Ref{Kind: KindMemo, ID: 2},
		Ref{Kind: KindComment, ID: 3},
	)
	resolver := NewResolver(store, plainCodec{})
	ctx := context.Background()

	t.Run("resolves a well-formed reference", func(t *testing.T) {
		ref, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{
			KindIdea: "Idea:1",
		})
		require.NoError(t, err)
		assert.Equal(t, KindIdea, ref.Kind)
		assert.Equal(t, uint(1), ref.ID)
		assert.Equal(t, fakeEntity{Kind: KindIdea, ID: 1}, ref.Entity)
	})

	t.Run("rejects a kind outside the set", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindComment, Candidates{
			KindComment: "Comment:3",
		})
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("rejects zero candidates", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{})
		assert.ErrorIs(t, err, ErrMissingTarget)
	})

	t.Run("rejects multiple candidates", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{
			KindIdea: "Idea:1",
			KindMemo: "Memo:2",
		})
		assert.ErrorIs(t, err, ErrAmbiguousTarget)
	})

	t.Run("rejects a candidate for a different slot than the kind", func(t *testing.T) {
		// Kind says memo, but only the idea slot is filled.
		_, err := resolver.Resolve(ctx, ThreadTargets, KindMemo, Candidates{
			KindIdea: "Idea:1",
		})
		assert.ErrorIs(t, err, ErrMissingTarget)
	})

	t.Run("rejects an id encoding a different kind", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{
			KindIdea: "Memo:2",
		})
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("reports a missing entity", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{
			KindIdea: "Idea:999",
		})
		assert.ErrorIs(t, err, ErrTargetNotFound)
	})

	t.Run("reports a malformed numeric id", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, ThreadTargets, KindIdea, Candidates{
			KindIdea: "Idea:not-a-number",
		})
		assert.ErrorIs(t, err, ErrTargetNotFound)
	})

	t.Run("larger sets allow their extra kinds", func(t *testing.T) {
		ref, err := resolver.Resolve(ctx, LikeTargets, KindComment, Candidates{
			KindComment: "Comment:3",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), ref.ID)
	})
}

func TestRehydrate(t *testing.T) {
	one := uint(1)
	two := uint(2)

	t.Run("returns the populated slot matching the tag", func(t *testing.T) {
		kind, id, err := Rehydrate(ThreadTargets, KindIdea, map[Kind]*uint{
			KindIdea: &one,
			KindMemo: nil,
		})
		require.NoError(t, err)
		assert.Equal(t, KindIdea, kind)
		assert.Equal(t, uint(1), id)
	})

	t.Run("corrupt when no slot is populated", func(t *testing.T) {
		_, _, err := Rehydrate(ThreadTargets, KindIdea, map[Kind]*uint{
			KindIdea: nil,
			KindMemo: nil,
		})
		assert.ErrorIs(t, err, ErrCorruptReference)
	})

	t.Run("corrupt when multiple slots are populated", func(t *testing.T) {
		_, _, err := Rehydrate(ThreadTargets, KindIdea, map[Kind]*uint{
			KindIdea: &one,
			KindMemo: &two,
		})
		assert.ErrorIs(t, err, ErrCorruptReference)
	})

	t.Run("corrupt when the populated slot does not match the tag", func(t *testing.T) {
		_, _, err := Rehydrate(ThreadTargets, KindIdea, map[Kind]*uint{
			KindIdea: nil,
			KindMemo: &two,
		})
		assert.ErrorIs(t, err, ErrCorruptReference)
	})

	t.Run("corrupt when the tag is outside the set", func(t *testing.T) {
		_, _, err := Rehydrate(ThreadTargets, KindComment, map[Kind]*uint{
			KindIdea: &one,
		})
		assert.ErrorIs(t, err, ErrCorruptReference)
	})
}

func TestSet(t *testing.T) {
	assert.True(t, LikeTargets.Contains(KindComment))
	assert.False(t, ThreadTargets.Contains(KindComment))
	assert.Equal(t, []Kind{KindIdea, KindMemo}, ThreadTargets.Kinds())
	assert.Equal(t, "{Idea, Memo}", ThreadTargets.String())
}
