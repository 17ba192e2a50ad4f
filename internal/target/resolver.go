package target

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

// Candidates maps a kind to the opaque external identifier supplied for
// that kind's slot. At most one entry is expected to be populated.
type Candidates map[Kind]string

// Ref is a validated, dereferenced reference, ready for persistence.
type Ref struct {
	Kind   Kind
	ID     uint
	Entity interface{}
}

// Codec decodes opaque client-facing identifiers into (kind, internal id)
// pairs. Implemented by extid.Codec.
type Codec interface {
	Decode(external string) (Kind, string, error)
}

// Getter fetches an entity of the given kind from the entity store.
// Implementations must wrap ErrTargetNotFound for missing rows.
type Getter interface {
	Get(ctx context.Context, kind Kind, id uint) (interface{}, error)
}

// Resolver validates and materializes polymorphic target references.
type Resolver struct {
	store Getter
	codec Codec
}

func NewResolver(store Getter, codec Codec) *Resolver {
	return &Resolver{store: store, codec: codec}
}

// Resolve validates that kind belongs to set, that exactly one candidate
// identifier was supplied and that it matches kind, then decodes the
// identifier and fetches the entity. Resolution is pure: persisting the
// reference is the caller's job.
func (r *Resolver) Resolve(ctx context.Context, set Set, kind Kind, candidates Candidates) (Ref, error) {
	if !set.Contains(kind) {
		return Ref{}, fmt.Errorf("%w: %q is not one of %s", ErrInvalidKind, kind, set)
	}

	populated := make([]Kind, 0, 1)
	for k, v := range candidates {
		if v != "" {
			populated = append(populated, k)
		}
	}
	sort.Slice(populated, func(i, j int) bool { return populated[i] < populated[j] })

	switch {
	case len(populated) == 0:
		return Ref{}, fmt.Errorf("%w: kind is %q", ErrMissingTarget, kind)
	case len(populated) > 1:
		return Ref{}, fmt.Errorf("%w: got candidates for %v", ErrAmbiguousTarget, populated)
	case populated[0] != kind:
		return Ref{}, fmt.Errorf("%w: kind is %q but the candidate is for %q", ErrMissingTarget, kind, populated[0])
	}

	encodedKind, raw, err := r.codec.Decode(candidates[kind])
	if err != nil {
		return Ref{}, err
	}
	if encodedKind != kind {
		return Ref{}, fmt.Errorf("%w: candidate id encodes %q, want %q", ErrInvalidKind, encodedKind, kind)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: malformed id %q", ErrTargetNotFound, raw)
	}

	entity, err := r.store.Get(ctx, kind, uint(id))
	if err != nil {
		return Ref{}, err
	}
	return Ref{Kind: kind, ID: uint(id), Entity: entity}, nil
}

// Rehydrate is the inverse of Resolve+save: given the persisted kind tag and
// the typed slot columns, it determines which slot is populated and returns
// it. A record with zero or multiple populated slots, a slot not matching
// the tag, or a tag outside the set violates the write-path invariants and
// yields ErrCorruptReference.
func Rehydrate(set Set, kind Kind, slots map[Kind]*uint) (Kind, uint, error) {
	if !set.Contains(kind) {
		return "", 0, fmt.Errorf("%w: kind tag %q is not one of %s", ErrCorruptReference, kind, set)
	}

	populated := make([]Kind, 0, 1)
	for k, id := range slots {
		if id != nil {
			populated = append(populated, k)
		}
	}
	sort.Slice(populated, func(i, j int) bool { return populated[i] < populated[j] })

	switch {
	case len(populated) == 0:
		return "", 0, fmt.Errorf("%w: kind tag is %q but no slot is populated", ErrCorruptReference, kind)
	case len(populated) > 1:
		return "", 0, fmt.Errorf("%w: slots %v are all populated", ErrCorruptReference, populated)
	case populated[0] != kind:
		return "", 0, fmt.Errorf("%w: kind tag is %q but the %q slot is populated", ErrCorruptReference, kind, populated[0])
	}
	return kind, *slots[kind], nil
}
