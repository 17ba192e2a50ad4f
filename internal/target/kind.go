package target

import "strings"

// Kind discriminates which entity type a polymorphic reference points to.
type Kind string

const (
	KindIdea         Kind = "Idea"
	KindMemo         Kind = "Memo"
	KindComment      Kind = "Comment"
	KindFollowedUser Kind = "FollowedUser"
	KindAnnounce     Kind = "Announce"
)

// Set is the closed set of kinds a given model may reference.
type Set struct {
	kinds []Kind
}

// NewSet builds a closed kind set. Order is preserved for error messages.
func NewSet(kinds ...Kind) Set {
	return Set{kinds: kinds}
}

func (s Set) Contains(k Kind) bool {
	for _, kind := range s.kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Kinds returns the members of the set.
func (s Set) Kinds() []Kind {
	out := make([]Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

func (s Set) String() string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = string(k)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Closed sets per owning model.
var (
	ThreadTargets     = NewSet(KindIdea, KindMemo)
	LikeTargets       = NewSet(KindIdea, KindMemo, KindComment)
	NotificationItems = NewSet(KindIdea, KindMemo, KindComment, KindFollowedUser, KindAnnounce)
)
