// Package extid translates between opaque client-facing identifiers and
// internal store identifiers. The external form is base64("Kind:id"), so
// clients never see or guess raw database ids.
package extid

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ideavault/backend/internal/target"
)

// ErrInvalid is returned for external ids that cannot be decoded.
var ErrInvalid = errors.New("extid: invalid external id")

// Codec is a pure, stateless encoder/decoder. It satisfies target.Codec.
type Codec struct{}

// Encode builds the opaque external form of an internal identifier.
func (Codec) Encode(kind target.Kind, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(string(kind) + ":" + id))
}

// EncodeUint is Encode for the numeric ids used by the relational store.
func (c Codec) EncodeUint(kind target.Kind, id uint) string {
	return c.Encode(kind, strconv.FormatUint(uint64(id), 10))
}

// Decode parses an external id back into its kind and internal identifier.
func (Codec) Decode(external string) (target.Kind, string, error) {
	raw, err := base64.StdEncoding.DecodeString(external)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalid, external)
	}
	kind, id, ok := strings.Cut(string(raw), ":")
	if !ok || kind == "" || id == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalid, external)
	}
	return target.Kind(kind), id, nil
}
