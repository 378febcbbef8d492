// Package detect classifies candidate strings against the registered token
// families.
package detect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/suryansh-23/revoker/internal/config"
	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

// ErrUnknownTokenType is returned when config toggles a family that is not registered.
var ErrUnknownTokenType = errors.New("unknown token type")

// Registry is the ordered set of enabled descriptors. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	descs []tokentype.Descriptor
	byID  map[types.TypeID]tokentype.Descriptor
}

// NewRegistry keeps descs in order, dropping families disabled in cfg.
func NewRegistry(descs []tokentype.Descriptor, cfg config.Config) (*Registry, error) {
	known := make(map[types.TypeID]bool, len(descs))
	for _, d := range descs {
		id := d.Info().ID
		if known[id] {
			return nil, fmt.Errorf("duplicate token type %q", id)
		}
		known[id] = true
	}
	var unknown []string
	for _, t := range cfg.TokenTypes {
		if !known[types.TypeID(t.ID)] {
			unknown = append(unknown, t.ID)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTokenType, strings.Join(unknown, ", "))
	}

	r := &Registry{byID: make(map[types.TypeID]tokentype.Descriptor, len(descs))}
	for _, d := range descs {
		if !cfg.TypeEnabled(string(d.Info().ID)) {
			continue
		}
		r.descs = append(r.descs, d)
		r.byID[d.Info().ID] = d
	}
	return r, nil
}

// Classify returns every descriptor whose pattern matches the whole trimmed
// candidate, in registration order. No match yields an empty result.
func (r *Registry) Classify(candidate string) []tokentype.Descriptor {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil
	}
	var out []tokentype.Descriptor
	for _, d := range r.descs {
		if d.Matches(candidate) {
			out = append(out, d)
		}
	}
	return out
}

// Lookup returns the enabled descriptor for id.
func (r *Registry) Lookup(id types.TypeID) (tokentype.Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// List returns display metadata for every enabled family.
func (r *Registry) List() []tokentype.Info {
	out := make([]tokentype.Info, 0, len(r.descs))
	for _, d := range r.descs {
		out = append(out, d.Info())
	}
	return out
}

// Len reports the number of enabled families.
func (r *Registry) Len() int { return len(r.descs) }
