package litematic

import (
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// DefaultNamespace is prefixed to block identifiers that carry none.
const DefaultNamespace = "minecraft"

// BlockState identifies a block by namespaced name plus an unordered set of
// string properties. The identifier is always stored normalized: lowercase,
// with the default namespace prefixed when the name has no ':'.
type BlockState struct {
	block      string
	Properties map[string]string
}

// Air is the implicit default state of every coordinate a region does not
// store explicitly.
var Air = NewBlockState("air", nil)

// NewBlockState builds a state with a normalized identifier. properties may
// be nil.
func NewBlockState(block string, properties map[string]string) BlockState {
	return BlockState{block: normalizeBlockName(block), Properties: properties}
}

func normalizeBlockName(name string) string {
	name = strings.ToLower(name)
	if !strings.Contains(name, ":") {
		return DefaultNamespace + ":" + name
	}
	return name
}

// Block returns the normalized namespaced identifier.
func (s BlockState) Block() string { return s.block }

// SetBlock replaces the identifier, normalizing it the same way the
// constructor does.
func (s *BlockState) SetBlock(block string) {
	s.block = normalizeBlockName(block)
}

// IsAir reports whether s is the implicit default state.
func (s BlockState) IsAir() bool { return s.Equal(Air) }

// Equal compares identifier and the full property set, ignoring property
// order. A nil and an empty property map compare equal.
func (s BlockState) Equal(o BlockState) bool {
	if s.block != o.block || len(s.Properties) != len(o.Properties) {
		return false
	}
	for k, v := range s.Properties {
		if ov, ok := o.Properties[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Clone returns a state with its own property map.
func (s BlockState) Clone() BlockState {
	c := BlockState{block: s.block}
	if s.Properties != nil {
		c.Properties = make(map[string]string, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = v
		}
	}
	return c
}

// hash is consistent with Equal: property pairs are folded with XOR so the
// result does not depend on map iteration order.
func (s BlockState) hash() uint64 {
	h := xxhash.Sum64String(s.block)
	for k, v := range s.Properties {
		h ^= xxhash.Sum64String(k + "=" + v)
	}
	return h
}
