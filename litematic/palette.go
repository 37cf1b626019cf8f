package litematic

import (
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// paletteIndex deduplicates block states while assigning on-disk palette
// positions. Index 0 is always the default air state, whether or not any
// cell uses it. Lookups go through the order-independent state hash with
// an Equal check per bucket entry, so hash collisions stay correct.
type paletteIndex struct {
	states []BlockState
	byHash map[uint64][]int
}

func newPaletteIndex() *paletteIndex {
	p := &paletteIndex{byHash: make(map[uint64][]int)}
	p.add(Air)
	return p
}

// add returns the palette position of s, appending it when unseen.
func (p *paletteIndex) add(s BlockState) int {
	h := s.hash()
	for _, i := range p.byHash[h] {
		if p.states[i].Equal(s) {
			return i
		}
	}
	i := len(p.states)
	p.states = append(p.states, s)
	p.byHash[h] = append(p.byHash[h], i)
	return i
}

// parsePalette decodes the ordered BlockStatePalette list. Every element
// must be a compound with a string Name; Properties is optional and, when
// present, must be a compound of strings.
func parsePalette(raw nbt.RawMessage) ([]BlockState, error) {
	var entries []map[string]nbt.RawMessage
	if err := raw.Unmarshal(&entries); err != nil {
		return nil, &FieldError{Name: "BlockStatePalette", Err: err}
	}

	palette := make([]BlockState, 0, len(entries))
	for i, entry := range entries {
		var name string
		if err := unmarshalField(entry, "Name", &name); err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		var properties map[string]string
		if props, ok := entry["Properties"]; ok {
			if err := props.Unmarshal(&properties); err != nil {
				return nil, fmt.Errorf("palette entry %d: %w", i, &FieldError{Name: "Properties", Err: err})
			}
		}
		palette = append(palette, NewBlockState(name, properties))
	}
	return palette, nil
}

// paletteNBT renders the palette as the wire list. Properties is omitted
// entirely for property-less states.
func paletteNBT(states []BlockState) []map[string]any {
	out := make([]map[string]any, len(states))
	for i, s := range states {
		entry := map[string]any{"Name": s.Block()}
		if len(s.Properties) > 0 {
			entry["Properties"] = s.Properties
		}
		out[i] = entry
	}
	return out
}
