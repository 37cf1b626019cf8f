package litematic

import (
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// Region holds one rectangular area of the schematic as a sparse map of
// coordinate -> block state. Air is never stored: setting a coordinate to
// air removes its entry, so the map is exactly "what differs from air".
// Coordinates are absolute (world-anchored), not offsets into the box.
type Region struct {
	declared Volume
	blocks   map[Vec3]BlockState

	// Opaque payloads carried through decode/encode unexamined. A zero
	// RawMessage (nil Data) means the field was absent in the source and
	// stays absent on write-back.
	Entities          nbt.RawMessage
	PendingBlockTicks nbt.RawMessage
	PendingFluidTicks nbt.RawMessage
	TileEntities      nbt.RawMessage
}

// NewRegion creates an empty region with the given declared bounds.
func NewRegion(origin, size Vec3) *Region {
	return &Region{
		declared: NewVolume(origin, size),
		blocks:   make(map[Vec3]BlockState),
	}
}

// SetBlock stores state at pos. Setting air deletes the entry instead.
func (r *Region) SetBlock(pos Vec3, state BlockState) {
	if state.IsAir() {
		delete(r.blocks, pos)
		return
	}
	r.blocks[pos] = state
}

// Block returns the state at pos; unset coordinates resolve to Air.
func (r *Region) Block(pos Vec3) BlockState {
	if s, ok := r.blocks[pos]; ok {
		return s
	}
	return Air
}

// TotalBlocks counts the stored (non-air) blocks.
func (r *Region) TotalBlocks() int32 {
	return int32(len(r.blocks))
}

// Palette returns the distinct states the region would encode with, air
// always first. The slice is freshly built; callers may keep it.
func (r *Region) Palette() []BlockState {
	pi := newPaletteIndex()
	for _, state := range r.blocks {
		pi.add(state)
	}
	return pi.states
}

// Volume returns the effective bounds: the declared volume expanded to fit
// every stored block. Recomputed on every call.
func (r *Region) Volume() Volume {
	vol := r.declared
	for pos := range r.blocks {
		vol = vol.ExpandToFit(pos)
	}
	return vol
}

// decodeRegion parses one region compound: palette, packed block array and
// geometry, plus the opaque payload fields.
func decodeRegion(raw nbt.RawMessage) (*Region, error) {
	var fields map[string]nbt.RawMessage
	if err := raw.Unmarshal(&fields); err != nil {
		return nil, fmt.Errorf("region is not a compound: %w", err)
	}

	var pos, size Vec3
	if err := unmarshalField(fields, "Position", &pos); err != nil {
		return nil, err
	}
	if err := unmarshalField(fields, "Size", &size); err != nil {
		return nil, err
	}

	paletteRaw, ok := fields["BlockStatePalette"]
	if !ok {
		return nil, &FieldError{Name: "BlockStatePalette", Err: ErrMissingField}
	}
	palette, err := parsePalette(paletteRaw)
	if err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, &FieldError{Name: "BlockStatePalette", Err: fmt.Errorf("palette is empty")}
	}

	var array []int64
	if err := unmarshalField(fields, "BlockStates", &array); err != nil {
		return nil, err
	}

	r := NewRegion(pos, size)

	// The packed array is anchored at the min corner of the declared box
	// and laid out over its absolute dimensions. Files can carry more
	// words than the volume needs; the excess is padding.
	norm := r.declared.MakeSizePositive()
	dims := norm.Size()
	bitsPer := RequiredBits(len(palette))
	words := make([]uint64, len(array))
	for i, w := range array {
		words[i] = uint64(w)
	}
	n := int64(len(words)) * 64 / int64(bitsPer)
	if c := cells(dims); c < n {
		n = c
	}
	for i := int64(0); i < n; i++ {
		idx := getBits(words, i, bitsPer)
		if idx >= uint64(len(palette)) {
			return nil, fmt.Errorf("block %d references palette entry %d of %d", i, idx, len(palette))
		}
		state := palette[idx]
		if state.IsAir() {
			continue
		}
		rel, _ := IndexToCoord(dims, i)
		r.blocks[norm.Origin().Add(rel)] = state
	}

	if raw, ok := fields["Entities"]; ok {
		r.Entities = raw
	}
	if raw, ok := fields["PendingBlockTicks"]; ok {
		r.PendingBlockTicks = raw
	}
	if raw, ok := fields["PendingFluidTicks"]; ok {
		r.PendingFluidTicks = raw
	}
	if raw, ok := fields["TileEntities"]; ok {
		r.TileEntities = raw
	}

	return r, nil
}

// toNBT encodes the region and returns the effective volume it was packed
// against, normalized to a non-negative size.
func (r *Region) toNBT() (map[string]any, Volume) {
	vol := r.Volume().MakeSizePositive()
	size := vol.Size()

	pi := newPaletteIndex()
	indices := make(map[Vec3]int, len(r.blocks))
	for pos, state := range r.blocks {
		indices[pos] = pi.add(state)
	}

	bitsPer := RequiredBits(len(pi.states))
	words := make([]uint64, RequiredWords(cells(size), bitsPer))
	for pos, idx := range indices {
		li, ok := CoordToIndex(size, pos.Sub(vol.Origin()))
		if !ok {
			// The effective volume was expanded over these very keys.
			panic(fmt.Sprintf("litematic: block %v outside effective volume", pos))
		}
		setBits(words, li, bitsPer, uint64(idx))
	}

	array := make([]int64, len(words))
	for i, w := range words {
		array[i] = int64(w)
	}

	out := map[string]any{
		"Position":          vol.Origin(),
		"Size":              size,
		"BlockStatePalette": paletteNBT(pi.states),
		"BlockStates":       array,
	}
	if r.Entities.Data != nil {
		out["Entities"] = r.Entities
	}
	if r.PendingBlockTicks.Data != nil {
		out["PendingBlockTicks"] = r.PendingBlockTicks
	}
	if r.PendingFluidTicks.Data != nil {
		out["PendingFluidTicks"] = r.PendingFluidTicks
	}
	if r.TileEntities.Data != nil {
		out["TileEntities"] = r.TileEntities
	}
	return out, vol
}
