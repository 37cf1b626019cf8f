package litematic

import "iter"

// Volume is an axis-aligned box given by two corner points. pos2 is not
// required to be >= pos1 on any axis: a volume may have a negative size,
// meaning pos2 lies "before" pos1. pos2 == pos1 + Size() always holds.
type Volume struct {
	pos1 Vec3
	pos2 Vec3
}

// NewVolume builds the volume spanning size cells from origin. Size
// components may be negative.
func NewVolume(origin, size Vec3) Volume {
	return Volume{pos1: origin, pos2: origin.Add(size)}
}

func (v Volume) Origin() Vec3 { return v.pos1 }

// Size is signed: negative components mean pos2 is before pos1 on that axis.
func (v Volume) Size() Vec3 { return v.pos2.Sub(v.pos1) }

// Volume returns the cell count of the box, always non-negative.
func (v Volume) Volume() int32 { return v.Size().Volume() }

// MoveTo translates the volume so its first corner sits at pos.
func (v Volume) MoveTo(pos Vec3) Volume {
	return Volume{pos1: pos, pos2: pos.Add(v.Size())}
}

// ChangeSize keeps the first corner and replaces the size.
func (v Volume) ChangeSize(size Vec3) Volume {
	return Volume{pos1: v.pos1, pos2: v.pos1.Add(size)}
}

// ExpandToFit grows the box per axis so it contains the unit cube anchored
// at p, i.e. the half-open span [c, c+1) on every axis. Which corner moves
// depends on the sign of the current size on that axis.
func (v Volume) ExpandToFit(p Vec3) Volume {
	pos1 := [3]int32{v.pos1.X, v.pos1.Y, v.pos1.Z}
	pos2 := [3]int32{v.pos2.X, v.pos2.Y, v.pos2.Z}
	pt := [3]int32{p.X, p.Y, p.Z}

	for i := 0; i < 3; i++ {
		switch {
		case pos1[i] < pos2[i]:
			if pt[i]+1 > pos2[i] {
				pos2[i] = pt[i] + 1
			}
			if pt[i] < pos1[i] {
				pos1[i] = pt[i]
			}
		case pos1[i] > pos2[i]:
			if pt[i]+1 > pos1[i] {
				pos1[i] = pt[i] + 1
			}
			if pt[i] < pos2[i] {
				pos2[i] = pt[i]
			}
		default:
			if pt[i] >= pos1[i] {
				pos2[i] = pt[i] + 1
			} else {
				pos2[i] = pt[i]
			}
		}
	}

	return Volume{
		pos1: Vec3{pos1[0], pos1[1], pos1[2]},
		pos2: Vec3{pos2[0], pos2[1], pos2[2]},
	}
}

// ExpandToFitVolume grows the box to contain every cell of other. The
// argument is normalized first; its exclusive max corner is pulled back by
// one so only occupied cells are fitted.
func (v Volume) ExpandToFitVolume(other Volume) Volume {
	other = other.MakeSizePositive()
	max := other.pos2.Sub(Vec3{1, 1, 1})
	return v.ExpandToFit(other.pos1).ExpandToFit(max)
}

// MakeSizePositive swaps corners per axis so the size is non-negative on
// every axis. The covered point set is unchanged.
func (v Volume) MakeSizePositive() Volume {
	p1, p2 := v.pos1, v.pos2
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	if p1.Z > p2.Z {
		p1.Z, p2.Z = p2.Z, p1.Z
	}
	return Volume{pos1: p1, pos2: p2}
}

// Points enumerates every integer coordinate inside the volume, x varying
// fastest, then z, then y - the same order the packed block array uses.
// Each call yields an independent sequence; the volume is not mutated.
func (v Volume) Points() iter.Seq[Vec3] {
	n := v.MakeSizePositive()
	origin, size := n.pos1, n.Size()
	return func(yield func(Vec3) bool) {
		for y := int32(0); y < size.Y; y++ {
			for z := int32(0); z < size.Z; z++ {
				for x := int32(0); x < size.X; x++ {
					if !yield(Vec3{origin.X + x, origin.Y + y, origin.Z + z}) {
						return
					}
				}
			}
		}
	}
}

// CoordToIndex maps a coordinate inside a box of the given non-negative
// size to its linear index (x fastest, then z, then y). ok is false when
// the point lies outside [0, size) on any axis.
func CoordToIndex(size, p Vec3) (index int64, ok bool) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= size.X || p.Y >= size.Y || p.Z >= size.Z {
		return 0, false
	}
	return int64(p.Y)*int64(size.X)*int64(size.Z) + int64(p.Z)*int64(size.X) + int64(p.X), true
}

// IndexToCoord is the inverse of CoordToIndex. ok is false when
// index >= size.Volume().
func IndexToCoord(size Vec3, index int64) (p Vec3, ok bool) {
	if index < 0 || index >= cells(size) {
		return Vec3{}, false
	}
	layer := int64(size.X) * int64(size.Z)
	y := index / layer
	z := (index % layer) / int64(size.X)
	x := (index % layer) % int64(size.X)
	return Vec3{int32(x), int32(y), int32(z)}, true
}
