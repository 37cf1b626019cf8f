package litematic

// Vec3 is an integer 3-D coordinate. On the wire it is a compound with
// lowercase x/y/z int fields, as used by Position, Size and EnclosingSize.
type Vec3 struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Volume returns |x*y*z|, the number of cells in a box of this size.
// It is a scalar count, not a geometric quantity.
func (v Vec3) Volume() int32 {
	return int32(abs64(int64(v.X) * int64(v.Y) * int64(v.Z)))
}

// cells is the untruncated cell count, used wherever the product of three
// full int32 axes could overflow an int32.
func cells(size Vec3) int64 {
	return abs64(int64(size.X) * int64(size.Y) * int64(size.Z))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
