package litematic

import "testing"

func TestNewVolume(t *testing.T) {
	v := NewVolume(Vec3{1, 1, 1}, Vec3{2, 2, 2})
	if v.Origin() != (Vec3{1, 1, 1}) || v.Size() != (Vec3{2, 2, 2}) {
		t.Errorf("origin=%v size=%v", v.Origin(), v.Size())
	}

	neg := NewVolume(Vec3{1, 1, 1}, Vec3{-1, -1, -1})
	if neg.Size() != (Vec3{-1, -1, -1}) {
		t.Errorf("negative size not preserved: %v", neg.Size())
	}
	if neg.Volume() != 1 {
		t.Errorf("Volume of negative-size box = %d, want 1", neg.Volume())
	}
}

func TestMoveToChangeSize(t *testing.T) {
	v := NewVolume(Vec3{1, 2, 3}, Vec3{4, 5, 6})
	moved := v.MoveTo(Vec3{0, 0, 0})
	if moved.Origin() != (Vec3{0, 0, 0}) || moved.Size() != (Vec3{4, 5, 6}) {
		t.Errorf("MoveTo: origin=%v size=%v", moved.Origin(), moved.Size())
	}
	resized := v.ChangeSize(Vec3{1, 1, 1})
	if resized.Origin() != (Vec3{1, 2, 3}) || resized.Size() != (Vec3{1, 1, 1}) {
		t.Errorf("ChangeSize: origin=%v size=%v", resized.Origin(), resized.Size())
	}
}

func TestExpandToFit(t *testing.T) {
	cases := []struct {
		name  string
		start Volume
		point Vec3
		want  Volume
	}{
		{"grow from empty", Volume{}, Vec3{1, 1, 1}, NewVolume(Vec3{0, 0, 0}, Vec3{2, 2, 2})},
		{"grow negative from empty", Volume{}, Vec3{-1, -1, -1}, NewVolume(Vec3{0, 0, 0}, Vec3{-1, -1, -1})},
		{"grow toward origin", NewVolume(Vec3{1, 1, 1}, Vec3{2, 2, 2}), Vec3{0, 0, 0}, NewVolume(Vec3{0, 0, 0}, Vec3{3, 3, 3})},
		{"mixed-sign axes", NewVolume(Vec3{1, 1, 1}, Vec3{2, -2, 2}), Vec3{0, 0, 0}, NewVolume(Vec3{0, 1, 0}, Vec3{3, -2, 3})},
	}
	for _, c := range cases {
		if got := c.start.ExpandToFit(c.point); got != c.want {
			t.Errorf("%s: got origin=%v size=%v, want origin=%v size=%v",
				c.name, got.Origin(), got.Size(), c.want.Origin(), c.want.Size())
		}
	}
}

func TestExpandToFitIsIdempotent(t *testing.T) {
	v := NewVolume(Vec3{0, 0, 0}, Vec3{3, 3, 3})
	if got := v.ExpandToFit(Vec3{1, 1, 1}); got != v {
		t.Errorf("interior point changed the volume: %v %v", got.Origin(), got.Size())
	}
}

func TestExpandToFitVolume(t *testing.T) {
	a := NewVolume(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewVolume(Vec3{2, 2, 2}, Vec3{2, 2, 2})
	got := a.ExpandToFitVolume(b)
	want := NewVolume(Vec3{0, 0, 0}, Vec3{4, 4, 4})
	if got != want {
		t.Errorf("got origin=%v size=%v, want origin=%v size=%v",
			got.Origin(), got.Size(), want.Origin(), want.Size())
	}

	// A negative-size argument covers the same cells as its normalized
	// form, so the union must be identical.
	bNeg := NewVolume(Vec3{4, 4, 4}, Vec3{-2, -2, -2})
	if got := a.ExpandToFitVolume(bNeg); got != want {
		t.Errorf("negative-size argument: got origin=%v size=%v", got.Origin(), got.Size())
	}
}

func TestMakeSizePositive(t *testing.T) {
	v := NewVolume(Vec3{2, 3, 4}, Vec3{-2, 5, -7}).MakeSizePositive()
	if v.Origin() != (Vec3{0, 3, -3}) || v.Size() != (Vec3{2, 5, 7}) {
		t.Errorf("origin=%v size=%v, want origin=(0,3,-3) size=(2,5,7)", v.Origin(), v.Size())
	}
	if v.MakeSizePositive() != v {
		t.Error("MakeSizePositive not idempotent")
	}
}

func TestCoordIndexLiterals(t *testing.T) {
	size := Vec3{4, 6, 5}
	if p, ok := IndexToCoord(size, 53); !ok || p != (Vec3{1, 2, 3}) {
		t.Errorf("IndexToCoord(53) = %v, %v", p, ok)
	}
	if p, ok := IndexToCoord(size, 54); !ok || p != (Vec3{2, 2, 3}) {
		t.Errorf("IndexToCoord(54) = %v, %v", p, ok)
	}
	if p, ok := IndexToCoord(Vec3{2, 3, 3}, 1); !ok || p != (Vec3{1, 0, 0}) {
		t.Errorf("IndexToCoord(1) = %v, %v", p, ok)
	}
	if p, ok := IndexToCoord(Vec3{2, 3, 3}, 9); !ok || p != (Vec3{1, 1, 1}) {
		t.Errorf("IndexToCoord(9) = %v, %v", p, ok)
	}
	if _, ok := IndexToCoord(Vec3{0, 0, 0}, 0); ok {
		t.Error("IndexToCoord on empty size should be out of range")
	}
}

func TestCoordIndexBijection(t *testing.T) {
	sizes := []Vec3{{4, 6, 5}, {2, 3, 3}, {1, 1, 1}, {3, 1, 7}, {16, 16, 16}}
	for _, size := range sizes {
		total := cells(size)
		for i := int64(0); i < total; i++ {
			p, ok := IndexToCoord(size, i)
			if !ok {
				t.Fatalf("size %v: index %d unexpectedly out of range", size, i)
			}
			back, ok := CoordToIndex(size, p)
			if !ok || back != i {
				t.Fatalf("size %v: index %d -> %v -> %d", size, i, p, back)
			}
		}
		if _, ok := IndexToCoord(size, total); ok {
			t.Errorf("size %v: index %d should be out of range", size, total)
		}
		if _, ok := CoordToIndex(size, size); ok {
			t.Errorf("size %v: corner coordinate should be out of range", size)
		}
		if _, ok := CoordToIndex(size, Vec3{-1, 0, 0}); ok {
			t.Errorf("size %v: negative coordinate should be out of range", size)
		}
	}
}

func TestPointsOrder(t *testing.T) {
	v := NewVolume(Vec3{1, 1, 1}, Vec3{2, 2, 2})
	want := []Vec3{
		{1, 1, 1}, {2, 1, 1}, {1, 1, 2}, {2, 1, 2},
		{1, 2, 1}, {2, 2, 1}, {1, 2, 2}, {2, 2, 2},
	}
	var got []Vec3
	for p := range v.Points() {
		got = append(got, p)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	// The sequence restarts from the first coordinate on every call.
	for p := range v.Points() {
		if p != want[0] {
			t.Fatalf("restarted sequence begins at %v, want %v", p, want[0])
		}
		break
	}
}

func TestPointsNegativeSize(t *testing.T) {
	v := NewVolume(Vec3{2, 2, 2}, Vec3{-2, -2, -2})
	count := 0
	for p := range v.Points() {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 || p.Z < 0 || p.Z > 1 {
			t.Fatalf("point %v outside normalized bounds", p)
		}
		count++
	}
	if count != 8 {
		t.Fatalf("enumerated %d points, want 8", count)
	}
}
