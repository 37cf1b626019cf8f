package litematic

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 5, -6}
	if got := a.Add(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Sub = %v", got)
	}
}

func TestVec3Volume(t *testing.T) {
	if got := (Vec3{2, 3, 4}).Volume(); got != 24 {
		t.Errorf("Volume = %d, want 24", got)
	}
	if got := (Vec3{-2, 5, -7}).Volume(); got != 70 {
		t.Errorf("Volume of negative size = %d, want 70", got)
	}
	if got := (Vec3{0, 5, 7}).Volume(); got != 0 {
		t.Errorf("Volume with zero axis = %d, want 0", got)
	}
}
