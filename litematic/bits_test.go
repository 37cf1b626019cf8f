package litematic

import "testing"

func TestRequiredBits(t *testing.T) {
	cases := []struct {
		paletteSize int
		want        int
	}{
		{1, 2}, {2, 2}, {3, 2}, {15, 4}, {16, 4}, {54, 6}, {1360, 11},
	}
	for _, c := range cases {
		if got := RequiredBits(c.paletteSize); got != c.want {
			t.Errorf("RequiredBits(%d) = %d, want %d", c.paletteSize, got, c.want)
		}
	}
}

func TestRequiredBitsIsMinimal(t *testing.T) {
	for n := 1; n <= 5000; n++ {
		b := RequiredBits(n)
		if b < 2 {
			t.Fatalf("RequiredBits(%d) = %d, below the format minimum", n, b)
		}
		if 1<<b < n {
			t.Fatalf("RequiredBits(%d) = %d cannot represent every index", n, b)
		}
		if b > 2 && 1<<(b-1) >= n {
			t.Fatalf("RequiredBits(%d) = %d is not minimal", n, b)
		}
	}
}

func TestRequiredWords(t *testing.T) {
	cases := []struct {
		count int64
		bits  int
		want  int
	}{
		{100, 1, 2}, {128, 1, 2}, {128, 2, 4}, {683, 5, 54},
	}
	for _, c := range cases {
		if got := RequiredWords(c.count, c.bits); got != c.want {
			t.Errorf("RequiredWords(%d, %d) = %d, want %d", c.count, c.bits, got, c.want)
		}
	}
}

func TestGetBitsLiteral(t *testing.T) {
	words := []uint64{0x0123456789abcdef, 0x1032547698badcfe}
	cases := []struct {
		field int64
		want  uint64
	}{
		{0, 111}, {1, 27}, {9, 124}, {10, 115},
	}
	for _, c := range cases {
		if got := getBits(words, c.field, 7); got != c.want {
			t.Errorf("getBits(field %d, 7 bits) = %d, want %d", c.field, got, c.want)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for bitsPer := 2; bitsPer <= 32; bitsPer++ {
		const wordCount = 3
		words := make([]uint64, wordCount)
		fields := wordCount * 64 / bitsPer
		mask := uint64(1)<<bitsPer - 1

		value := func(i int) uint64 { return (uint64(i)*0x9e37 + 11) & mask }

		for i := 0; i < fields; i++ {
			setBits(words, int64(i), bitsPer, value(i))
		}
		for i := 0; i < fields; i++ {
			if got := getBits(words, int64(i), bitsPer); got != value(i) {
				t.Fatalf("bits=%d field %d = %d, want %d", bitsPer, i, got, value(i))
			}
		}

		// Overwriting one field must leave every other field intact.
		mid := fields / 2
		setBits(words, int64(mid), bitsPer, ^uint64(0))
		for i := 0; i < fields; i++ {
			want := value(i)
			if i == mid {
				want = mask
			}
			if got := getBits(words, int64(i), bitsPer); got != want {
				t.Fatalf("bits=%d after overwrite, field %d = %d, want %d", bitsPer, i, got, want)
			}
		}
	}
}

func TestSetBitsLastWord(t *testing.T) {
	// A field ending exactly at the array boundary must not touch a
	// nonexistent next word.
	words := []uint64{0}
	setBits(words, 31, 2, 3)
	if got := getBits(words, 31, 2); got != 3 {
		t.Fatalf("field at word boundary = %d, want 3", got)
	}
}
