package litematic

import xxhash "github.com/cespare/xxhash/v2"

// StateColor derives a stable RGBA for a block state from the hash of its
// identifier. Block namespaces are open-ended, so there is no fixed color
// table; the same name always gets the same color. Channels are lifted
// away from black so meshes stay readable.
func StateColor(s BlockState) [4]float32 {
	h := xxhash.Sum64String(s.Block())
	r := float32(h>>0&0xff)/340 + 0.25
	g := float32(h>>8&0xff)/340 + 0.25
	b := float32(h>>16&0xff)/340 + 0.25
	return [4]float32{r, g, b, 1}
}
