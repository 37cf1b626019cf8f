package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/voxeltools/litematic/litematic"
)

const noiseEdge = 16 // noise regions are 16x16x16

var noiseStates = []litematic.BlockState{
	litematic.NewBlockState("stone", nil),
	litematic.NewBlockState("dirt", nil),
	litematic.NewBlockState("basalt", nil),
	litematic.NewBlockState("stone_bricks", nil),
	litematic.NewBlockState("oak_planks", nil),
	litematic.NewBlockState("glass", nil),
	litematic.NewBlockState("oak_log", map[string]string{"axis": "y"}),
	litematic.NewBlockState("furnace", map[string]string{"facing": "north", "lit": "false"}),
}

// generateNoiseRegion fills a 16^3 region so that roughly percentage% of
// its cells carry a random state from noiseStates.
func generateNoiseRegion(percentage float64, r *rand.Rand) *litematic.Region {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := noiseEdge * noiseEdge * noiseEdge
	want := int(float64(total)*(percentage/100.0) + 0.5)

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	// Fisher-Yates shuffle only the first 'want' items
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	region := litematic.NewRegion(litematic.Vec3{}, litematic.Vec3{X: noiseEdge, Y: noiseEdge, Z: noiseEdge})
	for k := 0; k < want; k++ {
		i := idx[k]
		pos := litematic.Vec3{
			X: int32(i % noiseEdge),
			Z: int32((i / noiseEdge) % noiseEdge),
			Y: int32(i / (noiseEdge * noiseEdge)),
		}
		region.SetBlock(pos, noiseStates[r.Intn(len(noiseStates))])
	}
	return region
}

// RunGenerateNoise creates 'amount' .litematic files named
// 0.litematic..(amount-1).litematic in outDir, each holding one region of
// random noise with the given fill percentage.
func RunGenerateNoise(percentage float64, amount int, outDir string) error {
	if amount < 0 {
		amount = 0
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	baseSeed := uint64(time.Now().UnixNano())
	for i := 0; i < amount; i++ {
		const weyl = uint64(0x9e3779b97f4a7c15)
		seed := baseSeed ^ (uint64(i)+1)*weyl
		r := rand.New(rand.NewSource(int64(seed & 0x7fffffffffffffff)))

		s := litematic.NewSchematic(fmt.Sprintf("noise-%d", i), "litematool", "generated noise")
		now := time.Now().UnixMilli()
		s.TimeCreated = now
		s.TimeModified = now
		s.Regions["noise"] = generateNoiseRegion(percentage, r)

		data, err := s.Bytes()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("%d.litematic", i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
