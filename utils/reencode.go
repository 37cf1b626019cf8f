package utils

import (
	"os"

	"github.com/voxeltools/litematic/api"
)

// RunReencode decodes a .litematic file and writes it back out, normalizing
// volumes and dropping unused palette entries along the way.
func RunReencode(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := api.Reencode(data)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
