package utils

import (
	"os"

	"github.com/voxeltools/litematic/api"
)

// RunLitematic2GLB converts a .litematic file to a binary glTF scene.
func RunLitematic2GLB(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	glb, err := api.ToGLB(data)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, glb, 0o644)
}
