package utils

import (
	"fmt"
	"os"
	"sort"

	"github.com/voxeltools/litematic/litematic"
)

// RunInfo prints the metadata and a per-region summary of a .litematic file.
func RunInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := litematic.Read(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	fmt.Printf("Name:         %s\n", s.Name)
	fmt.Printf("Author:       %s\n", s.Author)
	fmt.Printf("Description:  %s\n", s.Description)
	fmt.Printf("DataVersion:  %d\n", s.DataVersion)
	fmt.Printf("TimeCreated:  %d\n", s.TimeCreated)
	fmt.Printf("TimeModified: %d\n", s.TimeModified)
	fmt.Printf("Regions:      %d\n", len(s.Regions))

	names := make([]string, 0, len(s.Regions))
	for name := range s.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := s.Regions[name]
		vol := r.Volume().MakeSizePositive()
		origin := vol.Origin()
		size := vol.Size()
		fmt.Printf("  %s: origin=(%d,%d,%d) size=(%d,%d,%d) blocks=%d palette=%d\n",
			name, origin.X, origin.Y, origin.Z, size.X, size.Y, size.Z,
			r.TotalBlocks(), len(r.Palette()))
	}
	return nil
}
