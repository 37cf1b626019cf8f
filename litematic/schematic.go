package litematic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

// FormatVersion is the only litematic container version this codec speaks.
const FormatVersion int32 = 5

// Schematic aggregates named regions plus the document metadata. Regions
// have no identity outside their owning schematic.
type Schematic struct {
	Name         string
	Author       string
	Description  string
	TimeCreated  int64
	TimeModified int64
	DataVersion  int32
	Regions      map[string]*Region
}

// NewSchematic creates an empty schematic. Timestamps and DataVersion are
// left to the caller.
func NewSchematic(name, author, description string) *Schematic {
	return &Schematic{
		Name:        name,
		Author:      author,
		Description: description,
		Regions:     make(map[string]*Region),
	}
}

// Read parses a gzip-compressed litematic document. Any failure aborts the
// whole read; no partial schematic is returned.
func Read(r io.Reader) (*Schematic, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer zr.Close()

	var root map[string]nbt.RawMessage
	if _, err := nbt.NewDecoder(zr).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode nbt: %w", err)
	}

	var version int32
	if err := unmarshalField(root, "Version", &version); err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	s := &Schematic{Regions: make(map[string]*Region)}
	if err := unmarshalField(root, "MinecraftDataVersion", &s.DataVersion); err != nil {
		return nil, err
	}

	var metadata map[string]nbt.RawMessage
	if err := unmarshalField(root, "Metadata", &metadata); err != nil {
		return nil, err
	}
	if err := unmarshalField(metadata, "Name", &s.Name); err != nil {
		return nil, err
	}
	if err := unmarshalField(metadata, "Author", &s.Author); err != nil {
		return nil, err
	}
	if err := unmarshalField(metadata, "Description", &s.Description); err != nil {
		return nil, err
	}
	if err := unmarshalField(metadata, "TimeCreated", &s.TimeCreated); err != nil {
		return nil, err
	}
	if err := unmarshalField(metadata, "TimeModified", &s.TimeModified); err != nil {
		return nil, err
	}

	var regions map[string]nbt.RawMessage
	if err := unmarshalField(root, "Regions", &regions); err != nil {
		return nil, err
	}
	for name, raw := range regions {
		region, err := decodeRegion(raw)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
		s.Regions[name] = region
	}

	return s, nil
}

// FromBytes parses a litematic document held in memory.
func FromBytes(data []byte) (*Schematic, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes the schematic as a gzip-compressed document. RegionCount,
// TotalBlocks, EnclosingSize and TotalVolume are recomputed from the
// regions, never taken from a previous read.
func (s *Schematic) Write(w io.Writer) error {
	regions := make(map[string]any, len(s.Regions))
	var totalBlocks int32
	var union Volume
	haveUnion := false
	for name, region := range s.Regions {
		compound, vol := region.toNBT()
		regions[name] = compound
		totalBlocks += region.TotalBlocks()
		if cells(vol.Size()) == 0 {
			continue
		}
		if !haveUnion {
			union, haveUnion = vol, true
		} else {
			union = union.ExpandToFitVolume(vol)
		}
	}

	root := map[string]any{
		"Version":              FormatVersion,
		"MinecraftDataVersion": s.DataVersion,
		"Metadata": map[string]any{
			"Name":          s.Name,
			"Author":        s.Author,
			"Description":   s.Description,
			"TimeCreated":   s.TimeCreated,
			"TimeModified":  s.TimeModified,
			"RegionCount":   int32(len(s.Regions)),
			"TotalBlocks":   totalBlocks,
			"EnclosingSize": union.Size(),
			"TotalVolume":   union.Volume(),
		},
		"Regions": regions,
	}

	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(zw).Encode(root, ""); err != nil {
		return fmt.Errorf("encode nbt: %w", err)
	}
	return zw.Close()
}

// Bytes encodes the schematic into memory.
func (s *Schematic) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
