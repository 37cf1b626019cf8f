package litematic

// Greedy face-merging mesher over a region's effective volume. Coplanar
// faces of the same palette entry are merged into single quads, one sweep
// per face direction.

type Vertex struct {
	Position [3]float32
	State    uint32 // index into Mesh.Palette
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Palette  []BlockState
}

type dirSpec struct {
	normal [3]float32
	u, v   int
	du, dv [3]int
}

var directions = []dirSpec{
	{[3]float32{1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{-1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, -1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 0, 1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
	{[3]float32{0, 0, -1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
}

func addQuad(mesh *Mesh, dir dirSpec, origin [3]float32, start [3]int, w, h int, state int, perp int) {
	base := [3]float32{}
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])
	for i := 0; i < 3; i++ {
		base[i] += origin[i]
	}

	verts := [4]Vertex{
		{Position: base, State: uint32(state)},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h), base[1] + float32(dir.du[1]*h), base[2] + float32(dir.du[2]*h)}, State: uint32(state)},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h) + float32(dir.dv[0]*w), base[1] + float32(dir.du[1]*h) + float32(dir.dv[1]*w), base[2] + float32(dir.du[2]*h) + float32(dir.dv[2]*w)}, State: uint32(state)},
		{Position: [3]float32{base[0] + float32(dir.dv[0]*w), base[1] + float32(dir.dv[1]*w), base[2] + float32(dir.dv[2]*w)}, State: uint32(state)},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}

// GenerateMesh builds a merged quad mesh of every non-air block. Vertex
// positions are absolute coordinates, so meshes of sibling regions line up
// in one scene without per-node transforms.
func (r *Region) GenerateMesh() *Mesh {
	vol := r.Volume().MakeSizePositive()
	size := vol.Size()
	dims := [3]int{int(size.X), int(size.Y), int(size.Z)}
	origin := vol.Origin()

	pi := newPaletteIndex()
	indices := make(map[Vec3]int, len(r.blocks))
	for pos, state := range r.blocks {
		indices[pos] = pi.add(state)
	}

	// 0 is air in every palette; the mask uses it as "no face here".
	voxel := func(x, y, z int) int {
		if x < 0 || x >= dims[0] || y < 0 || y >= dims[1] || z < 0 || z >= dims[2] {
			return 0
		}
		return indices[Vec3{origin.X + int32(x), origin.Y + int32(y), origin.Z + int32(z)}]
	}

	mesh := &Mesh{Palette: pi.states}
	forigin := [3]float32{float32(origin.X), float32(origin.Y), float32(origin.Z)}

	for _, dir := range directions {
		perp := 3 - dir.u - dir.v

		for p := 0; p < dims[perp]; p++ {
			mask := make([][]int, dims[dir.u])
			visited := make([][]bool, dims[dir.u])
			for i := range mask {
				mask[i] = make([]int, dims[dir.v])
				visited[i] = make([]bool, dims[dir.v])
			}

			for u := 0; u < dims[dir.u]; u++ {
				for v := 0; v < dims[dir.v]; v++ {
					pos := [3]int{}
					pos[dir.u] = u
					pos[dir.v] = v
					pos[perp] = p

					state := voxel(pos[0], pos[1], pos[2])
					if state == 0 {
						continue
					}

					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp] = p - 1
					} else {
						adj[perp] = p + 1
					}

					if adj[perp] < 0 || adj[perp] >= dims[perp] || voxel(adj[0], adj[1], adj[2]) == 0 {
						mask[u][v] = state
					}
				}
			}

			for u := 0; u < dims[dir.u]; u++ {
				for v := 0; v < dims[dir.v]; {
					if mask[u][v] == 0 || visited[u][v] {
						v++
						continue
					}
					state := mask[u][v]
					width := 1
					for w := v + 1; w < dims[dir.v] && mask[u][w] == state && !visited[u][w]; w++ {
						width++
					}
					height := 1
					stop := false
					for h := u + 1; h < dims[dir.u] && !stop; h++ {
						for w := v; w < v+width; w++ {
							if mask[h][w] != state || visited[h][w] {
								stop = true
								break
							}
						}
						if !stop {
							height++
						}
					}
					for hu := u; hu < u+height; hu++ {
						for hv := v; hv < v+width; hv++ {
							visited[hu][hv] = true
						}
					}
					addQuad(mesh, dir, forigin, [3]int{p, u, v}, width, height, state, perp)
					v += width
				}
			}
		}
	}
	return mesh
}
