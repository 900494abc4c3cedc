package contour

// Packed is the five-tuple GL buffer described by spec.md §4.5: flat vertex
// and color arrays, plus an index array that encodes every polyline as a
// sequence of (i, i+1) line segments with the final segment's second index
// replaced by the polyline's first index, closing it into a line loop.
type Packed struct {
	NumIndices  uint32
	NumVertices uint32
	Indices     []uint32  // len == NumIndices, paired (i, i+1) per segment
	Vertices    []float32 // len == 2*NumVertices
	Colors      []float32 // len == 4*NumVertices
}

// coloredPolylines is one array's contoured output, tagged with the RGBA
// quadruplet every one of its vertices should carry in the packed buffer.
type coloredPolylines struct {
	polylines [][]Polyline
	color     [4]float32
}

// packAll runs the counting-then-fill passes described in spec.md §4.5 over
// one or more colored polyline sets, in the order they're given.
func packAll(sets []coloredPolylines) Packed {
	var vertexTotal, segmentTotal int
	for _, set := range sets {
		for _, level := range set.polylines {
			for _, p := range level {
				n := p.VertexCount()
				if n == 0 {
					continue
				}
				vertexTotal += n
				segmentTotal += n // one segment per vertex in a closed loop
			}
		}
	}

	out := Packed{
		NumVertices: uint32(vertexTotal),
		NumIndices:  uint32(segmentTotal * 2),
		Vertices:    make([]float32, 0, vertexTotal*2),
		Indices:     make([]uint32, 0, segmentTotal*2),
		Colors:      make([]float32, 0, vertexTotal*4),
	}

	var base uint32
	for _, set := range sets {
		for _, level := range set.polylines {
			for _, p := range level {
				n := uint32(p.VertexCount())
				if n == 0 {
					continue
				}
				out.Vertices = append(out.Vertices, p.Points...)
				for i := uint32(0); i < n; i++ {
					out.Colors = append(out.Colors, set.color[0], set.color[1], set.color[2], set.color[3])
				}
				for i := uint32(0); i < n; i++ {
					second := base + i + 1
					if i == n-1 {
						second = base // line-loop closure
					}
					out.Indices = append(out.Indices, base+i, second)
				}
				base += n
			}
		}
	}

	return out
}
