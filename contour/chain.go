package contour

// Polyline is a chain of (x,y) vertex pairs, flattened to [x0,y0,x1,y1,...]
// float32 order (spec.md §4.4 "Polyline chainer").
type Polyline struct {
	// Points holds interleaved x,y coordinates; len(Points) == 2*VertexCount.
	Points []float32
	// Closed reports whether the chain's last vertex links back to its
	// first (a loop produced entirely from interior crossings, with no open
	// termini at the grid boundary). Points does not repeat the first vertex.
	Closed bool
}

// VertexCount returns the number of (x,y) points in the polyline.
func (p Polyline) VertexCount() int { return len(p.Points) / 2 }

// chainPolylines walks every vertex's prev/next links, grouping vertices
// into maximal chains (spec.md §4.4: "every live vertex belongs to exactly
// one maximal chain"). Each vertex is visited exactly once.
func chainPolylines(a *vertexArena) []Polyline {
	n := a.Len()
	visited := make([]bool, n)
	var out []Polyline

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		// Walk backward to find the chain's head (a vertex with no prev,
		// or the start vertex again if the chain is a closed loop).
		head := start
		for {
			pv := a.At(head).prev
			if pv == noVertex || pv == start {
				break
			}
			head = pv
		}

		closed := a.At(head).prev != noVertex

		var pts []float32
		id := head
		for {
			if visited[id] {
				break
			}
			visited[id] = true
			v := a.At(id)
			pts = append(pts, v.x, v.y)
			next := v.next
			if next == noVertex || next == head {
				closed = closed || next == head
				break
			}
			id = next
		}

		out = append(out, Polyline{Points: pts, Closed: closed})
	}

	return out
}
