// Package contour extracts oriented polyline contours from a rectangular
// float32 sample grid at a set of intensity levels, using a marching-squares
// state machine with saddle disambiguation and polyline chaining
// (spec.md §4.2-§4.5). It also packs multi-level, multi-array results into
// flat GPU-ready vertex/index/color buffers suitable for line-loop
// rendering (spec.md §4.5-§4.6).
//
// Two top-level entry points match spec.md §6's external interfaces:
// List, which returns a per-level list of polylines, and GL, which returns
// a packed buffer across positive and negative level passes for one or more
// arrays.
package contour
