// Package imaging provides categorical 3D voxel volumes and spatial
// adjacency analysis between named categories. A volume is a grid of
// integer codes, each code indexing into an ordered list of category
// names; the package answers questions such as "does any green voxel
// touch a red voxel" under full 26-connectivity.
package imaging

import "fmt"

// Volume is a 3D grid of integer category codes. The grid is stored as
// a flat slice in row-major order: X is the outer axis, Y the middle,
// Z the inner, so the voxel at (x, y, z) lives at (x*Height+y)*Depth+z.
type Volume struct {
	// Data is the grid contents in row-major order
	Data []int32

	// Width, Height, Depth are the grid extents along X, Y and Z
	Width, Height, Depth int
}

// NewVolume builds a Volume from nested slices, indexed as
// cells[x][y][z]. The nesting must be rectangular and non-empty.
func NewVolume(cells [][][]int) (*Volume, error) {
	flat, w, h, d, err := flattenGrid(cells)
	if err != nil {
		return nil, err
	}
	data := make([]int32, len(flat))
	for i, v := range flat {
		data[i] = int32(v)
	}
	return &Volume{Data: data, Width: w, Height: h, Depth: d}, nil
}

// NewVolumeFromSlice builds a Volume from an already-flat slice of codes
// in row-major order. The slice length must equal w*h*d.
func NewVolumeFromSlice(codes []int32, w, h, d int) (*Volume, error) {
	if w < 1 || h < 1 || d < 1 {
		return nil, &ShapeError{Width: w, Height: h, Depth: d, Detail: "volume cannot be empty"}
	}
	if len(codes) != w*h*d {
		return nil, &ShapeError{
			Width: w, Height: h, Depth: d,
			Detail: fmt.Sprintf("flat data has %d values, want %d", len(codes), w*h*d),
		}
	}
	data := make([]int32, len(codes))
	copy(data, codes)
	return &Volume{Data: data, Width: w, Height: h, Depth: d}, nil
}

// At returns the code of the voxel at (x, y, z).
func (v *Volume) At(x, y, z int) int32 {
	return v.Data[(x*v.Height+y)*v.Depth+z]
}

// Shape returns the grid extents along X, Y and Z.
func (v *Volume) Shape() (int, int, int) {
	return v.Width, v.Height, v.Depth
}

// Len returns the total number of voxels.
func (v *Volume) Len() int {
	return v.Width * v.Height * v.Depth
}

// Clone returns a deep copy of the volume.
func (v *Volume) Clone() *Volume {
	data := make([]int32, len(v.Data))
	copy(data, v.Data)
	return &Volume{Data: data, Width: v.Width, Height: v.Height, Depth: v.Depth}
}

// LabelVolume is a 3D grid of category name strings, one label per
// voxel. It uses the same row-major layout as Volume.
type LabelVolume struct {
	// Labels is the grid contents in row-major order
	Labels []string

	// Width, Height, Depth are the grid extents along X, Y and Z
	Width, Height, Depth int
}

// NewLabelVolume builds a LabelVolume from nested slices, indexed as
// cells[x][y][z]. The nesting must be rectangular and non-empty.
func NewLabelVolume(cells [][][]string) (*LabelVolume, error) {
	flat, w, h, d, err := flattenGrid(cells)
	if err != nil {
		return nil, err
	}
	return &LabelVolume{Labels: flat, Width: w, Height: h, Depth: d}, nil
}

// At returns the label of the voxel at (x, y, z).
func (v *LabelVolume) At(x, y, z int) string {
	return v.Labels[(x*v.Height+y)*v.Depth+z]
}

// Shape returns the grid extents along X, Y and Z.
func (v *LabelVolume) Shape() (int, int, int) {
	return v.Width, v.Height, v.Depth
}

// Len returns the total number of voxels.
func (v *LabelVolume) Len() int {
	return v.Width * v.Height * v.Depth
}

// Equal reports whether two label volumes have the same shape and the
// same label at every voxel.
func (v *LabelVolume) Equal(o *LabelVolume) bool {
	if o == nil || v.Width != o.Width || v.Height != o.Height || v.Depth != o.Depth {
		return false
	}
	for i, l := range v.Labels {
		if o.Labels[i] != l {
			return false
		}
	}
	return true
}

// Mask is a derived boolean grid marking the voxels of one category.
// Masks are computed fresh per call and never alias image state, so
// callers may modify them freely.
type Mask struct {
	bits                 []bool
	width, height, depth int
}

// At reports whether the voxel at (x, y, z) is set.
func (m *Mask) At(x, y, z int) bool {
	return m.bits[(x*m.height+y)*m.depth+z]
}

// Shape returns the grid extents along X, Y and Z.
func (m *Mask) Shape() (int, int, int) {
	return m.width, m.height, m.depth
}

// Any reports whether at least one voxel is set.
func (m *Mask) Any() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// Count returns the number of set voxels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// flattenGrid validates that nested cells form a rectangular non-empty
// grid and returns the row-major flattening together with the extents.
func flattenGrid[T any](cells [][][]T) ([]T, int, int, int, error) {
	w := len(cells)
	if w == 0 {
		return nil, 0, 0, 0, &ShapeError{Detail: "volume cannot be empty"}
	}
	h := len(cells[0])
	if h == 0 {
		return nil, w, 0, 0, &ShapeError{Width: w, Detail: "volume cannot be empty"}
	}
	d := len(cells[0][0])
	if d == 0 {
		return nil, w, h, 0, &ShapeError{Width: w, Height: h, Detail: "volume cannot be empty"}
	}

	flat := make([]T, 0, w*h*d)
	for x, plane := range cells {
		if len(plane) != h {
			return nil, w, h, d, &ShapeError{
				Width: w, Height: h, Depth: d,
				Detail: fmt.Sprintf("ragged grid: plane x=%d has %d rows, want %d", x, len(plane), h),
			}
		}
		for y, row := range plane {
			if len(row) != d {
				return nil, w, h, d, &ShapeError{
					Width: w, Height: h, Depth: d,
					Detail: fmt.Sprintf("ragged grid: row x=%d y=%d has %d values, want %d", x, y, len(row), d),
				}
			}
			flat = append(flat, row...)
		}
	}
	return flat, w, h, d, nil
}
