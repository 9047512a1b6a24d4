package imaging

import (
	"sort"
)

// Adjacent reports whether any voxel of cat1 has a voxel of cat2 among
// its 26 neighbors (all voxels within Chebyshev distance 1, excluding
// the voxel itself, clipped to the volume bounds). The relation is
// symmetric in its arguments. Passing the same category twice asks
// whether that category occupies two mutually adjacent voxels; a lone
// voxel is never adjacent to itself.
func (img *CategoricalImage) Adjacent(cat1, cat2 string) (bool, error) {
	code1, err := img.Code(cat1)
	if err != nil {
		return false, err
	}
	code2, err := img.Code(cat2)
	if err != nil {
		return false, err
	}
	return adjacent(img.data, img.width, img.height, img.depth, int32(code1), int32(code2)), nil
}

// GreenTouchesRed reports whether any "green" voxel is adjacent to a
// "red" voxel. Both categories must be declared on the image; callers
// working with other names should use Adjacent directly.
func (img *CategoricalImage) GreenTouchesRed() (bool, error) {
	return img.Adjacent("green", "red")
}

// CheckCategoryAdjacency is the raw-volume form of
// CategoricalImage.Adjacent. The category map resolves integer codes to
// names and is required; both names must appear in it.
func CheckCategoryAdjacency(vol *Volume, categoryMap map[int]string, cat1, cat2 string) (bool, error) {
	if vol == nil || len(vol.Data) == 0 {
		return false, &ShapeError{Detail: "volume cannot be empty"}
	}
	if categoryMap == nil {
		return false, &MissingMappingError{}
	}

	reverse := make(map[string]int32, len(categoryMap))
	names := make([]string, 0, len(categoryMap))
	for code, name := range categoryMap {
		reverse[name] = int32(code)
		names = append(names, name)
	}
	sort.Strings(names)

	code1, ok := reverse[cat1]
	if !ok {
		return false, &UnknownCategoryError{Name: cat1, Available: names}
	}
	code2, ok := reverse[cat2]
	if !ok {
		return false, &UnknownCategoryError{Name: cat2, Available: names}
	}
	return adjacent(vol.Data, vol.Width, vol.Height, vol.Depth, code1, code2), nil
}

// CheckGreenTouchesRed is the raw-volume form of
// CategoricalImage.GreenTouchesRed.
func CheckGreenTouchesRed(vol *Volume, categoryMap map[int]string) (bool, error) {
	return CheckCategoryAdjacency(vol, categoryMap, "green", "red")
}

// adjacent runs the 26-connectivity test. It computes, with three
// separable axis passes, how many code2 voxels lie in the closed 3x3x3
// neighborhood of every position, then looks for a code1 voxel whose
// count exceeds its own code2 membership. Subtracting the center keeps
// a voxel from counting as its own neighbor when code1 == code2; for
// distinct codes the masks are disjoint and the subtraction changes
// nothing, which matches a plain dilation-and-overlap formulation.
// Time and extra memory are both linear in the volume size.
func adjacent(data []int32, w, h, d int, code1, code2 int32) bool {
	any1, any2 := false, false
	for _, v := range data {
		if v == code1 {
			any1 = true
		}
		if v == code2 {
			any2 = true
		}
		if any1 && any2 {
			break
		}
	}
	// If either category has no voxels, nothing can touch.
	if !any1 || !any2 {
		return false
	}

	counts := make([]uint8, len(data))
	for i, v := range data {
		if v == code2 {
			counts[i] = 1
		}
	}

	max := w
	if h > max {
		max = h
	}
	if d > max {
		max = d
	}
	line := make([]uint8, max)

	// Box-sum along Z: lines are contiguous. Maximum per-voxel count
	// after all three passes is 27, so uint8 never overflows.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			boxLine(counts, (x*h+y)*d, 1, d, line)
		}
	}
	// Box-sum along Y: stride d, one line per (x, z).
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			boxLine(counts, x*h*d+z, d, h, line)
		}
	}
	// Box-sum along X: stride h*d, one line per (y, z).
	for y := 0; y < h; y++ {
		for z := 0; z < d; z++ {
			boxLine(counts, y*d+z, h*d, w, line)
		}
	}

	for i, v := range data {
		if v != code1 {
			continue
		}
		c := counts[i]
		if v == code2 {
			c-- // a voxel is not its own neighbor
		}
		if c > 0 {
			return true
		}
	}
	return false
}

// boxLine replaces each element of a strided line with the sum of
// itself and its two in-line neighbors, clipping at the ends.
func boxLine(buf []uint8, base, stride, n int, scratch []uint8) {
	for i := 0; i < n; i++ {
		s := buf[base+i*stride]
		if i > 0 {
			s += buf[base+(i-1)*stride]
		}
		if i < n-1 {
			s += buf[base+(i+1)*stride]
		}
		scratch[i] = s
	}
	for i := 0; i < n; i++ {
		buf[base+i*stride] = scratch[i]
	}
}
