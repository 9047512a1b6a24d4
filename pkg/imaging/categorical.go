package imaging

import (
	"sort"
)

// CategoricalImage is an immutable 3D image whose voxels hold
// categorical values. Category names are the public currency of the
// type; the integer encoding is an internal detail fixed by the order
// of the declared category list. The grid is defensively copied on
// construction and on every accessor that exposes voxel data, so a
// constructed image can be shared read-only across goroutines.
type CategoricalImage struct {
	data                 []int32
	width, height, depth int
	categories           []string
	codes                map[string]int
}

// NewCategoricalImage builds an image from an integer-coded volume and
// an ordered list of category names. Every code in the volume must lie
// in [0, len(categories)); the category names must be unique.
func NewCategoricalImage(vol *Volume, categories []string) (*CategoricalImage, error) {
	if vol == nil || len(vol.Data) == 0 {
		return nil, &ShapeError{Detail: "volume cannot be empty"}
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	codes := make(map[string]int, len(categories))
	for i, name := range categories {
		if _, seen := codes[name]; seen {
			return nil, &DuplicateCategoryError{Name: name}
		}
		codes[name] = i
	}

	n := int32(len(categories))
	for _, v := range vol.Data {
		if v < 0 || v >= n {
			return nil, &CodeRangeError{Code: v, Count: len(categories)}
		}
	}

	data := make([]int32, len(vol.Data))
	copy(data, vol.Data)
	names := make([]string, len(categories))
	copy(names, categories)

	return &CategoricalImage{
		data:       data,
		width:      vol.Width,
		height:     vol.Height,
		depth:      vol.Depth,
		categories: names,
		codes:      codes,
	}, nil
}

// FromLabels builds an image from a grid of category name strings. The
// category list is derived as the lexicographically sorted distinct
// labels, so equivalent label volumes always produce the same encoding.
func FromLabels(labels *LabelVolume) (*CategoricalImage, error) {
	if labels == nil || len(labels.Labels) == 0 {
		return nil, &ShapeError{Detail: "volume cannot be empty"}
	}

	seen := make(map[string]bool)
	var categories []string
	for _, l := range labels.Labels {
		if !seen[l] {
			seen[l] = true
			categories = append(categories, l)
		}
	}
	sort.Strings(categories)

	codes := make(map[string]int32, len(categories))
	for i, name := range categories {
		codes[name] = int32(i)
	}

	data := make([]int32, len(labels.Labels))
	for i, l := range labels.Labels {
		data[i] = codes[l]
	}

	vol := &Volume{Data: data, Width: labels.Width, Height: labels.Height, Depth: labels.Depth}
	return NewCategoricalImage(vol, categories)
}

// Shape returns the grid extents along X, Y and Z.
func (img *CategoricalImage) Shape() (int, int, int) {
	return img.width, img.height, img.depth
}

// Len returns the total number of voxels.
func (img *CategoricalImage) Len() int {
	return len(img.data)
}

// Categories returns the declared category names in encoding order.
func (img *CategoricalImage) Categories() []string {
	names := make([]string, len(img.categories))
	copy(names, img.categories)
	return names
}

// HasCategory reports whether a name appears in the declared category
// list. It never errors; a declared category with zero voxels still
// counts as present.
func (img *CategoricalImage) HasCategory(name string) bool {
	_, ok := img.codes[name]
	return ok
}

// Code returns the integer code of a declared category.
func (img *CategoricalImage) Code(name string) (int, error) {
	code, ok := img.codes[name]
	if !ok {
		return 0, &UnknownCategoryError{Name: name, Available: img.Categories()}
	}
	return code, nil
}

// At returns the category name of the voxel at (x, y, z).
func (img *CategoricalImage) At(x, y, z int) string {
	return img.categories[img.data[(x*img.height+y)*img.depth+z]]
}

// Data returns a copy of the integer-coded volume.
func (img *CategoricalImage) Data() *Volume {
	data := make([]int32, len(img.data))
	copy(data, img.data)
	return &Volume{Data: data, Width: img.width, Height: img.height, Depth: img.depth}
}

// GetMask returns a boolean grid marking the voxels of one category.
func (img *CategoricalImage) GetMask(name string) (*Mask, error) {
	code, err := img.Code(name)
	if err != nil {
		return nil, err
	}
	bits := make([]bool, len(img.data))
	for i, v := range img.data {
		bits[i] = v == int32(code)
	}
	return &Mask{bits: bits, width: img.width, height: img.height, depth: img.depth}, nil
}

// CountVoxels returns the number of voxels belonging to a category.
// A declared category with no voxels counts zero.
func (img *CategoricalImage) CountVoxels(name string) (int, error) {
	code, err := img.Code(name)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range img.data {
		if v == int32(code) {
			n++
		}
	}
	return n, nil
}

// Labels reconstructs the grid of category name strings. The result
// round-trips with FromLabels when the image was built that way.
func (img *CategoricalImage) Labels() *LabelVolume {
	labels := make([]string, len(img.data))
	for i, v := range img.data {
		labels[i] = img.categories[v]
	}
	return &LabelVolume{Labels: labels, Width: img.width, Height: img.height, Depth: img.depth}
}

// Equal reports whether two images have the same shape, the same
// category list in the same order, and the same code at every voxel.
func (img *CategoricalImage) Equal(o *CategoricalImage) bool {
	if o == nil || img.width != o.width || img.height != o.height || img.depth != o.depth {
		return false
	}
	if len(img.categories) != len(o.categories) {
		return false
	}
	for i, name := range img.categories {
		if o.categories[i] != name {
			return false
		}
	}
	for i, v := range img.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
