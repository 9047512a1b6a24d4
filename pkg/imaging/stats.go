package imaging

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CategoryStats returns the voxel count of every declared category,
// including categories with no voxels. The counts sum to Len().
func (img *CategoricalImage) CategoryStats() map[string]int {
	counts := make(map[string]int, len(img.categories))
	for _, name := range img.categories {
		counts[name] = 0
	}
	for _, v := range img.data {
		counts[img.categories[v]]++
	}
	return counts
}

// CategoryFractions returns each declared category's share of the
// volume. The fractions sum to 1.
func (img *CategoricalImage) CategoryFractions() map[string]float64 {
	total := float64(len(img.data))
	fractions := make(map[string]float64, len(img.categories))
	for name, count := range img.CategoryStats() {
		fractions[name] = float64(count) / total
	}
	return fractions
}

// DistributionEntropy returns the Shannon entropy, in bits, of the
// category distribution over the volume. A single-category volume has
// zero entropy; a uniform split over 2^k categories has k bits.
func (img *CategoricalImage) DistributionEntropy() float64 {
	p := make([]float64, len(img.categories))
	total := float64(len(img.data))
	for _, v := range img.data {
		p[v]++
	}
	for i := range p {
		p[i] /= total
	}
	return stat.Entropy(p) / math.Ln2
}
