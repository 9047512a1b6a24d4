// Package volio reads and writes categorical volumes as YAML
// documents. It is the loading boundary in front of the imaging core:
// a document carries the voxel grid plus its category metadata, and
// loading hands the core a validated CategoricalImage.
package volio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"voxadjacency/pkg/imaging"
)

// Document is the YAML form of a categorical volume. Cells are listed
// as X slices of Y rows of Z values. With no categories key, each cell
// is a category label and the encoding is derived on load; with one,
// each cell is a decimal code into the listed categories.
//
//	categories: [background, green, red]
//	cells:
//	  - - [1, 2, 0]
type Document struct {
	// Categories fixes the encoding order; optional
	Categories []string `yaml:"categories,omitempty"`

	// Cells is the voxel grid, cells[x][y][z]
	Cells [][][]string `yaml:"cells"`
}

// Load reads a YAML volume document from disk and builds the image.
func Load(path string) (*imaging.CategoricalImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading volume file: %w", err)
	}
	return Parse(data)
}

// Parse builds the image from the YAML text of a volume document.
func Parse(data []byte) (*imaging.CategoricalImage, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing volume file: %w", err)
	}
	return doc.Image()
}

// Image builds a CategoricalImage from the document. Grid and category
// failures surface the imaging package's typed errors unchanged.
func (doc *Document) Image() (*imaging.CategoricalImage, error) {
	if len(doc.Categories) == 0 {
		labels, err := imaging.NewLabelVolume(doc.Cells)
		if err != nil {
			return nil, err
		}
		return imaging.FromLabels(labels)
	}

	cells := make([][][]int, len(doc.Cells))
	for x, plane := range doc.Cells {
		cells[x] = make([][]int, len(plane))
		for y, row := range plane {
			cells[x][y] = make([]int, len(row))
			for z, cell := range row {
				code, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("invalid voxel code %q at x=%d y=%d z=%d: %w", cell, x, y, z, err)
				}
				cells[x][y][z] = code
			}
		}
	}
	vol, err := imaging.NewVolume(cells)
	if err != nil {
		return nil, err
	}
	return imaging.NewCategoricalImage(vol, doc.Categories)
}

// FromImage captures an image as a document in label form, which needs
// no categories key and survives re-encoding on load.
func FromImage(img *imaging.CategoricalImage) *Document {
	labels := img.Labels()
	w, h, d := labels.Shape()

	cells := make([][][]string, w)
	for x := 0; x < w; x++ {
		cells[x] = make([][]string, h)
		for y := 0; y < h; y++ {
			cells[x][y] = make([]string, d)
			for z := 0; z < d; z++ {
				cells[x][y][z] = labels.At(x, y, z)
			}
		}
	}
	return &Document{Cells: cells}
}

// Save writes an image to disk as a label-form YAML document, creating
// the parent directory if needed.
func Save(path string, img *imaging.CategoricalImage) error {
	data, err := yaml.Marshal(FromImage(img))
	if err != nil {
		return fmt.Errorf("error marshaling volume: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating volume directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing volume file: %w", err)
	}
	return nil
}
