package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"voxadjacency/pkg/imaging"
	"voxadjacency/pkg/volio"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "YAML volume document to analyze (omit to run the built-in demo scenes)")
	catA := flag.String("a", "green", "First category name")
	catB := flag.String("b", "red", "Second category name")
	flag.Parse()

	fmt.Println("================================")
	fmt.Println("CATEGORICAL 3D VOLUME ADJACENCY ANALYSIS")
	fmt.Println("26-connectivity contact checks between named categories")
	fmt.Println("================================")

	if *inputFile != "" {
		img, err := volio.Load(*inputFile)
		if err != nil {
			log.Fatalf("Failed to load volume: %v", err)
		}
		fmt.Printf("\nLoaded volume from: %s\n", *inputFile)
		report(img, *catA, *catB)
		return
	}

	runDemoScenes(*catA, *catB)
}

// report prints a volume summary and the adjacency verdict for one
// category pair.
func report(img *imaging.CategoricalImage, catA, catB string) {
	w, h, d := img.Shape()
	fmt.Printf("Shape: %dx%dx%d (%d voxels)\n", w, h, d, img.Len())

	stats := img.CategoryStats()
	names := img.Categories()
	sort.Strings(names)
	fmt.Println("Category statistics:")
	for _, name := range names {
		fmt.Printf("  %-12s %d voxels\n", name, stats[name])
	}
	fmt.Printf("Distribution entropy: %.3f bits\n", img.DistributionEntropy())

	touching, err := img.Adjacent(catA, catB)
	if err != nil {
		log.Fatalf("Adjacency check failed: %v", err)
	}
	fmt.Printf("Do %s and %s touch? %v\n", catA, catB, touching)
}

// runDemoScenes reproduces a handful of instructive volumes: mixed
// touching regions, separated corners, a pure 3D diagonal contact and
// an organ-pair query.
func runDemoScenes(catA, catB string) {
	fmt.Println("\nScene 1: mixed regions with green and red in contact")
	fmt.Println("--------------------------------")
	scene1 := mustFromLabels([][][]string{
		{
			{"green", "red", "blue"},
			{"green", "blue", "red"},
			{"blue", "blue", "red"},
		},
		{
			{"background", "background", "background"},
			{"background", "green", "background"},
			{"background", "background", "background"},
		},
		{
			{"background", "background", "background"},
			{"background", "background", "background"},
			{"red", "red", "red"},
		},
	})
	report(scene1, catA, catB)

	fmt.Println("\nScene 2: green and red in opposite corners")
	fmt.Println("--------------------------------")
	scene2 := mustFromLabels([][][]string{
		{
			{"green", "background", "red"},
			{"background", "background", "background"},
			{"background", "background", "background"},
		},
		{
			{"background", "background", "background"},
			{"background", "background", "background"},
			{"background", "background", "background"},
		},
	})
	report(scene2, catA, catB)

	fmt.Println("\nScene 3: contact only along a 3D diagonal")
	fmt.Println("--------------------------------")
	scene3 := mustFromLabels([][][]string{
		{
			{"green", "background"},
			{"background", "background"},
		},
		{
			{"background", "red"},
			{"background", "background"},
		},
	})
	report(scene3, catA, catB)

	fmt.Println("\nScene 4: organ labels with arbitrary pair queries")
	fmt.Println("--------------------------------")
	scene4 := mustFromLabels([][][]string{
		{
			{"liver", "kidney", "background"},
			{"liver", "background", "kidney"},
		},
		{
			{"spleen", "background", "background"},
			{"background", "background", "background"},
		},
	})
	for _, pair := range [][2]string{{"liver", "kidney"}, {"liver", "spleen"}, {"kidney", "spleen"}} {
		touching, err := scene4.Adjacent(pair[0], pair[1])
		if err != nil {
			log.Fatalf("Adjacency check failed: %v", err)
		}
		fmt.Printf("Do %s and %s touch? %v\n", pair[0], pair[1], touching)
	}
}

func mustFromLabels(cells [][][]string) *imaging.CategoricalImage {
	labels, err := imaging.NewLabelVolume(cells)
	if err != nil {
		log.Fatalf("Failed to build demo volume: %v", err)
	}
	img, err := imaging.FromLabels(labels)
	if err != nil {
		log.Fatalf("Failed to build demo image: %v", err)
	}
	return img
}
