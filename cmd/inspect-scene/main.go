package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chewxy/sexp"
)

// inspect-scene cross-checks a scene file against an independent
// S-expression library: useful when the scnsexp parser and a scene file
// disagree about structure.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect-scene <scene_file>")
		os.Exit(1)
	}

	filename := os.Args[1]

	file, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File size: %d bytes\n", len(data))

	sexps, err := sexp.ParseString(string(data))
	if err != nil {
		fmt.Printf("Error parsing s-expression: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Number of s-expressions: %d\n", len(sexps))

	for i, s := range sexps {
		fmt.Printf("sexp %d: type %T, leaf %v", i, s, s.IsLeaf())
		if !s.IsLeaf() {
			fmt.Printf(", elements %d", s.LeafCount())
		}
		fmt.Println()
	}
}
