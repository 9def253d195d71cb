// Command matrix validates a numeric CSV grid with a validiter pipeline:
// every field must parse, every row must be non-empty and non-negative,
// and all rows must have the same length.
//
// Run:
//
//	go run ./_example/matrix
package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Yehuda-blip/validiter"
)

const goodCSV = `1.2, 3.0
4.2, 0.5`

const raggedCSV = `1.0
2.0, 3.0`

func parseRow(line string) ([]float64, error) {
	row := validiter.TryMap(slices.Values(strings.Split(line, ",")), func(field string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(field), 64)
	})
	row = validiter.AtLeast(row, 1)
	row = validiter.Ensure(row, func(v float64) bool { return v >= 0 })
	return validiter.Collect(row)
}

func collectMatrix(csv string) ([][]float64, error) {
	rows := func(yield func([]float64, error) bool) {
		for _, line := range strings.Split(csv, "\n") {
			if !yield(parseRow(line)) {
				return
			}
		}
	}

	matrix := validiter.LiftErrs(rows)
	matrix = validiter.AtLeast(matrix, 1)
	matrix = validiter.ConstOver(matrix, func(row []float64) int { return len(row) })
	return validiter.Collect(matrix)
}

func main() {
	mat, err := collectMatrix(goodCSV)
	fmt.Printf("good grid:   %v (err: %v)\n", mat, err)

	mat, err = collectMatrix(raggedCSV)
	fmt.Printf("ragged grid: %v (err: %v)\n", mat, err)
}
