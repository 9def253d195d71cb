// Command errkinds shows consuming every outcome of a pipeline and
// branching on the failure kind, instead of stopping at the first
// violation.
//
// Run:
//
//	go run ./_example/errkinds
package main

import (
	"fmt"
	"slices"

	"github.com/Yehuda-blip/validiter"
)

func main() {
	readings := []int{4, 7, 12, 4, 4, -2, 4, 4}

	seq := validiter.Validate(slices.Values(readings))
	seq = validiter.Between(seq, 0, 10)
	seq = validiter.ConstOver(seq, func(v int) int { return v })
	seq = validiter.AtMost(seq, 4)

	for res := range seq {
		err := res.Err()
		if err == nil {
			fmt.Println("ok:", res.Value())
			continue
		}
		switch err.Kind {
		case validiter.KindOutOfBounds:
			fmt.Println("out of range:", err.Value)
		case validiter.KindBrokenConstant:
			fmt.Printf("drifted: %v (expected key %v)\n", err.Value, err.Expected)
		case validiter.KindTooMany:
			fmt.Println("over budget:", err.Value)
		default:
			fmt.Println("failed:", err)
		}
	}
}
