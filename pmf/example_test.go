package pmf_test

import (
	"fmt"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
)

// ExampleSurface_RCToInternal truncates a coordinate to its grid index.
func ExampleSurface_RCToInternal() {
	s, _ := pmf.New[float64]([]float64{-1}, []float64{0.5}, []float64{1})
	p, _ := s.RCToInternal([]float64{0.3})
	rc, _ := s.InternalToRC(p)
	fmt.Println(s.Shape(), p, rc)
	// Output: [5] [2] [0]
}
