package chunked_test

import (
	"fmt"

	"github.com/joschaschmiedt/syncopy/chunked"
	"github.com/joschaschmiedt/syncopy/matrix"
)

// ExampleVirtualMatrix_Get stitches two chunks and shows when a query copies.
func ExampleVirtualMatrix_Get() {
	a, _ := matrix.NewDenseFrom(3, 2, []int16{0, 1, 2, 3, 4, 5})
	b, _ := matrix.NewDenseFrom(2, 2, []int16{6, 7, 8, 9})
	vm, _ := chunked.New([]chunked.Chunk[int16]{a, b})

	m, n := vm.Shape()
	fmt.Printf("shape %dx%d\n", m, n)

	inside, _ := vm.Get(chunked.Range(0, 2), chunked.All())
	across, _ := vm.Get(chunked.Range(2, 4), chunked.All())
	fmt.Println(inside.Ownership(), across.Ownership())
	fmt.Print(across)

	_, err := vm.Get(chunked.Range(0, 6), chunked.All())
	fmt.Println(err)

	// Output:
	// shape 5x2
	// borrowed owned
	// [4, 5]
	// [6, 7]
	// row: expected value between 0 and 5, got [0, 6): matrix: index out of range
}
