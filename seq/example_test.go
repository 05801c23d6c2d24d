package seq_test

import (
	"fmt"

	"github.com/joschaschmiedt/syncopy/seq"
)

// ExampleSequence_Index shows that positions are relative to the cursor.
func ExampleSequence_Index() {
	s, _ := seq.New(seq.FromSlice([]string{"a", "b", "c", "d"}), 4)

	first, _ := s.Index(1)
	second, _ := s.Index(0)
	fmt.Println(s, first, second)

	// Output:
	// 4 element iterable b c
}

// ExampleIndexed_At shows absolute, repeatable access.
func ExampleIndexed_At() {
	x, _ := seq.NewIndexed(4, func(i int) (string, error) {
		return string(rune('a' + i)), nil
	})

	first, _ := x.At(1)
	again, _ := x.At(1)
	fmt.Println(first, again)

	// Output:
	// b b
}
