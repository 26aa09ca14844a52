package sequence_test

import (
	"fmt"
	"unicode"

	"github.com/geofduf/seq/sequence"
)

func ExampleSequence() {
	s := sequence.NewFromValues([]rune("hello"))
	s = s.Concat(sequence.NewFromValues([]rune(" world")))
	s.Append('!')

	s = s.Repeat(2)
	s.Apply(sequence.TransformerFunc[rune](unicode.ToUpper))

	sub, err := s.Slice(6, 5)
	if err != nil {
		fmt.Println("Slice failed:", err)
	}

	fmt.Printf("%c\n", s)
	fmt.Printf("%c\n", sub)
	// Output:
	// HELLO WORLD!HELLO WORLD!
	// WORLD
}

func ExampleSequence_Modify() {
	s := sequence.NewFromValues([]rune("hello"))
	s.Modify(unicode.ToUpper)

	fmt.Printf("%c\n", s)
	// Output: HELLO
}

func ExampleConvert() {
	wide := sequence.NewFromValues([]rune("abc"))
	narrow := sequence.Convert(wide, func(r rune) byte { return byte(r) })

	fmt.Println(narrow.Len(), "elements")
	fmt.Printf("%c\n", narrow)
	// Output:
	// 3 elements
	// abc
}
