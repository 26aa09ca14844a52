// Command seqdemo walks through the sequence container operations, printing
// each intermediate result.
package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/geofduf/seq/sequence"
)

var (
	flagText   string
	flagSuffix string
	flagRepeat int
)

var rootCmd = &cobra.Command{
	Use:           "seqdemo",
	Short:         "Demonstrate the sequence container",
	Long:          "Builds a character sequence step by step: concatenation, append, repetition, upper-casing through both transform paths, and slicing.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&flagText, "text", "hello", "base text")
	rootCmd.Flags().StringVar(&flagSuffix, "suffix", " world", "text concatenated to the base")
	rootCmd.Flags().IntVar(&flagRepeat, "repeat", 2, "number of repetitions")
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := sequence.NewFromValues([]rune(flagText))
	s = s.Concat(sequence.NewFromValues([]rune(flagSuffix)))
	fmt.Printf("concat:    %c\n", s)

	s.Append('!')
	fmt.Printf("append:    %c\n", s)

	s = s.Repeat(flagRepeat)
	fmt.Printf("repeat:    %c\n", s)

	// Dynamic dispatch through the Transformer interface.
	s.Apply(sequence.TransformerFunc[rune](unicode.ToUpper))
	fmt.Printf("apply:     %c\n", s)

	// Static path, same mapping: a second pass is a no-op on already
	// upper-cased text.
	s.Modify(unicode.ToUpper)
	fmt.Printf("modify:    %c\n", s)

	sub, err := s.Slice(6, 5)
	if err != nil {
		return fmt.Errorf("slice: %w", err)
	}
	fmt.Printf("slice:     %c\n", sub)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqdemo:", err)
		os.Exit(1)
	}
}
