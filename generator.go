package oneaway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Generator Options
type Options struct {
	// list of words to generate off-by-one variants for
	Words []string
	// named operator preset to apply (common, mix)
	// ignored when Operators is set, defaults to common
	Preset string
	// explicit operator list (dropped, swapped, casing, horizontal, vertical)
	// overrides Preset when non-empty
	Operators []string
	// Limits output results (0 = no limit)
	Limit int
	// Domains when true treats every input as a DNS name and only
	// permutes its leftmost label, keeping the suffix intact
	Domains bool
}

// Generator produces single-edit typo variants for a set of input words
type Generator struct {
	Options      *Options
	operators    []Operator
	variantCount int
	Inputs       []*Input // all processed inputs (domain mode only)
}

// New creates and returns new generator instance from options
func New(opts *Options) (*Generator, error) {
	if len(opts.Words) == 0 {
		return nil, fmt.Errorf("no input provided to calculate variants")
	}
	// purge duplicate input words if any
	words := sliceutil.Dedupe(opts.Words)
	if len(words) != len(opts.Words) {
		gologger.Warning().Msgf("%v duplicate words found in input. purging them..", len(opts.Words)-len(words))
		opts.Words = words
	}
	var operators []Operator
	var err error
	if len(opts.Operators) > 0 {
		operators, err = ResolveOperators(opts.Operators)
	} else {
		preset := opts.Preset
		if preset == "" {
			preset = "common"
		}
		operators, err = ResolvePreset(preset)
	}
	if err != nil {
		return nil, err
	}
	g := &Generator{
		Options:   opts,
		operators: operators,
	}
	if opts.Domains {
		if err := g.prepareInputs(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Execute calculates variants of all words using the configured operators
// and writes them to a string channel. Each word's variants are already
// deduplicated and ordered; duplicates across different input words are the
// caller's concern (see ExecuteWithWriter).
func (g *Generator) Execute(ctx context.Context) <-chan string {
	results := make(chan string, len(g.operators))
	go func() {
		defer close(results)
		if g.Options.Domains {
			for _, in := range g.Inputs {
				for _, variant := range Multiple(in.Base(), g.operators...) {
					if variant == "" {
						// a dropped single-letter label leaves no hostname
						continue
					}
					select {
					case <-ctx.Done():
						return
					case results <- in.Assemble(variant):
					}
				}
			}
			return
		}
		for _, word := range g.Options.Words {
			for _, variant := range Multiple(word, g.operators...) {
				select {
				case <-ctx.Done():
					return
				case results <- variant:
				}
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Generator and writes results directly to type
// that implements io.Writer interface. Results are deduplicated across all
// input words in first-seen order before writing.
func (g *Generator) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("oneaway", "writer destination cannot be nil")
	}
	d := NewDedupe(g.Execute(context.TODO()))
	d.Drain()
	counter := 0
	for value := range d.GetResults() {
		if g.Options.Limit > 0 && counter == g.Options.Limit {
			return nil
		}
		if _, err := writer.Write([]byte(value + "\n")); err != nil {
			return err
		}
		counter++
	}
	return nil
}

// EstimateCount estimates the number of variants that will be created
// (including duplicates across words) and saves it to be used later on
// with the VariantCount method
func (g *Generator) EstimateCount() int {
	counter := 0
	for range g.Execute(context.Background()) {
		counter++
	}
	g.variantCount = counter
	return counter
}

// VariantCount returns total estimated variant count
func (g *Generator) VariantCount() int {
	if g.variantCount == 0 {
		g.EstimateCount()
	}
	return g.variantCount
}

// VariantsFor returns the deduplicated, ordered variant list for a single
// word using the generator's operator set. In domain mode the word is parsed
// and only its leftmost label is permuted, with variants rejoined to the
// original suffix.
func (g *Generator) VariantsFor(word string) ([]string, error) {
	if !g.Options.Domains {
		return Multiple(word, g.operators...), nil
	}
	in, err := NewInput(word)
	if err != nil {
		return nil, err
	}
	var variants []string
	for _, variant := range Multiple(in.Base(), g.operators...) {
		if variant == "" {
			continue
		}
		variants = append(variants, in.Assemble(variant))
	}
	return variants, nil
}

// prepares domain inputs, collecting parse failures
func (g *Generator) prepareInputs() error {
	errs := []string{}
	allInputs := []*Input{}
	for _, v := range g.Options.Words {
		i, err := NewInput(v)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		allInputs = append(allInputs, i)
	}
	g.Inputs = allInputs
	if len(errs) > 0 {
		return errorutil.NewWithTag("oneaway", "%v", strings.Join(errs, " : "))
	}
	return nil
}
