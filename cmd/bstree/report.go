package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/perkolatte/Binary-Search-Tree-Exercises/container/tree"
	errs "github.com/perkolatte/Binary-Search-Tree-Exercises/errors"
	"golang.org/x/exp/constraints"
)

// Report describes the tree built from an input
type Report struct {
	Name         string
	Len          int
	Height       int
	InOrder      []string
	PreOrder     []string
	PostOrder    []string
	BreadthFirst []string
	Balanced     bool
	Min          string
	Max          string

	// SecondHighest is empty when HasSecondHighest is false
	SecondHighest    string
	HasSecondHighest bool

	// Removed and Missing split the values requested for removal
	// into those found in the tree and those that were not
	Removed []string
	Missing []string

	// After is the in order sequence once values were removed
	After []string
}

// Write the report in a human readable format
func (r *Report) Write(w io.Writer) error {
	secondHighest := "none"
	if r.HasSecondHighest {
		secondHighest = r.SecondHighest
	}

	lines := [][2]string{
		{"len", strconv.Itoa(r.Len)},
		{"height", strconv.Itoa(r.Height)},
		{"in-order", strings.Join(r.InOrder, " ")},
		{"pre-order", strings.Join(r.PreOrder, " ")},
		{"post-order", strings.Join(r.PostOrder, " ")},
		{"breadth-first", strings.Join(r.BreadthFirst, " ")},
		{"balanced", strconv.FormatBool(r.Balanced)},
		{"min", r.Min},
		{"max", r.Max},
		{"second-highest", secondHighest},
	}

	if len(r.Removed) > 0 || len(r.Missing) > 0 {
		lines = append(lines,
			[2]string{"removed", strings.Join(r.Removed, " ")},
			[2]string{"missing", strings.Join(r.Missing, " ")},
			[2]string{"after-removal", strings.Join(r.After, " ")},
		)
	}

	if _, err := fmt.Fprintf(w, "== %s\n", r.Name); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-15s %s\n", line[0]+":", line[1]); err != nil {
			return err
		}
	}

	return nil
}

// builder creates the report of an input
type builder struct {
	opts Options
}

// Build parses the tokens of the input and the values to
// remove into the domain selected by the options and builds
// the report of the resulting tree
func (b builder) Build(name string, tokens []string) (*Report, error) {
	if b.opts.Strings {
		return buildReport(name, tokens, b.opts.Remove, b.opts.Recursive, parseString)
	}

	return buildReport(name, tokens, b.opts.Remove, b.opts.Recursive, parseInt)
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseValues[T constraints.Ordered](
	tokens []string,
	parse func(string) (T, error),
) ([]T, error) {
	values := make([]T, 0, len(tokens))
	for i, token := range tokens {
		v, err := parse(token)
		if err != nil {
			return nil, errs.Wrap(err, errs.ErrorCodeInvalidValue,
				"invalid value %q at position %d", token, i)
		}
		values = append(values, v)
	}

	return values, nil
}

func formatValues[T constraints.Ordered](values []T) []string {
	return pie.Map(values, func(v T) string {
		return fmt.Sprint(v)
	})
}

func buildReport[T constraints.Ordered](
	name string,
	tokens []string,
	removeTokens []string,
	recursive bool,
	parse func(string) (T, error),
) (*Report, error) {
	values, err := parseValues(tokens, parse)
	if err != nil {
		return nil, err
	}

	remove, err := parseValues(removeTokens, parse)
	if err != nil {
		return nil, err
	}

	t := tree.New[T]()
	for _, v := range values {
		if recursive {
			t.InsertRecursive(v)
		} else {
			t.Insert(v)
		}
	}

	report := &Report{
		Name:         name,
		Len:          t.Len(),
		Height:       t.Height(),
		InOrder:      formatValues(t.InOrder()),
		PreOrder:     formatValues(t.PreOrder()),
		PostOrder:    formatValues(t.PostOrder()),
		BreadthFirst: formatValues(t.BreadthFirst()),
		Balanced:     t.IsBalanced(),
	}

	if !t.Empty() {
		report.Min = fmt.Sprint(t.Min().Value())
		report.Max = fmt.Sprint(t.Max().Value())
	}

	if v, ok := t.SecondHighest(); ok {
		report.SecondHighest = fmt.Sprint(v)
		report.HasSecondHighest = true
	}

	var removed, missing []T
	for _, v := range remove {
		if r, ok := t.Remove(v); ok {
			removed = append(removed, r)
		} else {
			missing = append(missing, v)
		}
	}

	report.Removed = formatValues(removed)
	report.Missing = formatValues(missing)
	report.After = formatValues(t.InOrder())

	return report, nil
}
