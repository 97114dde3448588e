package main

import (
	"io"
	"os"
	"strings"

	errs "github.com/perkolatte/Binary-Search-Tree-Exercises/errors"
)

// input is a named source of values
type input struct {
	Name string
	read func() ([]string, error)
}

// Tokens returns the values of the input
func (in input) Tokens() ([]string, error) {
	return in.read()
}

func valuesInput(values []string) input {
	return input{
		Name: "values",
		read: func() ([]string, error) {
			return values, nil
		},
	}
}

// fileInput reads whitespace separated values from a file
func fileInput(path string) input {
	return input{
		Name: path,
		read: func() ([]string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, errs.Wrap(err, errs.ErrorCodeUnreadableInput, "failed to read %s", path)
			}

			return strings.Fields(string(data)), nil
		},
	}
}

// readerInput reads whitespace separated values from r
func readerInput(name string, r io.Reader) input {
	return input{
		Name: name,
		read: func() ([]string, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, errs.Wrap(err, errs.ErrorCodeUnreadableInput, "failed to read %s", name)
			}

			return strings.Fields(string(data)), nil
		},
	}
}

// collectInputs returns the inputs to process. The values in the
// options and each of the files are separate inputs. When there
// are none, values are read from stdin
func collectInputs(opts Options, files []string, stdin io.Reader) []input {
	var inputs []input
	if len(opts.Values) > 0 {
		inputs = append(inputs, valuesInput(opts.Values))
	}

	for _, file := range files {
		inputs = append(inputs, fileInput(file))
	}

	if len(inputs) == 0 {
		inputs = append(inputs, readerInput("stdin", stdin))
	}

	return inputs
}
