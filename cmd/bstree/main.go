// Command bstree builds binary search trees from lists of values
// and reports their traversals and shape.
//
// Values are read from the --values flag and from each file passed
// as an argument, or from stdin when there are none. Each source
// builds its own tree; sources are processed in parallel and their
// reports are written in the order they were provided.
package main

import (
	"context"
	"io"
	"os"

	"github.com/perkolatte/Binary-Search-Tree-Exercises/concurrent"
	"github.com/perkolatte/Binary-Search-Tree-Exercises/config"
	errs "github.com/perkolatte/Binary-Search-Tree-Exercises/errors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

func logError(entry *logrus.Entry, err error, msg string) {
	var e *errs.Error
	if errors.As(err, &e) {
		entry.WithFields(e.Fields()).Error(msg)
		return
	}

	entry.WithError(err).Error(msg)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cfg := &Config{}
	parser, err := config.Generate(cfg)
	if err != nil {
		logError(logrus.NewEntry(logger), err, "failed to generate configuration")
		return exitFailure
	}
	parser.SetOutput(stderr)

	if err := parser.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_ = parser.Usage()
			return exitOK
		}

		logError(logrus.NewEntry(logger), err, "invalid configuration")
		return exitBadUsage
	}

	opts := cfg.Options
	logger.SetLevel(opts.LogLevel)

	inputs := collectInputs(opts, parser.Args(), stdin)
	b := builder{opts: opts}
	suppliers := make([]concurrent.Supplier[*Report], 0, len(inputs))
	for _, in := range inputs {
		in := in
		suppliers = append(suppliers, concurrent.SupplierFunc[*Report](func() (*Report, error) {
			tokens, err := in.Tokens()
			if err != nil {
				return nil, err
			}

			logger.WithFields(logrus.Fields{
				"input":  in.Name,
				"values": len(tokens),
			}).Debug("building tree")
			return b.Build(in.Name, tokens)
		}))
	}

	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: opts.Concurrency,
	})

	status := exitOK
	for i, res := range results {
		entry := logger.WithField("input", inputs[i].Name)
		if res.Err() != nil {
			logError(entry, res.Err(), "failed to build tree")
			status = exitFailure
			continue
		}

		report := res.Value()
		if err := report.Write(stdout); err != nil {
			logError(entry, err, "failed to write report")
			return exitFailure
		}

		entry.WithFields(logrus.Fields{
			"len":      report.Len,
			"height":   report.Height,
			"balanced": report.Balanced,
			"removed":  len(report.Removed),
			"missing":  len(report.Missing),
		}).Info("tree built")
	}

	return status
}
