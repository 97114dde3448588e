package main

import (
	"runtime"
	"strings"

	"github.com/perkolatte/Binary-Search-Tree-Exercises/config"
	errs "github.com/perkolatte/Binary-Search-Tree-Exercises/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Options of the bstree command
type Options struct {
	// Values to insert into the tree, in insertion order
	Values []string

	// Remove are the values removed from each tree once all
	// the values of an input have been inserted
	Remove []string

	// Strings orders the values lexicographically instead
	// of as 64 bit integers
	Strings bool

	// Recursive inserts the values by recursive descent
	Recursive bool

	// Concurrency is the number of inputs processed in parallel
	Concurrency int

	// LogLevel is the minimum level of the messages logged
	LogLevel logrus.Level
}

// Bind implementation of config.Binder for Options
func (o *Options) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.StringSlice("values", nil, "comma separated values to insert into the tree")
	flags.StringSlice("remove", nil, "comma separated values to remove from the tree after inserting")
	flags.Bool("strings", false, "order values lexicographically instead of as integers")
	flags.Bool("recursive", false, "insert values by recursive descent")
	flags.Int("concurrency", runtime.NumCPU(), "number of inputs processed in parallel")
	flags.String("log-level", logrus.InfoLevel.String(), "minimum level of the log messages")
	return nil
}

// Configure implementation of config.Binder for Options
func (o *Options) Configure(v *viper.Viper) error {
	o.Values = splitValues(v.GetStringSlice("values"))
	o.Remove = splitValues(v.GetStringSlice("remove"))
	o.Strings = v.GetBool("strings")
	o.Recursive = v.GetBool("recursive")

	o.Concurrency = v.GetInt("concurrency")
	if o.Concurrency <= 0 {
		return errs.New(errs.ErrorCodeInvalidConfig,
			"concurrency must be positive, got %d", o.Concurrency)
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errs.Wrap(err, errs.ErrorCodeInvalidConfig, "invalid log level")
	}
	o.LogLevel = level

	return nil
}

// splitValues flattens values that may still hold comma
// separated lists, as is the case when they are read from
// the environment or a config file
func splitValues(values []string) []string {
	var res []string
	for _, value := range values {
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); len(v) > 0 {
				res = append(res, v)
			}
		}
	}

	return res
}

// Config of the bstree command
type Config struct {
	Options Options
}

// Use implementation of config.Config
func (c *Config) Use() string {
	return "bstree [flags] [file...]"
}

// EnvPrefix implementation of config.Config
func (c *Config) EnvPrefix() string {
	return "bstree"
}

// Binders implementation of config.Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Options}
}
