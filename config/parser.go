package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is implemented by the configuration of an application
type Config interface {
	// Use is the one-line usage message of the application
	Use() string

	// EnvPrefix is the prefix of the environment variables
	// that can override the application flags
	EnvPrefix() string

	// Binders that declare and read the application flags
	Binders() []Binder
}

// Parser reads the configuration of an application from the
// command line flags, the environment and a configuration file
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse the provided arguments, which must not include the
// program name, and configure all the binders
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the positional arguments left after parsing
func (p *Parser) Args() []string {
	return p.Flags().Args()
}

// Flags returns the flags declared by the binders
func (p *Parser) Flags() *pflag.FlagSet {
	return p.cmd.PersistentFlags()
}

// SetOutput sets the destination of the usage and error
// messages of the application
func (p *Parser) SetOutput(w io.Writer) {
	p.cmd.SetOut(w)
	p.cmd.SetErr(w)
}

// Usage prints the usage of the application
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates the parser for config, declaring the flags of
// all its binders
func Generate(config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: config.Use()}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
