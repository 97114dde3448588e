package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder declares a set of flags and reads their values
// once they have been parsed
type Binder interface {
	// Bind declares the flags in the command
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the flags from v
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the --config flag. When set,
// the values in the file are used as defaults for any flag
// that is not set in the command line or the environment
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
