package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bind maps config keys onto flag names of fs.
func bind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}
