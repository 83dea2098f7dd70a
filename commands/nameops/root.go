// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nameops

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nmcsuite/nameops/config"
	"github.com/nmcsuite/nameops/log"
	"github.com/nmcsuite/nameops/script"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger
var logger = log.NewLogger("nameops")

// root command
var cfgFile string

var cfg = &config.Config{Name: script.DefaultPolicy()}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nameops",
	Short: "Name-operation script command-line interface",
	Long: `nameops builds the raw scripts that encode on-chain name
registrations and derives the script-hash fingerprints used to query
history-index servers for a name.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nameops.yaml)")

	rootCmd.PersistentFlags().String("log-level", "info", "log level [debug|info|warn|error|fatal]")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().Int("commitment-len", script.DefaultCommitmentLen, "required commitment length in bytes")
	viper.BindPFlag("name.commitment_len", rootCmd.PersistentFlags().Lookup("commitment-len"))

	rootCmd.PersistentFlags().Int("salt-len", script.DefaultSaltLen, "required salt length in bytes")
	viper.BindPFlag("name.salt_len", rootCmd.PersistentFlags().Lookup("salt-len"))

	rootCmd.PersistentFlags().Int("max-name-len", script.DefaultMaxNameLen, "maximum name length in bytes")
	viper.BindPFlag("name.max_name_len", rootCmd.PersistentFlags().Lookup("max-name-len"))

	rootCmd.PersistentFlags().Int("max-value-len", script.DefaultMaxValueLen, "maximum value length in bytes")
	viper.BindPFlag("name.max_value_len", rootCmd.PersistentFlags().Lookup("max-value-len"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory or current directory with name ".nameops" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".nameops")
	}

	viper.SetEnvPrefix("nameops")
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "."))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfg = loaded

	log.Setup(&cfg.Log)
}

// newBuilder builds a script builder from the effective configuration.
func newBuilder() *script.Builder {
	return script.NewBuilderWith(script.DefaultTable(), cfg.Name)
}
