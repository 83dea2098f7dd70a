// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/nmcsuite/nameops/log"
	"github.com/nmcsuite/nameops/script"
	"github.com/spf13/viper"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

// GitBranch name of source code
var GitBranch string

////////////////////////////////////////////////////////////////

// Config is the configuration data structure for the nameops tool, read
// from a config file or parsed from the command line.
type Config struct {
	Log  log.Config    `mapstructure:"log"`
	Name script.Policy `mapstructure:"name"`
}

var format = `log: %v
name: %v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Log, c.Name)
}

// Load populates a Config from v, falling back to the default name policy
// for limits the file and flags leave unset.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{Name: script.DefaultPolicy()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
