/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/vardbpkg/pkg/config"
	"github.com/rancher-sandbox/vardbpkg/pkg/constants"
	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
	"github.com/rancher-sandbox/vardbpkg/pkg/utils"
)

// bindGivenFlags binds to viper only passed flags, ignoring any non provided flag
func bindGivenFlags(vp *viper.Viper, flagSet *pflag.FlagSet) {
	if flagSet != nil {
		flagSet.VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = vp.BindPFlag(f.Name, f)
			}
		})
	}
}

// loadEnvFile exports the variables of the env file in the config dir,
// without overriding the ones already set in the environment
func loadEnvFile(fs v1.FS, configDir string) error {
	envFile := filepath.Join(configDir, constants.EnvFile)
	if exists, _ := utils.Exists(fs, envFile); !exists {
		return nil
	}
	data, err := fs.ReadFile(envFile)
	if err != nil {
		return err
	}
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", envFile, err)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); !set {
			if err := os.Setenv(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeConfigFile merges the given yaml file into viper if it exists
func mergeConfigFile(fs v1.FS, path string) error {
	if exists, _ := utils.Exists(fs, path); !exists {
		return nil
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}
	viper.SetConfigType("yaml")
	if err = viper.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// setupLogger applies the debug, logfile and quiet settings. Logs go to
// stderr so the encoded output on stdout stays parseable.
func setupLogger(cfg *v1.Config) {
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so both file and stderr format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	var outputs []io.Writer
	if !viper.GetBool("quiet") {
		outputs = append(outputs, os.Stderr)
	}
	if logfile := viper.GetString("logfile"); logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		} else {
			outputs = append(outputs, o)
		}
	}
	cfg.Logger.SetOutput(io.MultiWriter(outputs...))
}

// ReadConfigRun loads the configuration shared by all commands. Sources by
// priority are flags, VARDBPKG_* environment, the env file, config.yaml and
// config.d/*.yaml from the config dir.
func ReadConfigRun(configDir string, flags *pflag.FlagSet, fs v1.FS) (*v1.Config, error) {
	cfg := config.NewConfig(
		config.WithFs(fs),
		config.WithLogger(v1.NewLogger()),
	)

	if configDir == "" {
		configDir = constants.ConfigDir
	}

	if err := loadEnvFile(cfg.Fs, configDir); err != nil {
		return nil, err
	}

	if err := mergeConfigFile(cfg.Fs, filepath.Join(configDir, constants.ConfigFile)); err != nil {
		return nil, err
	}

	// Load extra config files on configdir/config.d/ so we can override config values
	cfgExtra := filepath.Join(configDir, "config.d")
	if ok, _ := utils.IsDir(cfg.Fs, cfgExtra); ok {
		entries, err := cfg.Fs.ReadDir(cfgExtra)
		if err != nil {
			return nil, err
		}
		names := []string{}
		for _, e := range entries {
			if !e.IsDir() && (strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			if err := mergeConfigFile(cfg.Fs, filepath.Join(cfgExtra, name)); err != nil {
				return nil, err
			}
		}
	}

	// Set the prefix for vars so we get only the ones starting with VARDBPKG
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	bindGivenFlags(viper.GetViper(), flags)

	setupLogger(cfg)
	return cfg, nil
}

// ReadListConfig reads the scan and output settings on top of the given config
func ReadListConfig(cfg *v1.Config, flags *pflag.FlagSet) (*v1.ListConfig, error) {
	list := config.NewListConfig(
		config.WithFs(cfg.Fs),
		config.WithLogger(cfg.Logger),
	)

	// Defaults make the keys known to viper, otherwise AutomaticEnv would not see them on Unmarshal
	viper.SetDefault("path", constants.DefaultVarDbPath)
	viper.SetDefault("output", constants.OutputJSON)
	viper.SetDefault("fields", []string{})
	viper.SetDefault("sort", false)

	bindGivenFlags(viper.GetViper(), flags)

	err := viper.Unmarshal(list, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("reading list config: %w", err)
	}
	// Config is not decoded but it was squashed, make sure nothing replaced it
	list.Config = *cfg

	if v1.IsDebugLevel(cfg.Logger) {
		cfg.Logger.Debugf("Loaded list config: %s", litter.Sdump(list))
	}
	return list, nil
}
