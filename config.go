// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configFileName = ".treebench.yaml"

type BenchConfig struct {
	OutputFile   string   `yaml:"output_file"`
	Seed         uint64   `yaml:"seed"`
	ShowProgress bool     `yaml:"show_progress"`
	Validate     bool     `yaml:"validate"`
	SkipInvalid  bool     `yaml:"skip_invalid"`
	Baselines    []string `yaml:"baselines"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			OutputFile:   "output.txt",
			ShowProgress: true,
			Baselines:    []string{},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate rejects unknown baselines and log levels.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return merry.Wrap(err).WithValue("key", "log.level")
	}
	for _, name := range c.Bench.Baselines {
		if !slices.Contains(baselineNames(), name) {
			return merry.Errorf("unknown baseline %q, expected one of %v", name, baselineNames()).WithValue("key", "bench.baselines")
		}
	}
	if c.Bench.OutputFile == "" {
		return merry.New("bench.output_file must not be empty").WithValue("key", "bench.output_file")
	}
	return nil
}

// LoadConfig reads ~/.treebench.yaml. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, merry.Wrap(err).WithValue("path", configPath)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, merry.Prependf(err, "parse %s", configPath).WithValue("path", configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, merry.Prependf(err, "invalid %s", configPath).WithValue("path", configPath)
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Fprintf(w, "Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintln(w, styles.Title.Render("treebench Configuration Settings"))
	if configExists {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		fmt.Fprintf(w, "Failed to render configuration: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
	fmt.Fprintf(w, "Baselines available: %v\n", baselineNames())
}
