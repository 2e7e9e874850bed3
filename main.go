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
	"os"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithField("details", merry.Details(err)).Debug("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	datasets := NewDatasetCache()

	var rootCmd = &cobra.Command{
		Use:     "treebench <csv file> <number of lines>",
		Short:   "Compare BST and AVL tree insert/search times on sorted and shuffled input",
		Long:    "treebench loads track records from a CSV file, inserts a sorted and a shuffled copy\ninto an unbalanced BST and an AVL tree, and times insertion and lookup.",
		Version: version,
		Args:    cobra.RangeArgs(0, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				log.Warnf("Failed to load configuration: %v. Using default settings.", err)
				cfg = DefaultConfig()
			}
			level := cfg.Log.Level
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			return setupLogging(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run when a file and a line count are given
			if len(args) != 2 {
				return cmd.Help()
			}
			opts, err := benchOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, datasets, args[0], args[1], opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.SilenceUsage = true
	addBenchFlags(rootCmd)

	var cmdRun = &cobra.Command{
		Use:   "run <csv file> <number of lines>",
		Short: "Run one benchmark over the first n records of a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := benchOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, datasets, args[0], args[1], opts)
		},
	}
	addBenchFlags(cmdRun)
	cmdRun.Flags().Bool("copy", false, "copy the CSV result line to the clipboard")
	cmdRun.Flags().Int("repeat", 1, "number of times to repeat the benchmark")

	var cmdSweep = &cobra.Command{
		Use:   "sweep <csv file> <n1> [n2 ...]",
		Short: "Run the benchmark once for every record count given",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := benchOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return runSweep(cmd, datasets, args[0], args[1:], opts)
		},
	}
	addBenchFlags(cmdSweep)

	var cmdShow = &cobra.Command{
		Use:   "show [int ...]",
		Short: "Insert integers into a BST and an AVL tree and print both",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			remove, err := cmd.Flags().GetIntSlice("remove")
			if err != nil {
				return err
			}
			return showTrees(cmd.OutOrStdout(), args, remove)
		},
	}
	cmdShow.Flags().IntSlice("remove", nil, "integers to remove after inserting")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Print treebench configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print treebench usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print treebench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdRun, cmdSweep, cmdShow, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().String("output", "", "results file the CSV line is appended to")
	cmd.Flags().Uint64("seed", 0, "shuffle seed, 0 picks one from the clock")
	cmd.Flags().Bool("validate", false, "check tree invariants after building each tree")
	cmd.Flags().Bool("skip-invalid", false, "log and skip malformed rows instead of failing")
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")
	cmd.Flags().StringSlice("baseline", nil, "extra ordered sets to time: btree, llrb")
}

// benchOptionsFromFlags starts from the config file and lets explicitly set
// flags override it.
func benchOptionsFromFlags(cmd *cobra.Command) (benchOptions, error) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = DefaultConfig()
	}
	opts := benchOptions{
		OutputFile:   cfg.Bench.OutputFile,
		Seed:         cfg.Bench.Seed,
		ShowProgress: cfg.Bench.ShowProgress,
		Validate:     cfg.Bench.Validate,
		SkipInvalid:  cfg.Bench.SkipInvalid,
		Baselines:    cfg.Bench.Baselines,
		Repeat:       1,
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("seed") {
		opts.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("validate") {
		opts.Validate, _ = flags.GetBool("validate")
	}
	if flags.Changed("skip-invalid") {
		opts.SkipInvalid, _ = flags.GetBool("skip-invalid")
	}
	if flags.Changed("no-progress") {
		hide, _ := flags.GetBool("no-progress")
		opts.ShowProgress = !hide
	}
	if flags.Changed("baseline") {
		opts.Baselines, _ = flags.GetStringSlice("baseline")
	}
	if flags.Lookup("copy") != nil {
		opts.Copy, _ = flags.GetBool("copy")
	}
	if flags.Lookup("repeat") != nil {
		opts.Repeat, _ = flags.GetInt("repeat")
	}

	if err := opts.validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
