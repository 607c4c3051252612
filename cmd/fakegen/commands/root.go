package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fakegen/internal/config"
	"fakegen/internal/export"
	"fakegen/internal/generate"
	"fakegen/internal/logging"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	yes     bool
	count   int
	output  string

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "fakegen",
	Short: "fakegen synthesizes fake personal records and exports them as CSV, JSON and TXT",
	Long: `fakegen generates a configurable number of synthetic personal/business records
(unique id, name, company, job title, email, IPv4 address, registration date,
description) and writes the dataset to three sibling files sharing one base path:
{base}.csv, {base}.json and {base}.txt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Env-configured defaults apply only where the flag was not set.
		if !cmd.Flags().Changed("count") {
			count = cfg.DefaultCount
		}
		if !cmd.Flags().Changed("output") {
			output = cfg.DefaultBasePath
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("fakegen starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if count > cfg.ConfirmThreshold && !yes {
			if !confirm(cmd, count) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generating %d records...\n", count)

		gen := generate.New(generate.Options{WarnThreshold: cfg.WarnThreshold})
		ds, err := gen.Generate(count)
		if err != nil {
			return err
		}

		if err := export.Export(ds, output); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Done. %d records written to %s.{csv,json,txt}\n", len(ds), output)
		return nil
	},
}

// confirm asks on stdin before very large runs. Anything but y/Y declines.
func confirm(cmd *cobra.Command, count int) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "Generating %d records may take a long time and a lot of memory.\nContinue? (y/n): ", count)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().IntVarP(&count, "count", "c", config.DefaultCount, "number of records to generate")
	rootCmd.Flags().StringVarP(&output, "output", "o", config.DefaultBasePath, "base output path without extension")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt for large counts")
}
