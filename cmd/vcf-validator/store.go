package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ManeshNarayan/vcf-validator/internal/input"
	"github.com/ManeshNarayan/vcf-validator/internal/store"
	"github.com/ManeshNarayan/vcf-validator/internal/vcf"
)

func newStoreCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "store <file>",
		Short: "Validate a VCF file and load its records into DuckDB",
		Long: `Fully validate a VCF file and, when it is valid, append its records
to a DuckDB database for later querying.`,
		Example: `  vcf-validator store --db variants.duckdb input.vcf
  vcf-validator config set store.path variants.duckdb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("store.path")
			}
			if dbPath == "" {
				return fmt.Errorf("no database path: use --db or set store.path in the config")
			}
			return runStore(args[0], dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database path (default: config store.path)")

	return cmd
}

func runStore(path, dbPath string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var (
		source  vcf.Source
		records []vcf.Record
	)
	parser := vcf.NewFullValidator(&source, &records)

	r, err := input.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Feed(parser, 0); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if !parser.IsValid() {
		for _, d := range parser.Diagnostics() {
			fmt.Fprintln(os.Stderr, d)
		}
		return fmt.Errorf("%s is not valid, refusing to store its records", path)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.WriteRecords(records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}

	logger.Info("stored records",
		zap.String("path", path),
		zap.String("db", dbPath),
		zap.Int("records", len(records)))
	fmt.Printf("%s: stored %d record(s) in %s\n", path, len(records), dbPath)
	return nil
}
