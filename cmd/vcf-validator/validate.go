package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ManeshNarayan/vcf-validator/internal/input"
	"github.com/ManeshNarayan/vcf-validator/internal/vcf"
)

func newValidateCmd() *cobra.Command {
	var (
		level     string
		chunkSize int
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a VCF file",
		Long: `Validate a VCF file against the format grammar. Every section
violation is reported with its line number; the exit status is non-zero
when any violation was found. Use "-" to read from stdin.`,
		Example: `  vcf-validator validate input.vcf
  vcf-validator validate --level quick input.vcf.gz
  zcat input.vcf.gz | vcf-validator validate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if level == "" {
				level = viper.GetString("validate.level")
			}
			if level == "" {
				level = "full"
			}
			return runValidate(args[0], level, chunkSize)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "Validation level: quick or full (default: config validate.level, else full)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Read chunk size in bytes")

	return cmd
}

func runValidate(path, level string, chunkSize int) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var (
		source  vcf.Source
		records []vcf.Record
		parser  vcf.ChunkParser
	)
	switch level {
	case "quick":
		parser = vcf.NewQuickValidator(nil, nil)
	case "full":
		parser = vcf.NewFullValidator(&source, &records)
	default:
		return fmt.Errorf("unknown validation level %q (want quick or full)", level)
	}

	r, err := input.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Feed(parser, chunkSize); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	for _, d := range parser.Diagnostics() {
		fmt.Fprintln(os.Stderr, d)
	}

	if !parser.IsValid() {
		logger.Warn("file is not valid",
			zap.String("path", path),
			zap.String("level", level),
			zap.Int("violations", len(parser.Diagnostics())))
		return fmt.Errorf("%s: %d section violation(s)", path, len(parser.Diagnostics()))
	}

	logger.Info("file is valid",
		zap.String("path", path),
		zap.String("level", level),
		zap.Int("lines", parser.LineNumber()-1))
	fmt.Printf("%s: valid\n", path)
	return nil
}
