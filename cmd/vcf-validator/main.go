// Package main provides the vcf-validator command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debug bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vcf-validator",
		Short: "Validate and read Variant Call Format files",
		Long: `vcf-validator checks VCF files against the format grammar and can
load the parsed records for further processing.

Validation levels:
  quick   syntax only, nothing is materialized
  full    syntax plus semantic assembly of the in-memory document`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cobra.OnInitialize(initConfig)

	root.AddCommand(newValidateCmd())
	root.AddCommand(newReadCmd())
	root.AddCommand(newStoreCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.vcf-validator.yaml and VCF_VALIDATOR_* env vars.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".vcf-validator")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("VCF_VALIDATOR")
	viper.AutomaticEnv()

	// A missing config file is fine.
	_ = viper.ReadInConfig()
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
