// Package main provides the CLI entry point for adreport.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/adreport-go/internal/logger"
	"github.com/ukaji3/adreport-go/pkg/adreport"
	"github.com/ukaji3/adreport-go/pkg/adreport/output"
)

var (
	outputPath string
	verbose    bool
	pretty     bool
	jsonOut    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adreport",
		Short: "Generate the ad-monetization analysis workbook",
		Long: `adreport writes the ad-monetization reference workbook for the Logic app:
nine sheets of placements, ad types, revenue projections, roadmap, AdMob setup,
best practices, competitors and industry benchmarks, with two charts.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runBuild,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log build progress to stderr")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", adreport.DefaultOutputPath, "Output workbook path")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the build summary as JSON")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the cells, charts and print areas of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(inspectCmd)
	return rootCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts := adreport.DefaultOptions()
	opts.OutputPath = outputPath
	opts.Logger = logger.New(cmd.ErrOrStderr(), verbose)

	summary, err := adreport.Build(opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if !jsonOut {
		return adreport.WriteSummary(cmd.OutOrStdout(), summary)
	}
	jsonData, err := output.SummaryToJSON(summary, false)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logger.New(cmd.ErrOrStderr(), verbose)

	wb, err := adreport.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	log.Debug().Str("book", wb.BookName).Int("sheets", len(wb.SheetNames)).Msg("workbook inspected")

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
