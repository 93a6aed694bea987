// Package main provides the entry point for the farpoint CLI application
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/farpoint/farpoint-go/internal/config"
	"github.com/farpoint/farpoint-go/internal/export"
	"github.com/farpoint/farpoint-go/internal/geo"
	"github.com/farpoint/farpoint-go/internal/kmltree"
	"github.com/farpoint/farpoint-go/internal/kmz"
	"github.com/farpoint/farpoint-go/internal/report"
	"github.com/farpoint/farpoint-go/internal/route"
)

var (
	archivePath string
	refText     string
	verbose     bool
	interactive bool
	csvPath     string
)

var rootCmd = &cobra.Command{
	Use:   "farpoint [archive] [reference]",
	Short: "farpoint - find the furthest route point in a KMZ archive",
	Long: `farpoint - find the furthest route point in a KMZ archive

Extracts every route (LineString) from the KML document inside a KMZ
archive, measures the great-circle distance from a reference point to
every route point, and prints a ranked report with the furthest point
highlighted. Plain .kml files work too.

Inputs resolve in order: flags/positionals, then FARPOINT_KMZ and
FARPOINT_REF environment variables, then ~/.config/farpoint/settings.json,
then built-in defaults.

Examples:
  farpoint trips.kmz
  farpoint trips.kmz "48.1486,17.1077"
  farpoint --kmz trips.kmz --ref "48.1486,17.1077" --verbose
  farpoint -k trips.kmz --csv report.csv
  farpoint -k trips.kmz --interactive`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&archivePath, "kmz", "k", "", "Path to KMZ archive (or .kml file)")
	rootCmd.Flags().StringVarP(&refText, "ref", "r", "", "Reference point as \"lat,lon\"")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every point with its distance")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the report in a scrollable view")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Export the ranked report to a CSV file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// inputs holds the resolved archive path and reference text
type inputs struct {
	Archive   string
	Reference string
}

// resolveInputs applies the precedence chain: flag, positional argument,
// environment variable, settings file (which carries the built-in
// defaults when unset).
func resolveInputs(args []string, flagArchive, flagRef string, cfg *config.Config, getenv func(string) string) inputs {
	in := inputs{Archive: cfg.Input.Archive, Reference: cfg.Input.Reference}

	if env := getenv("FARPOINT_KMZ"); env != "" {
		in.Archive = env
	}
	if env := getenv("FARPOINT_REF"); env != "" {
		in.Reference = env
	}

	if len(args) > 0 && args[0] != "" {
		in.Archive = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		in.Reference = args[1]
	}

	if flagArchive != "" {
		in.Archive = flagArchive
	}
	if flagRef != "" {
		in.Reference = flagRef
	}

	return in
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	in := resolveInputs(args, archivePath, refText, cfg, os.Getenv)

	reference, err := geo.ParseReferencePoint(in.Reference)
	if err != nil {
		return err
	}

	data, err := kmz.ReadDocument(in.Archive)
	if err != nil {
		return err
	}

	tree, err := kmltree.Parse(data)
	if err != nil {
		return err
	}

	segments := route.CollectRouteSegments(tree)
	rep := report.Build(segments, reference)

	if csvPath != "" || cfg.Report.CSVDirectory != "" {
		written, err := export.ExportCSV(rep, csvPath, cfg.Report.CSVDirectory)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report exported to %s\n", written)
	}

	showVerbose := verbose || cfg.Report.Verbose

	if interactive {
		return rep.ShowInteractive(showVerbose)
	}

	fmt.Fprint(cmd.OutOrStdout(), rep.Render(showVerbose))
	return nil
}
