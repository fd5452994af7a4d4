// Package main provides the CLI entry point for celltab-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/celltab-go/pkg/celltab"
	"github.com/ukaji3/celltab-go/pkg/celltab/output"
	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/xlsxio"
)

var (
	outputPath string
	format     string
	pretty     bool
	headers    bool
	separator  string
	origin     string
	compact    bool
	sheetName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "celltab [input.csv|input.xlsx]",
		Short: "Convert sparse cell tables between CSV, JSON and xlsx",
		Long: `celltab-go reads a delimited file or an Excel worksheet into a sparse
cell table and re-exports it as CSV, JSON projections, or xlsx.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: csv, json, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&headers, "headers", false, "Treat the first CSV row as headers on import, and emit column-letter headers on CSV export")
	rootCmd.Flags().StringVar(&separator, "separator", ",", "CSV field separator (single character)")
	rootCmd.Flags().StringVar(&origin, "origin", "A1", "Cell reference the first imported CSV field lands on")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "Start exported grids at the first occupied column instead of column A")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name for xlsx input/output (default: first sheet)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	sep, err := parseSeparator(separator)
	if err != nil {
		return err
	}

	// With xlsx input the separator only matters for csv output; reject an
	// explicit flag that nothing would consume rather than ignoring it.
	if isXlsx(inputPath) && format != "csv" && cmd.Flags().Changed("separator") {
		return fmt.Errorf("--separator applies only to csv input or csv output")
	}

	tab, err := load(inputPath, sep)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	switch format {
	case "csv":
		return writeText(tab.ToCSV(exportOptions(sep)))
	case "json":
		jsonData, err := output.ToJSON(output.FromTable(tab, !compact), pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeText(string(jsonData))
	case "xlsx":
		if outputPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		return xlsxio.Save(tab, outputPath, sheetName)
	default:
		return fmt.Errorf("invalid format: %s (must be csv, json, or xlsx)", format)
	}
}

func load(inputPath string, sep rune) (*celltab.Table, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	originRow, originColumn, err := parseOrigin(origin)
	if err != nil {
		return nil, err
	}

	if isXlsx(inputPath) {
		return xlsxio.Load(inputPath, sheetName, xlsxio.LoadOptions{
			HasHeaderRow: headers,
			OriginRow:    originRow,
			OriginColumn: originColumn,
		})
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	tab := celltab.New()
	opts := celltab.ImportOptions{
		Separator:    sep,
		HasHeaderRow: headers,
		OriginRow:    originRow,
		OriginColumn: originColumn,
	}
	if err := tab.LoadCSV(string(text), opts); err != nil {
		return nil, err
	}
	return tab, nil
}

func parseOrigin(reference string) (row int, columnLetters string, err error) {
	coord, err := ref.Decode(reference)
	if err != nil {
		return 0, "", fmt.Errorf("invalid origin: %w", err)
	}
	letters, err := ref.ColumnLetters(coord.Col)
	if err != nil {
		return 0, "", err
	}
	return coord.Row, letters, nil
}

func isXlsx(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

func exportOptions(sep rune) celltab.ExportOptions {
	anchor := !compact
	return celltab.ExportOptions{
		Separator:       sep,
		IncludeHeaders:  headers,
		AnchorAtColumnA: &anchor,
	}
}

func parseSeparator(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid separator %q: must be a single character", s)
	}
	return runes[0], nil
}

func writeText(text string) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(text)
	return nil
}
