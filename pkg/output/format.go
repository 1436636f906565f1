// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/gbm-sim/internal/simulation"
	"github.com/iwvelando/gbm-sim/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Within a comparison run the schemes appear as side-by-side columns over
// the shared time grid.
func PrettyFormat(results []simulation.Result) {
	p := message.NewPrinter(language.English)
	for n, result := range results {
		fmt.Printf("--- Results for run %s ---\n", result.Name)
		if len(result.Paths) == 0 {
			continue
		}

		header := fmt.Sprintf("%-12s", constants.TimeAxisLabel)
		separator := fmt.Sprintf("%-12s", "____")
		for _, path := range result.Paths {
			label := fmt.Sprintf("%s (%s)", constants.ValueAxisLabel, path.Scheme)
			header += fmt.Sprintf(" | %-20s", label)
			separator += fmt.Sprintf(" | %-20s", strings.Repeat("_", len(label)))
		}
		fmt.Println(header)
		fmt.Println(separator)

		times := result.Paths[0].Times
		for i, t := range times {
			row := fmt.Sprintf("%-12.6f", t)
			for _, path := range result.Paths {
				row += p.Sprintf(" | %-20.6f", path.Values[i])
			}
			fmt.Println(row)
		}
		if n < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one block per run.
// All paths within a run share the same timeline, so the time column is
// taken from the first.
func CsvFormat(results []simulation.Result) {
	for n, result := range results {
		if len(result.Paths) == 0 {
			continue
		}

		fmt.Printf(`"time"`)
		for _, path := range result.Paths {
			fmt.Printf(`,"%s (%s)"`, path.Scheme, result.Name)
		}
		fmt.Printf("\n")

		times := result.Paths[0].Times
		for i, t := range times {
			fmt.Printf(`"%g"`, t)
			for _, path := range result.Paths {
				fmt.Printf(`,"%g"`, path.Values[i])
			}
			fmt.Printf("\n")
		}
		if n < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}
