package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/asynkron/test262-reporter/types"
)

// ResultFormatter is responsible for formatting and displaying the
// per-group results once the run has finished.
type ResultFormatter interface {
	FormatResults(results []types.GroupResult, stats types.RunStats, duration time.Duration) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
// The table is rendered on the diagnostic stream; stdout is reserved
// for the one-line-per-group report.
type ConsoleResultFormatter struct {
	logger log.Logger
	out    io.Writer
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger log.Logger, out io.Writer) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
		out:    out,
	}
}

// FormatResults renders the per-group results table with run totals.
func (f *ConsoleResultFormatter) FormatResults(results []types.GroupResult, stats types.RunStats, duration time.Duration) error {
	f.logger.Info("Printing results...")
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle(fmt.Sprintf("Test262 Report (%s)", formatDuration(duration)))

	t.AppendHeader(table.Row{
		"Group", "Duration", "Passed", "Failed", "Skipped", "Total", "Status",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Group", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Total", Align: text.AlignRight},
	})

	for _, result := range results {
		t.AppendRow(table.Row{
			result.Group,
			formatDuration(result.Duration),
			result.Passed,
			result.Failed,
			result.Skipped,
			result.Total(),
			getResultString(result.Status()),
		})
	}

	if stats.Status() == types.TestStatusPass {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		formatDuration(duration),
		stats.Passed,
		stats.Failed,
		stats.Skipped,
		stats.Total(),
		getResultString(stats.Status()),
	})

	t.Render()
	return nil
}

// Helper function to format duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// getResultString returns a marked string representing the result
func getResultString(status types.TestStatus) string {
	if status == types.TestStatusPass {
		return "✓ pass"
	}
	return "✗ fail"
}
