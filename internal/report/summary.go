package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rickgao/sleeper-roster/internal/model"
)

// DefaultPreviewRows is how many CSV rows Preview prints.
const DefaultPreviewRows = 5

// PreviewColumns are the columns shown by Preview.
var PreviewColumns = []string{"player_id", "search_full_name", "position", "team", "is_starter"}

const rule = "=================================================="

// PrintSummary prints one block per league the owner was found in.
func PrintSummary(w io.Writer, summaries []model.LeagueSummary) {
	fmt.Fprintf(w, "\n%s\nROSTER SUMMARY\n%s\n", rule, rule)

	for i, s := range summaries {
		fmt.Fprintf(w, "League %d - ID: %s\n", i+1, s.LeagueID)
		fmt.Fprintf(w, "  Roster ID: %d\n", s.RosterID)
		fmt.Fprintf(w, "  Record: %d-%d\n", s.Wins, s.Losses)
		fmt.Fprintf(w, "  Fantasy Points: %s\n", FormatPoints(s.FantasyPoints))
		fmt.Fprintln(w)
	}
}

// FormatPoints renders fantasy points without trailing zeros.
func FormatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Preview reads the CSV at path and prints PreviewColumns for the first n rows.
func Preview(w io.Writer, path string, n int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return PreviewFrom(w, f, n)
}

// PreviewFrom prints PreviewColumns for the first n rows of a CSV stream.
func PreviewFrom(w io.Writer, r io.Reader, n int) error {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	idx := make([]int, 0, len(PreviewColumns))
	for _, col := range PreviewColumns {
		i := indexOf(header, col)
		if i < 0 {
			return fmt.Errorf("column %q not found", col)
		}
		idx = append(idx, i)
	}

	fmt.Fprintln(w, "Sample player data:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(PreviewColumns, "\t"))

	for printed := 0; printed < n; printed++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		cells := make([]string, len(idx))
		for i, j := range idx {
			if j < len(rec) {
				cells[i] = rec[j]
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}
