// Package report writes simulation results: the per-game CSV export and a
// human readable summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/thegame/internal/fileutil"
	"github.com/lox/thegame/internal/game"
	"github.com/lox/thegame/internal/simulator"
)

// CSVHeader is the single column written above the leftover counts.
const CSVHeader = "cards"

// WriteCSV writes one leftover card count per line under a "cards" header.
func WriteCSV(w io.Writer, results []game.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{CSVHeader}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{strconv.Itoa(r.Leftover)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV atomically writes the CSV export to filename.
func SaveCSV(filename string, results []game.Result) error {
	if err := fileutil.WriteAtomic(filename, 0644, func(w io.Writer) error {
		return WriteCSV(w, results)
	}); err != nil {
		return fmt.Errorf("failed to save results to %s: %w", filename, err)
	}
	return nil
}

// PrintSummary prints the outcome of a batch.
func PrintSummary(w io.Writer, r *simulator.Report) {
	stats := r.Stats
	low, high := stats.WinRateCI95()
	meanLow, meanHigh := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS: %s x%d ===\n", r.Strategy, r.Players)
	fmt.Fprintf(w, "Run: %s (seed %d)\n", r.RunID, r.Seed)
	fmt.Fprintf(w, "Games played: %d in %.2fs\n", stats.Games, r.Duration.Seconds())

	fmt.Fprintf(w, "\n=== WIN RATE ===\n")
	fmt.Fprintf(w, "Win rate: %.2f %% (%d/%d)\n", stats.WinRate()*100, stats.Wins, stats.Games)
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f] %%\n", low*100, high*100)

	fmt.Fprintf(w, "\n=== LEFTOVER CARDS ===\n")
	fmt.Fprintf(w, "Mean: %.3f cards (95%% CI [%.3f, %.3f])\n", stats.Mean(), meanLow, meanHigh)
	fmt.Fprintf(w, "Median: %.1f cards\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f cards\n", stats.StdDev())
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Cards placed: %.2f per game\n", stats.MeanPlays())

	fmt.Fprintf(w, "\n=== DISTRIBUTION ===\n")
	PrintHistogram(w, r)

	losses := stats.Games - stats.Wins
	if losses == 0 {
		return
	}
	fmt.Fprintf(w, "\n=== BLOCKED PLAYER ANALYSIS ===\n")
	for p := 0; p < r.Players; p++ {
		if n := stats.Blocked[p]; n > 0 {
			fmt.Fprintf(w, "Player %d: %d losses (%.1f%%)\n", p, n, float64(n)/float64(losses)*100)
		}
	}
}

// PrintHistogram draws the leftover distribution as a bar chart.
func PrintHistogram(w io.Writer, r *simulator.Report) {
	const barWidth = 40
	buckets := r.Stats.Histogram(10)

	most := 0
	for _, b := range buckets {
		most = max(most, b.Games)
	}

	for _, b := range buckets {
		if b.Games == 0 {
			continue
		}
		label := fmt.Sprintf("%d-%d", b.Low, b.High)
		if b.Low == b.High {
			label = strconv.Itoa(b.Low)
		}
		bar := strings.Repeat("#", max(1, b.Games*barWidth/most))
		fmt.Fprintf(w, "%7s | %-*s %d\n", label, barWidth, bar, b.Games)
	}
}
