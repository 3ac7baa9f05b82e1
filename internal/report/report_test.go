package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/thegame/internal/bot"
	"github.com/lox/thegame/internal/game"
	"github.com/lox/thegame/internal/simulator"
	"github.com/lox/thegame/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *simulator.Report {
	results := []game.Result{
		{Leftover: 0, Outcome: game.Won, Plays: 97, Turns: 50, BlockedPlayer: -1},
		{Leftover: 12, Outcome: game.Lost, Plays: 85, Turns: 44, BlockedPlayer: 2},
		{Leftover: 3, Outcome: game.Lost, Plays: 94, Turns: 49, BlockedPlayer: 0},
	}
	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	return &simulator.Report{
		RunID:    "run-1",
		Strategy: bot.Priority,
		Players:  5,
		Seed:     42,
		Stats:    stats,
		Results:  results,
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport().Results))
	assert.Equal(t, "cards\n0\n12\n3\n", buf.String())
}

func TestSaveCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, SaveCSV(path, sampleReport().Results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cards\n0\n12\n3\n", string(data))

	err = SaveCSV(filepath.Join(t.TempDir(), "missing", "results.csv"), nil)
	assert.ErrorContains(t, err, "failed to save results")
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintSummary(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "=== RESULTS: priority x5 ===")
	assert.Contains(t, out, "Win rate: 33.33 % (1/3)")
	assert.Contains(t, out, "Median: 3.0 cards")
	assert.Contains(t, out, "Player 0: 1 losses (50.0%)")
	assert.Contains(t, out, "Player 2: 1 losses (50.0%)")
	assert.NotContains(t, out, "Player 1:")

	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, " | ") {
			lines++
		}
	}
	assert.Equal(t, 3, lines, "one histogram bar per non-empty bucket")
}
