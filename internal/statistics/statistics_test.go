package statistics

import (
	"math"
	"testing"

	"github.com/lox/thegame/internal/deck"
	"github.com/lox/thegame/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(leftover, blocked int) game.Result {
	outcome := game.Lost
	if leftover == 0 {
		outcome = game.Won
		blocked = -1
	}
	return game.Result{
		Leftover:      leftover,
		Outcome:       outcome,
		Plays:         deck.Count - leftover,
		Turns:         (deck.Count-leftover)/2 + 1,
		BlockedPlayer: blocked,
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Equal(t, 0.0, stats.Mean())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.0, stats.StdError())
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 0.0, stats.Percentile(0.5))
	assert.Equal(t, 0.0, stats.WinRate())
	low, high := stats.WinRateCI95()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 0.0, high)
	assert.Error(t, stats.Validate())
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []game.Result{result(0, 0), result(4, 2), result(10, 1), result(0, 0), result(6, 2)} {
		stats.Add(r)
	}

	require.NoError(t, stats.Validate())
	assert.Equal(t, 5, stats.Games)
	assert.Equal(t, 2, stats.Wins)
	assert.InDelta(t, 0.4, stats.WinRate(), 1e-9)
	assert.InDelta(t, 4.0, stats.Mean(), 1e-9)
	assert.Equal(t, 4.0, stats.Median())
	assert.Equal(t, 0.0, stats.Percentile(0))
	assert.Equal(t, 10.0, stats.Percentile(1))
	assert.Equal(t, map[int]int{1: 1, 2: 2}, stats.Blocked)
	assert.Equal(t, 2, stats.Counts[0])
	assert.Equal(t, 1, stats.Counts[10])

	// values 0,4,10,0,6: mean 4, squares 0+16+100+0+36 = 152
	wantVar := (152.0 - 5*16) / 4
	assert.InDelta(t, wantVar, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(wantVar), stats.StdDev(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
}

func TestStatistics_WinRateCI95(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		if i%4 == 0 {
			stats.Add(result(0, 0))
		} else {
			stats.Add(result(3, 0))
		}
	}

	low, high := stats.WinRateCI95()
	assert.InDelta(t, 0.25, stats.WinRate(), 1e-9)
	assert.Less(t, low, 0.25)
	assert.Greater(t, high, 0.25)
	assert.GreaterOrEqual(t, low, 0.0)
	assert.LessOrEqual(t, high, 1.0)

	allLost := &Statistics{}
	allLost.Add(result(5, 0))
	low, _ = allLost.WinRateCI95()
	assert.InDelta(t, 0.0, low, 1e-12)
}

func TestStatistics_Merge(t *testing.T) {
	a, b, all := &Statistics{}, &Statistics{}, &Statistics{}
	for i, left := range []int{0, 3, 7, 0, 12, 40} {
		r := result(left, i%3)
		all.Add(r)
		if i < 3 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}

	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, all.Games, a.Games)
	assert.Equal(t, all.Wins, a.Wins)
	assert.Equal(t, all.Values, a.Values)
	assert.Equal(t, all.Counts, a.Counts)
	assert.Equal(t, all.Blocked, a.Blocked)
	assert.InDelta(t, all.Variance(), a.Variance(), 1e-9)

	empty := &Statistics{}
	empty.Merge(a)
	assert.Equal(t, a.Games, empty.Games)
}

func TestStatistics_Histogram(t *testing.T) {
	stats := &Statistics{}
	for _, left := range []int{0, 0, 1, 10, 11, 97} {
		stats.Add(result(left, 0))
	}

	buckets := stats.Histogram(10)
	require.Len(t, buckets, 11)
	assert.Equal(t, Bucket{Low: 0, High: 0, Games: 2}, buckets[0])
	assert.Equal(t, Bucket{Low: 1, High: 10, Games: 2}, buckets[1])
	assert.Equal(t, Bucket{Low: 11, High: 20, Games: 1}, buckets[2])
	assert.Equal(t, Bucket{Low: 91, High: 97, Games: 1}, buckets[10])

	total := 0
	for _, b := range buckets {
		total += b.Games
	}
	assert.Equal(t, stats.Games, total)
}

func TestStatistics_ValidateLedger(t *testing.T) {
	stats := &Statistics{}
	stats.Add(result(5, 1))
	require.NoError(t, stats.Validate())

	stats.Plays++
	assert.Error(t, stats.Validate())
}
