package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/thegame/internal/deck"
	"github.com/lox/thegame/internal/game"
)

// Statistics aggregates the results of many games. Leftover card counts are
// the primary measure; zero leftover is a win.
type Statistics struct {
	Games  int
	Wins   int
	Sum    float64   // Sum of leftover cards
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Plays int // Cards placed across all games
	Turns int

	// Leftover distribution, index is the leftover count
	Counts [deck.Count + 1]int

	// Blocked tracks which seat ended each lost game
	Blocked map[int]int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result game.Result) {
	left := float64(result.Leftover)
	s.Games++
	s.Sum += left
	s.Sum2 += left * left
	s.Values = append(s.Values, left)
	s.Plays += result.Plays
	s.Turns += result.Turns

	if result.Leftover >= 0 && result.Leftover <= deck.Count {
		s.Counts[result.Leftover]++
	}

	if result.Won() {
		s.Wins++
		return
	}
	if s.Blocked == nil {
		s.Blocked = make(map[int]int)
	}
	s.Blocked[result.BlockedPlayer]++
}

// Merge folds other into s. Values keep s's order followed by other's.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Plays += other.Plays
	s.Turns += other.Turns
	for i, n := range other.Counts {
		s.Counts[i] += n
	}
	for p, n := range other.Blocked {
		if s.Blocked == nil {
			s.Blocked = make(map[int]int)
		}
		s.Blocked[p] += n
	}
}

// WinRate returns the fraction of games with no cards left over
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateCI95 returns the Wilson score interval for the win rate
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(s.Games)
	p := s.WinRate()
	denom := 1 + z*z/n
	centre := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// Mean returns the average leftover card count
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of leftover counts
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
	if v < 0 {
		return 0 // rounding
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// MeanPlays returns the average number of cards placed per game
func (s *Statistics) MeanPlays() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Plays) / float64(s.Games)
}

// Median returns the median leftover count
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Bucket is one bar of a leftover histogram, covering [Low, High].
type Bucket struct {
	Low, High int
	Games     int
}

// Histogram groups leftover counts. Zero always gets its own bucket so wins
// stand out; the rest are split into ranges of width.
func (s *Statistics) Histogram(width int) []Bucket {
	if width < 1 {
		width = 1
	}
	buckets := []Bucket{{Low: 0, High: 0, Games: s.Counts[0]}}
	for low := 1; low <= deck.Count; low += width {
		high := min(low+width-1, deck.Count)
		b := Bucket{Low: low, High: high}
		for i := low; i <= high; i++ {
			b.Games += s.Counts[i]
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// Validate performs consistency checks on the aggregate
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	if s.Wins > s.Games {
		return fmt.Errorf("wins (%d) exceed games (%d)", s.Wins, s.Games)
	}

	counted := 0
	for _, n := range s.Counts {
		counted += n
	}
	if counted != s.Games {
		return fmt.Errorf("histogram total (%d) does not match games count (%d)", counted, s.Games)
	}
	if s.Counts[0] != s.Wins {
		return fmt.Errorf("zero leftover games (%d) do not match wins (%d)", s.Counts[0], s.Wins)
	}

	blocked := 0
	for _, n := range s.Blocked {
		blocked += n
	}
	if blocked != s.Games-s.Wins {
		return fmt.Errorf("blocked games (%d) do not match losses (%d)", blocked, s.Games-s.Wins)
	}

	// Every card is either placed or left over.
	if want := s.Games * deck.Count; s.Plays+int(s.Sum) != want {
		return fmt.Errorf("card ledger mismatch: %d placed + %.0f left over != %d", s.Plays, s.Sum, want)
	}

	return nil
}
