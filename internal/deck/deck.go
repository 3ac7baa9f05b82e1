package deck

import rand "math/rand/v2"

// Deck holds the cards that have not been dealt yet
type Deck struct {
	cards []Card
}

// NewDeck creates a full deck shuffled with rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, Count)}
	for c := MinCard; c <= MaxCard; c++ {
		d.cards = append(d.cards, c)
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns up to n cards. When fewer than n remain the deck
// is drained and the remainder returned, so callers must check the length.
func (d *Deck) Draw(n int) []Card {
	if n <= 0 {
		return nil
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	// Draw from the end so the backing array is reused.
	cut := len(d.cards) - n
	drawn := make([]Card, n)
	copy(drawn, d.cards[cut:])
	d.cards = d.cards[:cut]
	return drawn
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// CardsPerPlayer returns the opening hand size for a table of n players.
func CardsPerPlayer(players int) int {
	switch players {
	case 1:
		return 8
	case 2:
		return 7
	default:
		return 6
	}
}
