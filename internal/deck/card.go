package deck

import "strconv"

// Card is a numbered card. The deck holds one copy of every value from
// MinCard to MaxCard inclusive.
type Card int

const (
	MinCard Card = 2
	MaxCard Card = 98

	// Count is the number of cards in a full deck.
	Count = int(MaxCard-MinCard) + 1
)

// Valid reports whether c is a card that exists in the deck.
func (c Card) Valid() bool {
	return c >= MinCard && c <= MaxCard
}

func (c Card) String() string {
	return strconv.Itoa(int(c))
}

// FormatCards renders a hand as "[3 17 64]".
func FormatCards(cards []Card) string {
	buf := make([]byte, 0, len(cards)*3+2)
	buf = append(buf, '[')
	for i, c := range cards {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(c), 10)
	}
	buf = append(buf, ']')
	return string(buf)
}
