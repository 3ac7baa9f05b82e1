package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/thegame/internal/deck"
	"github.com/lox/thegame/internal/randutil"
)

// ErrGameOver is returned by Play when the game has already finished.
var ErrGameOver = errors.New("game is over, call Reset to play again")

// State is the phase of a game
type State int

const (
	Dealing State = iota
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Dealing:
		return "dealing"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result summarises a finished game.
type Result struct {
	// Leftover is the number of cards not placed: deck plus all hands.
	Leftover int
	Outcome  State
	Plays    int
	Turns    int
	// BlockedPlayer is the seat that could not move, or -1.
	BlockedPlayer int
	Seed          int64
}

// Won reports whether every card was placed.
func (r Result) Won() bool { return r.Leftover == 0 }

// Config describes a table.
type Config struct {
	Players  int
	Strategy StrategyFactory
	Seed     int64
	Logger   *log.Logger
	Observer Observer
}

// Game runs one cooperative game at a time. A Game is not safe for
// concurrent use; run one per goroutine and Reset it between games.
type Game struct {
	strategy StrategyFactory
	logger   *log.Logger
	observer Observer

	seed   int64
	rng    *rand.Rand
	deck   *deck.Deck
	stacks []Stack
	board  *PriorityBoard
	seats  []*Seat

	state   State
	plays   int
	turns   int
	blocked int
}

// New creates a game and deals the first hands.
func New(cfg Config) (*Game, error) {
	if cfg.Strategy == nil {
		return nil, errors.New("strategy factory is required")
	}

	g := &Game{
		strategy: cfg.Strategy,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.observer == nil {
		g.observer = NopObserver{}
	}

	g.Reseed(cfg.Seed)
	if err := g.Reset(cfg.Players); err != nil {
		return nil, err
	}
	return g, nil
}

// Reseed replaces the random source. It takes effect on the next Reset.
func (g *Game) Reseed(seed int64) {
	g.seed = seed
	g.rng = randutil.New(seed)
}

// Reset discards the current game and deals a new one for the given number
// of players, continuing the current random stream.
func (g *Game) Reset(players int) error {
	if players < 1 {
		return fmt.Errorf("need at least one player, got %d", players)
	}

	g.state = Dealing
	g.deck = deck.NewDeck(g.rng)
	g.stacks = NewStacks()
	g.board = NewPriorityBoard(len(g.stacks), players)
	g.seats = make([]*Seat, players)
	for i := range g.seats {
		g.seats[i] = newSeat(i, g.strategy(i, g.rng), g.board.Handle(i))
	}
	g.plays = 0
	g.turns = 0
	g.blocked = -1

	perPlayer := deck.CardsPerPlayer(players)
	for _, seat := range g.seats {
		seat.draw(g.deck.Draw(perPlayer))
	}
	g.state = Playing

	g.logger.Debug("Dealt new game", "players", players, "cards_per_player", perPlayer, "seed", g.seed)
	return nil
}

type turnOutcome int

const (
	turnContinue turnOutcome = iota
	turnBlocked
)

// Play runs the game until a seat cannot move. ctx is checked between turns.
func (g *Game) Play(ctx context.Context) (Result, error) {
	if g.state != Playing {
		return Result{}, ErrGameOver
	}

	for {
		for _, seat := range g.seats {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}

			outcome, err := g.playTurn(seat)
			if err != nil {
				return Result{}, fmt.Errorf("player %d turn %d: %w", seat.id, g.turns, err)
			}
			if outcome == turnBlocked {
				return g.finish(seat.id), nil
			}
		}
	}
}

// playTurn plays one seat's turn: two cards, or one once the deck is empty.
func (g *Game) playTurn(seat *Seat) (turnOutcome, error) {
	g.turns++
	required := 2
	if g.deck.IsEmpty() {
		required = 1
	}

	g.observer.TurnStarted(TurnEvent{
		Turn:     g.turns,
		Player:   seat.id,
		Hand:     seat.Hand(),
		Stacks:   g.Stacks(),
		DeckSize: g.deck.Len(),
		Required: required,
	})

	for i := 0; i < required; i++ {
		moves := LegalMoves(seat.hand, g.stacks)
		if len(moves) == 0 {
			return turnBlocked, nil
		}
		move := seat.strategy.ChooseMove(seat.view(g.stacks), moves)
		if err := g.apply(seat, move); err != nil {
			return turnContinue, err
		}
	}

	if !g.deck.IsEmpty() {
		seat.draw(g.deck.Draw(required))
	}

	seat.strategy.OwnTurnEnd(seat.view(g.stacks))
	for _, s := range g.seats {
		s.strategy.TurnEnd(s.view(g.stacks))
	}
	g.observer.ClaimsUpdated(g.board)

	return turnContinue, nil
}

func (g *Game) apply(seat *Seat, move Move) error {
	if move.CardIndex < 0 || move.CardIndex >= len(seat.hand) ||
		move.StackIndex < 0 || move.StackIndex >= len(g.stacks) {
		return fmt.Errorf("%w: %s chose card %d stack %d", ErrInvalidMove, seat.strategy.Name(), move.CardIndex, move.StackIndex)
	}

	card := seat.hand[move.CardIndex]
	stack := &g.stacks[move.StackIndex]
	distance := stack.Distance(card)
	if err := stack.Add(card); err != nil {
		return err
	}
	seat.take(move.CardIndex)
	g.plays++
	if g.plays > deck.Count {
		return fmt.Errorf("placed %d cards from a %d card deck", g.plays, deck.Count)
	}

	g.logger.Debug("Card played", "player", seat.id, "card", card, "stack", move.StackIndex, "distance", distance)
	g.observer.CardPlayed(PlayEvent{
		Turn:       g.turns,
		Player:     seat.id,
		Card:       card,
		StackIndex: move.StackIndex,
		Stack:      *stack,
		Distance:   distance,
	})
	return nil
}

func (g *Game) finish(blocked int) Result {
	g.blocked = blocked
	g.state = Lost
	if g.Leftover() == 0 {
		g.state = Won
	}

	result := g.Result()
	g.logger.Debug("Game finished", "outcome", result.Outcome, "leftover", result.Leftover, "plays", result.Plays, "turns", result.Turns)
	g.observer.GameFinished(result)
	return result
}

// Result reports the game's current tally.
func (g *Game) Result() Result {
	blocked := g.blocked
	if g.state == Won {
		blocked = -1
	}
	return Result{
		Leftover:      g.Leftover(),
		Outcome:       g.state,
		Plays:         g.plays,
		Turns:         g.turns,
		BlockedPlayer: blocked,
		Seed:          g.seed,
	}
}

// Leftover counts the cards still in the deck or in any hand.
func (g *Game) Leftover() int {
	n := g.deck.Len()
	for _, seat := range g.seats {
		n += len(seat.hand)
	}
	return n
}

func (g *Game) State() State { return g.state }

// Stacks returns a copy of the play piles.
func (g *Game) Stacks() []Stack {
	out := make([]Stack, len(g.stacks))
	copy(out, g.stacks)
	return out
}

func (g *Game) Seats() []*Seat { return g.seats }

func (g *Game) Board() *PriorityBoard { return g.board }

func (g *Game) DeckSize() int { return g.deck.Len() }

// Plays returns the number of cards placed so far.
func (g *Game) Plays() int { return g.plays }
