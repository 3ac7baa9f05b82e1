// Package game implements the rules engine for The Game, a cooperative card
// game where players try to place a 97 card deck onto four stacks.
//
// # Rules
//
// Two stacks ascend from 1 and two descend from 99. A card may be placed on
// an ascending stack if it is higher than the top card, or exactly 10 lower
// (a back-step); descending stacks mirror this. Each turn a player places two
// cards, or one once the deck is empty, then draws back up. The game ends
// when a player cannot place a card; the score is the number of cards left.
//
// # Basic Usage
//
//	g, err := game.New(game.Config{
//	    Players:  5,
//	    Strategy: bot.Factory(bot.Priority, logger),
//	    Seed:     42,
//	})
//	result, err := g.Play(ctx)
//	if result.Won() { ... }
//
// A Game can be reused: call Reseed and Reset between plays.
//
// # Coordination
//
// Players do not talk to each other. Priority aware strategies instead flag
// stacks they want to back-step on in a shared PriorityBoard. Each player
// receives a ClaimHandle that can only write its own claims, while reads
// cover the whole board.
package game
