package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/nambule/audiomemorygame/constants"
)

// Card is one position on the board. ID is the stable position index used
// for selection; exactly two cards share each PairID, and SoundID mirrors
// PairID so a pair is identified by its tone.
type Card struct {
	ID        int
	PairID    int
	SoundID   int
	Flipped   bool
	Matched   bool
	FlipCount int
}

// Board is one dealt level. ID is a fresh generation token per deal;
// deferred callbacks carry it so a callback that outlived its board can
// detect staleness and discard itself.
type Board struct {
	ID    uuid.UUID
	Level int
	Cards []Card
}

// PairsForLevel returns the pair count for a level: level+1, capped at
// MaxPairs (an 8x8 deal of 64 cards)
func PairsForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	pairs := level + 1
	if pairs > constants.MaxPairs {
		pairs = constants.MaxPairs
	}
	return pairs
}

// NewBoard deals a shuffled board for the level. The shuffle is a uniform
// Fisher-Yates permutation from the supplied source, so seeded sources
// reproduce layouts exactly.
func NewBoard(level int, rng *rand.Rand) Board {
	pairs := PairsForLevel(level)
	cards := make([]Card, 0, pairs*2)
	for p := 0; p < pairs; p++ {
		cards = append(cards,
			Card{PairID: p, SoundID: p},
			Card{PairID: p, SoundID: p},
		)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].ID = i
	}

	return Board{ID: uuid.New(), Level: level, Cards: cards}
}

// card returns the addressable card at a position index, nil when out of range
func (b *Board) card(id int) *Card {
	if id < 0 || id >= len(b.Cards) {
		return nil
	}
	return &b.Cards[id]
}
