package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSelectCard requests revealing a card
	// Trigger: Enter/space on the cursor card, mouse click on a card
	// Consumer: app loop -> Machine.Select | Payload: *SelectCardPayload
	EventSelectCard EventType = iota

	// EventMoveCursor moves the board cursor
	// Trigger: arrow keys, hjkl
	// Consumer: app loop cursor state | Payload: *MoveCursorPayload
	EventMoveCursor

	// EventTogglePause flips between paused and playing
	// Trigger: p key
	// Consumer: app loop -> Machine.Pause/Resume | Payload: nil
	EventTogglePause

	// EventResetLevel redeals the current level
	// Trigger: r key
	// Consumer: app loop -> Machine.ResetLevel | Payload: nil
	EventResetLevel

	// EventPreviousLevel steps back one level
	// Trigger: - key
	// Consumer: app loop -> Machine.PreviousLevel | Payload: nil
	EventPreviousLevel

	// EventRestart begins a fresh game at level 1, clearing the best score
	// Trigger: R key
	// Consumer: app loop -> Machine.Restart | Payload: nil
	EventRestart

	// EventToggleMute flips audio mute
	// Trigger: m key
	// Consumer: app loop -> audio engine | Payload: nil
	EventToggleMute

	// EventQuit requests shutdown
	// Trigger: q, Esc, Ctrl-C
	// Consumer: app loop | Payload: nil
	EventQuit

	// EventBoardDealt signals a fresh board is live
	// Trigger: Machine.StartLevel
	// Consumer: app loop (cursor clamp, logging) | Payload: *BoardDealtPayload
	EventBoardDealt

	// EventMatchFound signals a resolved matching round
	// Trigger: round resolution with equal sound ids
	// Consumer: app loop -> match cue | Payload: nil
	EventMatchFound

	// EventMismatch signals a resolved non-matching round
	// Trigger: round resolution with differing sound ids
	// Consumer: app loop -> mismatch cue | Payload: nil
	EventMismatch

	// EventLevelCleared signals all pairs on the board matched
	// Trigger: final match of a level below the cap
	// Consumer: app loop -> level-up cue | Payload: *LevelClearedPayload
	EventLevelCleared

	// EventGameOver signals a flip-limit loss
	// Trigger: round resolution with a card at the flip limit
	// Consumer: app loop -> game-over cue | Payload: *GameOverPayload
	EventGameOver

	// EventGameComplete signals the last level cleared
	// Trigger: final match on the final level
	// Consumer: app loop -> completion cue | Payload: *GameCompletePayload
	EventGameComplete
)

// SelectCardPayload carries the card position index to reveal
type SelectCardPayload struct {
	CardID int
}

// MoveCursorPayload carries a cursor step in grid cells
type MoveCursorPayload struct {
	DX int
	DY int
}

// BoardDealtPayload describes a freshly generated board
type BoardDealtPayload struct {
	Level int
	Pairs int
}

// LevelClearedPayload carries the completed level and its score
type LevelClearedPayload struct {
	Level int
	Score int
}

// GameOverPayload identifies the card that hit the flip limit
type GameOverPayload struct {
	CardID int
}

// GameCompletePayload carries the final level's score
type GameCompletePayload struct {
	Score int
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
