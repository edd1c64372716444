package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nambule/audiomemorygame/constants"
	"github.com/nambule/audiomemorygame/events"
	"github.com/nambule/audiomemorygame/status"
	"github.com/nambule/audiomemorygame/tones"
)

// TonePlayer is the audio seam. A tone is fire-and-forget: implementations
// must not block, and playback failure never reaches game state.
type TonePlayer interface {
	PlayTone(freq float64)
}

// Machine owns all game state and serializes every transition behind one
// mutex. External input arrives through the operation methods; deferred
// transitions re-enter through Scheduler callbacks, which present the
// board token they were scheduled under and discard themselves when the
// board has been replaced.
type Machine struct {
	mu sync.Mutex

	// ===== Board =====
	board   Board
	level   int
	pairs   int
	matched int

	// ===== Round =====
	moves     int
	firstPick int
	checking  bool

	// ===== Flow =====
	paused       bool
	startPending bool
	gameOver     bool
	gameComplete bool

	// ===== Score =====
	bestScore    int
	hasBestScore bool

	// ===== Collaborators =====
	rng   *rand.Rand
	watch *Stopwatch
	sched Scheduler
	tone  TonePlayer
	queue *events.EventQueue

	// Cached metric pointers
	statRounds     *atomic.Int64
	statMatches    *atomic.Int64
	statMismatches *atomic.Int64
	statVoids      *atomic.Int64
	statLevels     *atomic.Int64
}

// NewMachine wires the state machine to its collaborators. A nil rng gets
// a time-seeded source; a nil tone player or queue disables that output.
// The machine is idle until the first StartLevel.
func NewMachine(rng *rand.Rand, watch *Stopwatch, sched Scheduler, tone TonePlayer, queue *events.EventQueue) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{
		level:     1,
		firstPick: -1,
		rng:       rng,
		watch:     watch,
		sched:     sched,
		tone:      tone,
		queue:     queue,

		statRounds:     status.Default.Counter("game.rounds"),
		statMatches:    status.Default.Counter("game.matches"),
		statMismatches: status.Default.Counter("game.mismatches"),
		statVoids:      status.Default.Counter("game.voids"),
		statLevels:     status.Default.Counter("game.levels"),
	}
}

// StartLevel deals a fresh board for the level, resets round state and the
// timer, clears terminal flags and pause, and schedules the timer start
// after the settle window. Selection during the settle window is legal.
func (m *Machine) StartLevel(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startLevelLocked(level)
}

// startLevelLocked is the deal core shared by every operation that replaces
// the board. Callers hold mu; a deferred callback must run its board token
// check and this core inside the same critical section.
func (m *Machine) startLevelLocked(level int) {
	if level < 1 {
		level = 1
	}
	if level > constants.MaxLevel {
		level = constants.MaxLevel
	}

	m.board = NewBoard(level, m.rng)
	m.level = level
	m.pairs = PairsForLevel(level)
	m.matched = 0
	m.moves = 0
	m.firstPick = -1
	m.checking = false
	m.paused = false
	m.startPending = false
	m.gameOver = false
	m.gameComplete = false
	m.watch.Stop()
	m.watch.Reset()
	boardID := m.board.ID

	m.push(events.EventBoardDealt, &events.BoardDealtPayload{Level: level, Pairs: m.pairs})

	m.sched.After(constants.SettleDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.board.ID != boardID {
			return
		}
		if m.paused {
			m.startPending = true
			return
		}
		m.watch.Start()
	})
}

// Select reveals the card at a position index. Illegal selections are
// silent no-ops: they are user races against feedback latency, not
// failures.
func (m *Machine) Select(id int) {
	m.mu.Lock()
	if m.paused || m.gameOver || m.gameComplete || m.checking {
		m.mu.Unlock()
		return
	}
	c := m.board.card(id)
	if c == nil || c.Flipped || c.Matched {
		m.mu.Unlock()
		return
	}

	c.Flipped = true
	c.FlipCount++
	soundID := c.SoundID

	if m.firstPick < 0 {
		m.firstPick = id
		m.mu.Unlock()
		m.playTone(soundID)
		return
	}

	// Second card completes a comparison round; resolution is deferred
	first := m.firstPick
	m.firstPick = -1
	m.checking = true
	m.moves++
	m.statRounds.Add(1)
	boardID := m.board.ID
	m.mu.Unlock()

	m.playTone(soundID)
	m.sched.After(constants.ResolveDelay, func() {
		m.resolve(boardID, first, id)
	})
}

// resolve applies the outcome of a comparison round. The flip-count check
// runs before the sound comparison: the flip that reached the limit loses
// the game even when the sounds match.
func (m *Machine) resolve(boardID uuid.UUID, firstID, secondID int) {
	m.mu.Lock()
	if m.board.ID != boardID {
		m.mu.Unlock()
		return
	}

	first := m.board.card(firstID)
	second := m.board.card(secondID)
	if first == nil || second == nil {
		m.mu.Unlock()
		return
	}

	m.checking = false

	if first.FlipCount >= constants.MaxFlips || second.FlipCount >= constants.MaxFlips {
		offender := secondID
		if first.FlipCount >= constants.MaxFlips {
			offender = firstID
		}
		m.gameOver = true
		m.watch.Stop()
		m.statVoids.Add(1)
		m.mu.Unlock()

		m.push(events.EventGameOver, &events.GameOverPayload{CardID: offender})
		return
	}

	if first.SoundID != second.SoundID {
		// Mismatch: face down again, flip counts stand
		first.Flipped = false
		second.Flipped = false
		m.statMismatches.Add(1)
		m.mu.Unlock()

		m.push(events.EventMismatch, nil)
		return
	}

	first.Matched = true
	second.Matched = true
	m.matched++
	m.statMatches.Add(1)

	if m.matched < m.pairs {
		m.mu.Unlock()
		m.push(events.EventMatchFound, nil)
		return
	}

	// Level cleared: stop the clock, settle the score
	m.watch.Stop()
	score := m.moves + m.watch.Seconds()
	if !m.hasBestScore || score < m.bestScore {
		m.bestScore = score
		m.hasBestScore = true
	}
	m.statLevels.Add(1)
	level := m.level

	if level >= constants.MaxLevel {
		m.gameComplete = true
		m.mu.Unlock()

		m.push(events.EventGameComplete, &events.GameCompletePayload{Score: score})
		return
	}
	m.mu.Unlock()

	m.push(events.EventLevelCleared, &events.LevelClearedPayload{Level: level, Score: score})

	m.sched.After(constants.AdvanceDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.board.ID != boardID {
			return
		}
		m.startLevelLocked(level + 1)
	})
}

// ResetLevel redeals the current level, discarding round state and timer
func (m *Machine) ResetLevel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startLevelLocked(m.level)
}

// PreviousLevel steps back one level. At level 1 it does nothing.
func (m *Machine) PreviousLevel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.level <= 1 {
		return
	}
	m.startLevelLocked(m.level - 1)
}

// Restart begins a fresh game: level 1, best score cleared
func (m *Machine) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bestScore = 0
	m.hasBestScore = false
	m.startLevelLocked(1)
}

// Pause blocks card selection and freezes the timer. No-op once a
// terminal flag is set.
func (m *Machine) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paused || m.gameOver || m.gameComplete {
		return
	}
	m.paused = true
	m.watch.Pause()
}

// Resume lifts a pause. A timer start that came due during the pause
// fires now, from zero.
func (m *Machine) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.paused {
		return
	}
	m.paused = false
	if m.startPending {
		m.startPending = false
		m.watch.Start()
		return
	}
	m.watch.Resume()
}

// Paused reports the explicit pause flag
func (m *Machine) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

// Snapshot returns a consistent copy of the observable state
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := make([]Card, len(m.board.Cards))
	copy(cards, m.board.Cards)

	return Snapshot{
		Level:        m.level,
		Pairs:        m.pairs,
		Matched:      m.matched,
		Moves:        m.moves,
		Seconds:      m.watch.Seconds(),
		BestScore:    m.bestScore,
		HasBestScore: m.hasBestScore,
		Cards:        cards,
		FirstPick:    m.firstPick,
		Checking:     m.checking,
		Paused:       m.paused,
		GameOver:     m.gameOver,
		GameComplete: m.gameComplete,
		TimerRunning: m.watch.Running(),
		BoardID:      m.board.ID,
	}
}

func (m *Machine) playTone(soundID int) {
	if m.tone == nil {
		return
	}
	m.tone.PlayTone(tones.ForSound(soundID))
}

func (m *Machine) push(t events.EventType, payload any) {
	if m.queue == nil {
		return
	}
	m.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: time.Now()})
}
