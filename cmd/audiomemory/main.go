package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/nambule/audiomemorygame/audio"
	"github.com/nambule/audiomemorygame/config"
	"github.com/nambule/audiomemorygame/constants"
	"github.com/nambule/audiomemorygame/engine"
	"github.com/nambule/audiomemorygame/events"
	"github.com/nambule/audiomemorygame/render"
	"github.com/nambule/audiomemorygame/status"
)

var (
	debugFlag = flag.Bool("debug", false, "Enable file logging and the counter row")
	seedFlag  = flag.Int64("seed", 0, "Board shuffle seed (0 draws one from the clock)")
	levelFlag = flag.Int("level", 0, "Starting level, 1-31")
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
)

// App owns the terminal session and wires input, game state, audio, and
// rendering together. All state mutation happens on the run loop
// goroutine; the poller only forwards raw terminal events.
type App struct {
	cfg      *config.Config
	screen   tcell.Screen
	sound    *audio.Engine
	machine  *engine.Machine
	queue    *events.EventQueue
	pipeline *render.Pipeline
	view     render.View

	termEvents  chan tcell.Event
	lastButtons tcell.ButtonMask
}

func main() {
	// Panic recovery: restore the terminal before reporting
	var app *App
	defer func() {
		if r := recover(); r != nil {
			if app != nil {
				app.screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mAUDIO MEMORY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// Environment first, flags override
	cfg := config.Load()
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *levelFlag != 0 {
		cfg.StartLevel = *levelFlag
	}
	cfg.Normalize()

	// Resolve the seed once so the log line matches the deal
	cfg.Seed = cfg.EffectiveSeed()

	if logFile := setupLogging(cfg.Debug, cfg.LogLevel); logFile != nil {
		defer logFile.Close()
	}

	var err error
	app, err = newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}

func newApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	// A speaker that cannot be opened leaves the engine in silent mode
	sound := audio.NewEngine(audio.LoadAudioConfig())
	if err := sound.Start(); err != nil {
		log.Warn().Err(err).Msg("audio engine start failed")
	}
	if sound.IsSilent() {
		log.Warn().Err(audio.ErrNoSpeaker).Msg("continuing without audio")
	}
	if *muteFlag && !sound.IsMuted() {
		sound.ToggleMute()
	}

	queue := events.NewEventQueue()
	rng := rand.New(rand.NewSource(cfg.Seed))
	watch := engine.NewStopwatch(constants.TickInterval)
	machine := engine.NewMachine(rng, watch, engine.TimerScheduler{}, sound, queue)

	pipeline := render.NewPipeline()
	pipeline.Register(render.NewBoardRenderer(), render.PriorityBoard)
	pipeline.Register(render.NewStatusRenderer(), render.PriorityStatus)
	pipeline.Register(render.NewOverlayRenderer(), render.PriorityOverlay)
	pipeline.Register(render.NewDebugRenderer(cfg.Debug), render.PriorityDebug)

	return &App{
		cfg:        cfg,
		screen:     screen,
		sound:      sound,
		machine:    machine,
		queue:      queue,
		pipeline:   pipeline,
		view:       render.View{ShowHelp: true},
		termEvents: make(chan tcell.Event, 100),
	}, nil
}

func (a *App) run() {
	a.machine.StartLevel(a.cfg.StartLevel)
	log.Info().Int("level", a.cfg.StartLevel).Int64("seed", a.cfg.Seed).Msg("game started")

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			a.termEvents <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-a.termEvents:
			a.handleInput(ev)

		case <-ticker.C:
			if !a.drainQueue() {
				return
			}
			a.render()
		}
	}
}

func (a *App) cleanup() {
	a.sound.Stop()
	a.screen.Fini()
}

// handleInput translates one terminal event into queued game events
func (a *App) handleInput(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.pushInput(events.EventQuit, nil)
	case tcell.KeyUp:
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DY: -1})
	case tcell.KeyDown:
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DY: 1})
	case tcell.KeyLeft:
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DX: -1})
	case tcell.KeyRight:
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DX: 1})
	case tcell.KeyEnter:
		// Nil payload means the card under the cursor
		a.pushInput(events.EventSelectCard, nil)
	case tcell.KeyRune:
		a.handleRune(ev.Rune())
	}
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'q':
		a.pushInput(events.EventQuit, nil)
	case 'k':
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DY: -1})
	case 'j':
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DY: 1})
	case 'h':
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DX: -1})
	case 'l':
		a.pushInput(events.EventMoveCursor, &events.MoveCursorPayload{DX: 1})
	case ' ':
		a.pushInput(events.EventSelectCard, nil)
	case 'p':
		a.pushInput(events.EventTogglePause, nil)
	case 'm':
		a.pushInput(events.EventToggleMute, nil)
	case 'r':
		a.pushInput(events.EventResetLevel, nil)
	case 'R':
		a.pushInput(events.EventRestart, nil)
	case '-':
		a.pushInput(events.EventPreviousLevel, nil)
	}
}

// handleMouse turns a primary button press over a card into a selection
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	clicked := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = buttons
	if !clicked {
		return
	}

	x, y := ev.Position()
	snap := a.machine.Snapshot()
	width, height := a.screen.Size()
	g := render.Layout(len(snap.Cards), width, height)
	if id, ok := g.CellAt(x, y); ok {
		a.pushInput(events.EventSelectCard, &events.SelectCardPayload{CardID: id})
	}
}

func (a *App) pushInput(t events.EventType, payload any) {
	a.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: time.Now()})
}

// drainQueue applies all pending events in order. Returns false on quit.
func (a *App) drainQueue() bool {
	for _, ev := range a.queue.Consume() {
		if !a.dispatch(ev) {
			return false
		}
	}
	status.Set("events.dropped", int64(a.queue.Dropped()))
	return true
}

// dispatch applies one event to the machine, audio, and view state
func (a *App) dispatch(ev events.GameEvent) bool {
	if inputEvent(ev.Type) {
		a.view.ShowHelp = false
	}

	switch ev.Type {
	case events.EventQuit:
		log.Info().Msg("quit requested")
		return false

	case events.EventMoveCursor:
		if p, ok := ev.Payload.(*events.MoveCursorPayload); ok {
			a.moveCursor(p.DX, p.DY)
		}

	case events.EventSelectCard:
		snap := a.machine.Snapshot()
		width, height := a.screen.Size()
		g := render.Layout(len(snap.Cards), width, height)
		if p, ok := ev.Payload.(*events.SelectCardPayload); ok {
			// Mouse selection also pulls the cursor onto the card
			a.machine.Select(p.CardID)
			a.view.CursorX = p.CardID % g.Cols
			a.view.CursorY = p.CardID / g.Cols
		} else if id, ok := g.CardIndex(a.view.CursorX, a.view.CursorY); ok {
			a.machine.Select(id)
		}

	case events.EventTogglePause:
		if a.machine.Paused() {
			a.machine.Resume()
		} else {
			a.machine.Pause()
		}

	case events.EventToggleMute:
		audible := a.sound.ToggleMute()
		log.Info().Bool("audible", audible).Msg("mute toggled")

	case events.EventResetLevel:
		a.machine.ResetLevel()

	case events.EventPreviousLevel:
		a.machine.PreviousLevel()

	case events.EventRestart:
		a.machine.Restart()

	case events.EventBoardDealt:
		// Fresh board, cursor back to the first card
		a.view.CursorX = 0
		a.view.CursorY = 0
		if p, ok := ev.Payload.(*events.BoardDealtPayload); ok {
			log.Info().Int("level", p.Level).Int("pairs", p.Pairs).Msg("board dealt")
		}

	case events.EventMatchFound:
		a.sound.PlayMatch()

	case events.EventMismatch:
		a.sound.PlayMismatch()

	case events.EventLevelCleared:
		a.sound.PlayLevelUp()
		if p, ok := ev.Payload.(*events.LevelClearedPayload); ok {
			log.Info().Int("level", p.Level).Int("score", p.Score).Msg("level cleared")
		}

	case events.EventGameOver:
		a.sound.PlayGameOver()
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			log.Info().Int("card", p.CardID).Msg("flip limit reached")
		}

	case events.EventGameComplete:
		a.sound.PlayLevelUp()
		if p, ok := ev.Payload.(*events.GameCompletePayload); ok {
			log.Info().Int("score", p.Score).Msg("game complete")
		}
	}

	return true
}

// moveCursor steps the cursor within the grid, clamping at the edges and
// holding it on occupied cells of a partial last row
func (a *App) moveCursor(dx, dy int) {
	snap := a.machine.Snapshot()
	width, height := a.screen.Size()
	g := render.Layout(len(snap.Cards), width, height)
	if g.Cols == 0 || g.Rows == 0 {
		return
	}

	x := a.view.CursorX + dx
	y := a.view.CursorY + dy
	if x < 0 {
		x = 0
	}
	if x >= g.Cols {
		x = g.Cols - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.Rows {
		y = g.Rows - 1
	}
	if y == g.Rows-1 {
		if last := (g.Cards - 1) % g.Cols; x > last {
			x = last
		}
	}

	a.view.CursorX = x
	a.view.CursorY = y
}

func (a *App) render() {
	snap := a.machine.Snapshot()
	a.view.Muted = a.sound.IsMuted()
	a.view.Silent = a.sound.IsSilent()
	a.pipeline.RenderFrame(a.screen, snap, a.view)
	status.Incr("frames.rendered")
}

// inputEvent reports whether an event originated from the player
func inputEvent(t events.EventType) bool {
	switch t {
	case events.EventSelectCard, events.EventMoveCursor, events.EventTogglePause,
		events.EventResetLevel, events.EventPreviousLevel, events.EventRestart,
		events.EventToggleMute, events.EventQuit:
		return true
	}
	return false
}
