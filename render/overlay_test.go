package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nambule/audiomemorygame/constants"
)

func TestOverlayHiddenDuringPlay(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	NewOverlayRenderer().Render(screen, testSnapshot(4), View{})

	for _, text := range []string{"PAUSED", "GAME OVER", "GAME COMPLETE", "AUDIO MEMORY"} {
		if screenContains(screen, text) {
			t.Errorf("Expected no overlay during play, found %q", text)
		}
	}
}

func TestOverlayPaused(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	snap := testSnapshot(4)
	snap.Paused = true
	NewOverlayRenderer().Render(screen, snap, View{})

	if !screenContains(screen, "PAUSED") {
		t.Fatal("Expected pause overlay title")
	}
	if !screenContains(screen, "p resume   q quit") {
		t.Error("Expected pause overlay key hints")
	}

	// Title is centered: 6 runes on an 80 column screen
	y := (24 - 3) / 2
	if col := findText(screen, y, "PAUSED"); col != 37 {
		t.Errorf("Expected centered title at column 37, got %d", col)
	}
}

func TestOverlayGameOver(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	// 6 cards sit on a 3 column grid; card 4 is row 2, column 2
	snap := testSnapshot(6)
	snap.GameOver = true
	snap.Cards[4].Flipped = true
	snap.Cards[4].FlipCount = constants.MaxFlips
	NewOverlayRenderer().Render(screen, snap, View{})

	if !screenContains(screen, "GAME OVER") {
		t.Fatal("Expected game over overlay title")
	}
	if !screenContains(screen, "card at row 2, column 2 hit the flip limit") {
		t.Error("Expected the offending card to be named by position")
	}
	if !screenContains(screen, "r retry level   R restart   q quit") {
		t.Error("Expected game over key hints")
	}
}

func TestOverlayGameComplete(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	snap := testSnapshot(64)
	snap.GameComplete = true
	snap.BestScore = 42
	snap.HasBestScore = true
	NewOverlayRenderer().Render(screen, snap, View{})

	if !screenContains(screen, "GAME COMPLETE") {
		t.Fatal("Expected game complete overlay title")
	}
	if !screenContains(screen, "every level cleared, final score 42") {
		t.Error("Expected the final score line")
	}
	if !screenContains(screen, "R restart   q quit") {
		t.Error("Expected game complete key hints")
	}
}

func TestOverlayHelp(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	NewOverlayRenderer().Render(screen, testSnapshot(4), View{ShowHelp: true})

	for _, text := range []string{
		"AUDIO MEMORY",
		"match the pairs by their tones",
		"arrows/hjkl  move cursor",
		"enter/space  reveal card",
	} {
		if !screenContains(screen, text) {
			t.Errorf("Expected help overlay to show %q", text)
		}
	}
}

// TestOverlayPrecedence verifies only the most urgent overlay draws
func TestOverlayPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		paused   bool
		gameOver bool
		complete bool
		showHelp bool
		expected string
		absent   []string
	}{
		{
			name:     "Complete outranks everything",
			paused:   true,
			gameOver: true,
			complete: true,
			showHelp: true,
			expected: "GAME COMPLETE",
			absent:   []string{"GAME OVER", "PAUSED", "AUDIO MEMORY"},
		},
		{
			name:     "Game over outranks paused",
			paused:   true,
			gameOver: true,
			expected: "GAME OVER",
			absent:   []string{"PAUSED"},
		},
		{
			name:     "Paused outranks help",
			paused:   true,
			showHelp: true,
			expected: "PAUSED",
			absent:   []string{"AUDIO MEMORY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := tcell.NewSimulationScreen("UTF-8")
			screen.Init()
			defer screen.Fini()
			screen.SetSize(80, 24)

			snap := testSnapshot(4)
			snap.Paused = tt.paused
			snap.GameOver = tt.gameOver
			snap.GameComplete = tt.complete
			NewOverlayRenderer().Render(screen, snap, View{ShowHelp: tt.showHelp})

			if !screenContains(screen, tt.expected) {
				t.Fatalf("Expected overlay %q", tt.expected)
			}
			for _, text := range tt.absent {
				if screenContains(screen, text) {
					t.Errorf("Expected %q to be absent", text)
				}
			}
		})
	}
}
