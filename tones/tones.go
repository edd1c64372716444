// Package tones maps card sound identifiers onto a fixed musical scale.
// Pairs are told apart by pitch alone, so the scale spans two octaves of
// C major: adjacent sound ids sit a full scale step apart, wide enough
// to discriminate by ear.
package tones

import "math"

// midiLadder lists the scale notes as MIDI numbers, C4 through D6 diatonic
var midiLadder = [16]int{60, 62, 64, 65, 67, 69, 71, 72, 74, 76, 77, 79, 81, 83, 84, 86}

// noteNames aligns index-for-index with midiLadder
var noteNames = [16]string{
	"C4", "D4", "E4", "F4", "G4", "A4", "B4",
	"C5", "D5", "E5", "F5", "G5", "A5", "B5",
	"C6", "D6",
}

// Frequencies contains precomputed frequencies for the scale ladder
// A4 (MIDI note 69) = 440Hz, equal temperament
var Frequencies [16]float64

func init() {
	for i, n := range midiLadder {
		Frequencies[i] = 440.0 * math.Exp2((float64(n)-69.0)/12.0)
	}
}

// ForSound returns the tone frequency in Hz for a card sound id.
// Ids beyond the ladder wrap around; the mapping is total over all integers.
func ForSound(soundID int) float64 {
	return Frequencies[index(soundID)]
}

// NoteName returns the scale note name for a card sound id, e.g. "C4".
func NoteName(soundID int) string {
	return noteNames[index(soundID)]
}

func index(soundID int) int {
	i := soundID % len(Frequencies)
	if i < 0 {
		i += len(Frequencies)
	}
	return i
}
