package theory

// Chord is a set of ascending MIDI pitches built by stacking thirds on a
// scale degree (spec §4.5).
type Chord struct {
	Degree int
	Pitches []int
}

// degreePatterns maps each progression style to a cycle of 0-based scale
// degrees (spec §4.5): pop is I-V-vi-IV, jazz is a ii-V-I cycle, blues is
// the standard 12-bar pattern (I-I-I-I-IV-IV-I-I-V-IV-I-I), minor is
// i-iv-V-i, folk is I-IV-V.
var degreePatterns = map[string][]int{
	"pop":   {0, 4, 5, 3},
	"jazz":  {1, 4, 0},
	"blues": {0, 0, 0, 0, 3, 3, 0, 0, 4, 3, 0, 0},
	"minor": {0, 3, 4, 0},
	"folk":  {0, 3, 4},
}

// baseOctavePitch anchors scale degree 0 near MIDI middle C (60).
const baseOctavePitch = 60

// ChordProgression builds bars chords by cycling style's degree pattern
// over the scale named by (rootPC, mode). An unknown style falls back to
// "pop"; an unknown mode yields no chords.
func ChordProgression(rootPC int, mode Mode, style string, bars int) []Chord {
	if bars <= 0 {
		return nil
	}
	scalePCs := Scale(rootPC, mode)
	if len(scalePCs) == 0 {
		return nil
	}
	pattern, ok := degreePatterns[style]
	if !ok {
		pattern = degreePatterns["pop"]
	}

	chords := make([]Chord, bars)
	for i := 0; i < bars; i++ {
		degree := pattern[i%len(pattern)]
		chords[i] = Chord{Degree: degree, Pitches: buildTriad(scalePCs, degree)}
	}
	return chords
}

// buildTriad stacks a root, third, and fifth from the scale's degrees,
// wrapping the scale as needed for scales shorter than 7 notes (the
// pentatonic and blues modes).
func buildTriad(scalePCs []int, degree int) []int {
	n := len(scalePCs)
	root := baseOctavePitch + mod12(scalePCs[degree%n])
	third := nextPitchAtOrAbove(root+1, scalePCs[(degree+2)%n])
	fifth := nextPitchAtOrAbove(third+1, scalePCs[(degree+4)%n])
	return []int{root, third, fifth}
}

// nextPitchAtOrAbove returns the smallest MIDI pitch >= floor whose pitch
// class is pc.
func nextPitchAtOrAbove(floor, pc int) int {
	pc = mod12(pc)
	p := floor
	for mod12(p) != pc {
		p++
	}
	return p
}
