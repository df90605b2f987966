// Package theory is a pure, stateless music-theory library: scales, key
// detection, chord progressions, tempo suggestion, quantization, and
// scale filtering (spec §4.5). Nothing here touches the network or the
// DAW — it is called directly by internal/usecase for analyze_harmony,
// analyze_tempo, and add_notes.
package theory

// Mode names a scale pattern by the interval sequence from its root.
type Mode string

const (
	Major           Mode = "major"
	Minor           Mode = "minor"
	Dorian          Mode = "dorian"
	Phrygian        Mode = "phrygian"
	Lydian          Mode = "lydian"
	Mixolydian      Mode = "mixolydian"
	Locrian         Mode = "locrian"
	HarmonicMinor   Mode = "harmonic_minor"
	MelodicMinor    Mode = "melodic_minor"
	PentatonicMajor Mode = "pentatonic_major"
	PentatonicMinor Mode = "pentatonic_minor"
	Blues           Mode = "blues"
	Chromatic       Mode = "chromatic"
)

// modeOrder fixes the tie-break order used by DetectKey: earlier modes in
// this list win confidence ties (spec §4.5).
var modeOrder = []Mode{
	Major, Minor, Dorian, Phrygian, Lydian, Mixolydian, Locrian,
	HarmonicMinor, MelodicMinor, PentatonicMajor, PentatonicMinor, Blues, Chromatic,
}

// intervals maps each mode to its pitch-class offsets from the root.
var intervals = map[Mode][]int{
	Major:           {0, 2, 4, 5, 7, 9, 11},
	Minor:           {0, 2, 3, 5, 7, 8, 10},
	Dorian:          {0, 2, 3, 5, 7, 9, 10},
	Phrygian:        {0, 1, 3, 5, 7, 8, 10},
	Lydian:          {0, 2, 4, 6, 7, 9, 11},
	Mixolydian:      {0, 2, 4, 5, 7, 9, 10},
	Locrian:         {0, 1, 3, 5, 6, 8, 10},
	HarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	PentatonicMajor: {0, 2, 4, 7, 9},
	PentatonicMinor: {0, 3, 5, 7, 10},
	Blues:           {0, 3, 5, 6, 7, 10},
	Chromatic:       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// mod12 normalizes an integer pitch class into [0, 11], handling negatives.
func mod12(pc int) int {
	pc %= 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// Scale returns the pitch classes (0-11) of the named scale rooted at
// rootPC, in ascending order starting from the root. Unknown modes return
// nil.
func Scale(rootPC int, mode Mode) []int {
	ivs, ok := intervals[mode]
	if !ok {
		return nil
	}
	rootPC = mod12(rootPC)
	out := make([]int, len(ivs))
	for i, iv := range ivs {
		out[i] = mod12(rootPC + iv)
	}
	return out
}

// inScale reports whether pc (any integer pitch class, mod 12) is a member
// of the given scale's pitch-class set.
func inScale(pc int, scalePCs []int) bool {
	pc = mod12(pc)
	for _, s := range scalePCs {
		if s == pc {
			return true
		}
	}
	return false
}
