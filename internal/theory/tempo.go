package theory

// TempoSuggestionResult is the result of SuggestTempo: a genre-typical BPM
// range plus one suggested value interpolated by energy (spec §4.5).
type TempoSuggestionResult struct {
	MinBPM        float32
	MaxBPM        float32
	SuggestedBPM  float32
	EnergyLevel   float32
}

// genreRanges gives the representative BPM range per genre (spec §4.5).
var genreRanges = map[string][2]float32{
	"ballad":  {60, 80},
	"lofi":    {70, 90},
	"hiphop":  {85, 95},
	"rock":    {110, 140},
	"pop":     {100, 130},
	"house":   {120, 130},
	"techno":  {125, 150},
	"dnb":     {160, 180},
	"trap":    {130, 160},
}

// defaultGenreRange is used for an unrecognized genre, spanning a broad
// general-purpose range rather than failing the call.
var defaultGenreRange = [2]float32{80, 140}

// SuggestTempo linearly interpolates a suggested BPM within genre's range
// by energy (clamped to [0, 1]); currentBPM is accepted but only
// informational, letting the use-case layer report how far the song's
// tempo sits from the suggestion.
func SuggestTempo(currentBPM float32, genre string, energy float32) TempoSuggestionResult {
	if energy < 0 {
		energy = 0
	}
	if energy > 1 {
		energy = 1
	}

	r, ok := genreRanges[genre]
	if !ok {
		r = defaultGenreRange
	}

	suggested := r[0] + (r[1]-r[0])*energy
	return TempoSuggestionResult{
		MinBPM:       r[0],
		MaxBPM:       r[1],
		SuggestedBPM: suggested,
		EnergyLevel:  energy,
	}
}
