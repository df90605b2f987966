package usecase

import (
	"context"
	"math"

	"dawbridge/internal/gateway"
	"dawbridge/internal/theory"
)

// AddNotesParams is the tagged argument set for add_notes (spec §4.6). The
// source tool takes a duck-typed bag of optional fields; here it is a
// concrete struct, per the REDESIGN FLAGS note on enumerated actions.
type AddNotesParams struct {
	TrackID       int
	ClipID        int // scene index
	Notes         []gateway.Note
	Quantize      bool
	QuantizeValue float32
	ScaleFilter   string // "" disables filtering
	RootNote      int
}

// AddNotes ensures a clip exists at the target slot (creating one sized to
// fit the input notes if necessary), optionally quantizes and scale-filters
// the notes, then writes them in one flat /clip/add/notes call (spec
// §4.6).
func AddNotes(ctx context.Context, gw *gateway.Gateway, p AddNotesParams) Result {
	slot, err := gw.GetClipSlot(ctx, p.TrackID, p.ClipID)
	if err != nil {
		return errResult(err)
	}
	if !slot.HasClip {
		length := defaultClipLength(p.Notes)
		if err := gw.CreateClip(p.TrackID, p.ClipID, length); err != nil {
			return errResult(err)
		}
	}

	notes := toTheoryNotes(p.Notes)
	if p.Quantize {
		grid := p.QuantizeValue
		if grid <= 0 {
			grid = 0.25
		}
		notes = theory.Quantize(notes, grid)
	}
	if p.ScaleFilter != "" {
		notes = theory.FilterToScale(notes, p.RootNote, theory.Mode(p.ScaleFilter))
	}

	if err := gw.AddNotes(p.TrackID, p.ClipID, fromTheoryNotes(notes)); err != nil {
		return errResult(err)
	}
	return ok("notes added", map[string]any{"count": len(notes)})
}

// defaultClipLength derives a clip length, in beats, from the furthest
// note end, rounded up to the next whole bar (4 beats) — spec §4.6.
func defaultClipLength(notes []gateway.Note) float32 {
	var maxEnd float32
	for _, n := range notes {
		if end := n.Start + n.Duration; end > maxEnd {
			maxEnd = end
		}
	}
	const bar = 4.0
	bars := math.Ceil(float64(maxEnd) / bar)
	if bars < 1 {
		bars = 1
	}
	return float32(bars) * bar
}

func toTheoryNotes(notes []gateway.Note) []theory.Note {
	out := make([]theory.Note, len(notes))
	for i, n := range notes {
		out[i] = theory.Note{Pitch: n.Pitch, Start: n.Start, Duration: n.Duration, Velocity: n.Velocity, Muted: n.Muted}
	}
	return out
}

func fromTheoryNotes(notes []theory.Note) []gateway.Note {
	out := make([]gateway.Note, len(notes))
	for i, n := range notes {
		out[i] = gateway.Note{Pitch: n.Pitch, Start: n.Start, Duration: n.Duration, Velocity: n.Velocity, Muted: n.Muted}
	}
	return out
}

// AnalyzeHarmony runs key detection locally over the given pitches and,
// if requested, appends a chord progression built on the top candidate
// key (spec §4.6, §8 scenario S7).
func AnalyzeHarmony(pitches []int, suggestProgressions bool, genre string) Result {
	candidates := theory.DetectKey(pitches)
	if len(candidates) == 0 {
		return fail(ErrCodeValidation, "no pitches to analyze")
	}

	data := map[string]any{"candidates": candidates}
	if suggestProgressions {
		top := candidates[0]
		style := genre
		if style == "" {
			style = "pop"
		}
		data["progression"] = theory.ChordProgression(top.RootPC, top.Mode, style, 4)
	}
	return ok("harmony analyzed", data)
}

// AnalyzeTempo is a pure local call into theory.SuggestTempo (spec §4.6).
func AnalyzeTempo(currentBPM float32, genre string, energy float32) Result {
	return ok("tempo analyzed", theory.SuggestTempo(currentBPM, genre, energy))
}
