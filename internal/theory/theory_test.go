package theory

import (
	"math"
	"testing"
)

func TestNoteNameToPitchClass(t *testing.T) {
	cases := map[string]int{
		"C": 0, "c": 0, "C#": 1, "Db": 1, "D": 2, "E": 4, "F": 5,
		"F#": 6, "Gb": 6, "G": 7, "A": 9, "B": 11, "Cb": 11, "B#": 0,
	}
	for name, want := range cases {
		got, err := NoteNameToPitchClass(name)
		if err != nil {
			t.Fatalf("NoteNameToPitchClass(%q): unexpected error %v", name, err)
		}
		if got != want {
			t.Errorf("NoteNameToPitchClass(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestNoteNameToPitchClassInvalid(t *testing.T) {
	for _, name := range []string{"", "H", "C##", "123", "C natural"} {
		if _, err := NoteNameToPitchClass(name); err == nil {
			t.Errorf("NoteNameToPitchClass(%q): expected error, got nil", name)
		}
	}
}

func TestScaleMajor(t *testing.T) {
	got := Scale(0, Major)
	want := []int{0, 2, 4, 5, 7, 9, 11}
	if !intsEqual(got, want) {
		t.Fatalf("Scale(0, Major) = %v, want %v", got, want)
	}
}

func TestScaleTransposition(t *testing.T) {
	got := Scale(2, Major) // D major
	want := []int{2, 4, 6, 7, 9, 11, 1}
	if !intsEqual(got, want) {
		t.Fatalf("Scale(2, Major) = %v, want %v", got, want)
	}
}

func TestDetectKeyTopCandidateMatchesExactScale(t *testing.T) {
	for root := 0; root < 12; root++ {
		for _, mode := range modeOrder {
			scalePCs := Scale(root, mode)
			pitches := make([]int, len(scalePCs))
			for i, pc := range scalePCs {
				pitches[i] = 60 + pc
			}
			cands := DetectKey(pitches)
			if len(cands) == 0 {
				t.Fatalf("root=%d mode=%s: no candidates", root, mode)
			}
			top := cands[0]
			if top.RootPC != root || top.Mode != mode {
				t.Errorf("root=%d mode=%s: top candidate = (%d, %s, %.3f)", root, mode, top.RootPC, top.Mode, top.Confidence)
			}
			if top.Confidence < 0.9 {
				t.Errorf("root=%d mode=%s: confidence %.3f < 0.9", root, mode, top.Confidence)
			}
		}
	}
}

func TestDetectKeyCapsAtTwelveCandidates(t *testing.T) {
	cands := DetectKey([]int{60, 62, 64, 65, 67, 69, 71})
	if len(cands) > 12 {
		t.Fatalf("got %d candidates, want <= 12", len(cands))
	}
}

func TestDetectKeySortedDescending(t *testing.T) {
	cands := DetectKey([]int{60, 62, 64, 65, 67, 69, 71})
	for i := 1; i < len(cands); i++ {
		if cands[i].Confidence > cands[i-1].Confidence+1e-9 {
			t.Fatalf("candidates not sorted descending at index %d: %v", i, cands)
		}
	}
}

func TestChordProgressionPop(t *testing.T) {
	chords := ChordProgression(0, Major, "pop", 4)
	if len(chords) != 4 {
		t.Fatalf("got %d chords, want 4", len(chords))
	}
	wantDegrees := []int{0, 4, 5, 3}
	for i, c := range chords {
		if c.Degree != wantDegrees[i] {
			t.Errorf("chord %d: degree %d, want %d", i, c.Degree, wantDegrees[i])
		}
		if len(c.Pitches) != 3 {
			t.Errorf("chord %d: %d pitches, want 3", i, len(c.Pitches))
		}
		for j := 1; j < len(c.Pitches); j++ {
			if c.Pitches[j] <= c.Pitches[j-1] {
				t.Errorf("chord %d: pitches not ascending: %v", i, c.Pitches)
			}
		}
	}
}

func TestChordProgressionBluesFirstChordIsTonic(t *testing.T) {
	chords := ChordProgression(0, Mixolydian, "blues", 12)
	if len(chords) != 12 {
		t.Fatalf("got %d chords, want 12", len(chords))
	}
	if chords[0].Pitches[0]%12 != 0 {
		t.Errorf("first blues chord root pitch class = %d, want 0", chords[0].Pitches[0]%12)
	}
}

func TestSuggestTempoInterpolatesWithinRange(t *testing.T) {
	lo := SuggestTempo(120, "house", 0)
	hi := SuggestTempo(120, "house", 1)
	mid := SuggestTempo(120, "house", 0.5)

	if lo.SuggestedBPM != lo.MinBPM {
		t.Errorf("energy=0: got %v, want min %v", lo.SuggestedBPM, lo.MinBPM)
	}
	if hi.SuggestedBPM != hi.MaxBPM {
		t.Errorf("energy=1: got %v, want max %v", hi.SuggestedBPM, hi.MaxBPM)
	}
	wantMid := (lo.MinBPM + hi.MaxBPM) / 2
	if math.Abs(float64(mid.SuggestedBPM-wantMid)) > 0.01 {
		t.Errorf("energy=0.5: got %v, want ~%v", mid.SuggestedBPM, wantMid)
	}
}

func TestSuggestTempoClampsEnergy(t *testing.T) {
	over := SuggestTempo(120, "rock", 5)
	under := SuggestTempo(120, "rock", -5)
	if over.SuggestedBPM != over.MaxBPM {
		t.Errorf("energy>1 not clamped: got %v, want %v", over.SuggestedBPM, over.MaxBPM)
	}
	if under.SuggestedBPM != under.MinBPM {
		t.Errorf("energy<0 not clamped: got %v, want %v", under.SuggestedBPM, under.MinBPM)
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	notes := []Note{
		{Pitch: 60, Start: 0.13, Duration: 0.5},
		{Pitch: 62, Start: 1.74, Duration: 0.25},
		{Pitch: 64, Start: 3.99, Duration: 1.0},
	}
	once := Quantize(notes, 0.25)
	twice := Quantize(once, 0.25)
	for i := range once {
		if once[i].Start != twice[i].Start {
			t.Errorf("note %d: quantize not idempotent: %v != %v", i, once[i].Start, twice[i].Start)
		}
	}
}

func TestQuantizePreservesDuration(t *testing.T) {
	notes := []Note{{Pitch: 60, Start: 0.13, Duration: 0.73}}
	out := Quantize(notes, 0.25)
	if out[0].Duration != notes[0].Duration {
		t.Errorf("duration changed: got %v, want %v", out[0].Duration, notes[0].Duration)
	}
}

func TestFilterToScaleIsSubset(t *testing.T) {
	notes := []Note{
		{Pitch: 60}, // C, in C major
		{Pitch: 61}, // C#, not in C major
		{Pitch: 64}, // E, in C major
		{Pitch: 66}, // F#, not in C major
	}
	out := FilterToScale(notes, 0, Major)
	if len(out) != 2 {
		t.Fatalf("got %d notes, want 2", len(out))
	}
	scalePCs := Scale(0, Major)
	for _, n := range out {
		if !inScale(n.Pitch, scalePCs) {
			t.Errorf("note with pitch %d not in scale", n.Pitch)
		}
	}
}

func TestAnalyzeHarmonyScenario(t *testing.T) {
	// Scenario S7 (spec §8): C major scale, expect top key (C, major) with
	// confidence >= 0.9 and a 4-chord pop progression whose first chord
	// contains pitch class 0.
	pitches := []int{60, 62, 64, 65, 67, 69, 71}
	cands := DetectKey(pitches)
	if len(cands) == 0 || cands[0].RootPC != 0 || cands[0].Mode != Major {
		t.Fatalf("top candidate = %+v, want root=0 mode=major", cands[0])
	}
	if cands[0].Confidence < 0.9 {
		t.Fatalf("confidence %v < 0.9", cands[0].Confidence)
	}

	prog := ChordProgression(cands[0].RootPC, cands[0].Mode, "pop", 4)
	if len(prog) != 4 {
		t.Fatalf("got %d chords, want 4", len(prog))
	}
	found := false
	for _, p := range prog[0].Pitches {
		if p%12 == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("first chord %v does not contain pitch class 0", prog[0].Pitches)
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
