package theory

import (
	"math"
	"sort"
)

// KeyCandidate is one scored guess produced by DetectKey.
type KeyCandidate struct {
	RootPC     int
	Mode       Mode
	Confidence float64
}

var modeOrderIndex = func() map[Mode]int {
	m := make(map[Mode]int, len(modeOrder))
	for i, mode := range modeOrder {
		m[mode] = i
	}
	return m
}()

// DetectKey scores every (root, mode) pair against the given MIDI pitches
// and returns up to 12 candidates sorted by confidence descending (spec
// §4.5). Confidence blends how much of the input the candidate scale
// explains (precision and recall over pitch classes) with a small tonic
// bonus for the candidate whose root matches the first pitch in the input
// — this is what lets DetectKey recover the tested root rather than one of
// its relative modes, which share an identical pitch-class set (e.g. C
// major and A natural minor) and would otherwise tie at confidence 1.0.
func DetectKey(pitches []int) []KeyCandidate {
	if len(pitches) == 0 {
		return nil
	}

	present := make(map[int]bool)
	for _, p := range pitches {
		present[mod12(p)] = true
	}
	presentCount := len(present)
	tonicPC := mod12(pitches[0])

	var cands []KeyCandidate
	for root := 0; root < 12; root++ {
		for _, mode := range modeOrder {
			scalePCs := Scale(root, mode)
			scaleSet := make(map[int]bool, len(scalePCs))
			for _, pc := range scalePCs {
				scaleSet[pc] = true
			}

			inside := 0
			for pc := range present {
				if scaleSet[pc] {
					inside++
				}
			}
			precision := float64(inside) / float64(presentCount)
			recall := float64(inside) / float64(len(scaleSet))
			base := (precision + recall) / 2

			bonus := 0.0
			if root == tonicPC {
				bonus = 1.0
			}
			confidence := base*0.9 + bonus*0.1

			cands = append(cands, KeyCandidate{RootPC: root, Mode: mode, Confidence: confidence})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if math.Abs(a.Confidence-b.Confidence) > 1e-9 {
			return a.Confidence > b.Confidence
		}
		if modeOrderIndex[a.Mode] != modeOrderIndex[b.Mode] {
			return modeOrderIndex[a.Mode] < modeOrderIndex[b.Mode]
		}
		return a.RootPC < b.RootPC
	})

	if len(cands) > 12 {
		cands = cands[:12]
	}
	return cands
}
