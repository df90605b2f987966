package theory

import (
	"fmt"
	"strings"
)

var letterPC = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteNameToPitchClass parses a note name (a letter A-G optionally
// followed by a single # or b) into its pitch class in [0, 11] (spec
// §4.5). Anything else is a validation error.
func NoteNameToPitchClass(name string) (int, error) {
	name = strings.TrimSpace(name)
	if len(name) < 1 || len(name) > 2 {
		return 0, fmt.Errorf("note name %q: must be a letter A-G optionally followed by # or b", name)
	}

	letter := byte(0)
	if name[0] >= 'a' && name[0] <= 'g' {
		letter = name[0] - 'a' + 'A'
	} else if name[0] >= 'A' && name[0] <= 'G' {
		letter = name[0]
	} else {
		return 0, fmt.Errorf("note name %q: must start with a letter A-G", name)
	}
	pc := letterPC[letter]

	if len(name) == 2 {
		switch name[1] {
		case '#':
			pc = mod12(pc + 1)
		case 'b':
			pc = mod12(pc - 1)
		default:
			return 0, fmt.Errorf("note name %q: accidental must be # or b", name)
		}
	}
	return pc, nil
}
