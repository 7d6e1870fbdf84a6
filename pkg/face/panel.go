package face

import (
	"fmt"
	"strconv"
	"strings"
)

// MatrixSize is the row and column count of every LED panel.
const MatrixSize = 8

// Panel counts per category.
const (
	EyePanels   = 2
	NosePanels  = 1
	MouthPanels = 4

	// PanelCount is the total number of panels on a face.
	PanelCount = EyePanels + NosePanels + MouthPanels
)

// Category identifies which part of the face a panel belongs to.
type Category int

const (
	Eye Category = iota
	Nose
	Mouth
)

var categoryNames = map[Category]string{
	Eye:   "eye",
	Nose:  "nose",
	Mouth: "mouth",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Count returns how many panels exist in the category.
func (c Category) Count() int {
	switch c {
	case Eye:
		return EyePanels
	case Nose:
		return NosePanels
	case Mouth:
		return MouthPanels
	}
	return 0
}

// PanelID addresses one panel by category and index within that category.
type PanelID struct {
	Category Category
	Index    int
}

// Convenience identifiers for every panel on the face.
var (
	EyeLeft  = PanelID{Eye, 0}
	EyeRight = PanelID{Eye, 1}
	NoseID   = PanelID{Nose, 0}
)

// MouthID returns the identifier of mouth panel i.
func MouthID(i int) PanelID {
	return PanelID{Mouth, i}
}

// Valid reports whether the identifier names an existing panel.
func (p PanelID) Valid() bool {
	return p.Index >= 0 && p.Index < p.Category.Count()
}

// String renders the identifier as eye[0], nose or mouth[3].
func (p PanelID) String() string {
	if p.Category == Nose {
		return "nose"
	}
	return fmt.Sprintf("%s[%d]", p.Category, p.Index)
}

// Panels returns every panel in hit-test priority order:
// eye[0], eye[1], nose, mouth[0..3].
func Panels() []PanelID {
	ids := make([]PanelID, 0, PanelCount)
	for i := 0; i < EyePanels; i++ {
		ids = append(ids, PanelID{Eye, i})
	}
	ids = append(ids, NoseID)
	for i := 0; i < MouthPanels; i++ {
		ids = append(ids, MouthID(i))
	}
	return ids
}

// ParsePanelID accepts eye0, eye[1], nose, nose[0], mouth2 and mouth[2].
func ParsePanelID(s string) (PanelID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	idx := ""
	if open := strings.IndexByte(name, '['); open >= 0 {
		if !strings.HasSuffix(name, "]") {
			return PanelID{}, fmt.Errorf("face: malformed panel %q", s)
		}
		idx = name[open+1 : len(name)-1]
		name = name[:open]
	} else {
		cut := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
		if cut >= 0 {
			idx = name[cut:]
			name = name[:cut]
		}
	}

	var id PanelID
	switch name {
	case "eye":
		id.Category = Eye
	case "nose":
		id.Category = Nose
	case "mouth":
		id.Category = Mouth
	default:
		return PanelID{}, fmt.Errorf("face: unknown panel %q", s)
	}

	if idx == "" {
		if id.Category != Nose {
			return PanelID{}, fmt.Errorf("face: panel %q needs an index", s)
		}
		return id, nil
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return PanelID{}, fmt.Errorf("face: bad panel index in %q: %w", s, err)
	}
	id.Index = n
	if !id.Valid() {
		return PanelID{}, fmt.Errorf("face: %w: %s", ErrOutOfRange, id)
	}
	return id, nil
}
