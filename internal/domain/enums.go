package domain

// Difficulty labels map onto target clue counts for generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// DefaultClues is the target clue count used when the caller does not pick
// a difficulty or an explicit count.
const DefaultClues = 35

// TargetClues returns the clue target for a difficulty label.
func (d Difficulty) TargetClues() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return DefaultClues
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// DifficultyForClues buckets a clue count back into the nearest label,
// used by the store for directory layout.
func DifficultyForClues(clues int) Difficulty {
	switch {
	case clues >= 38:
		return Easy
	case clues >= 31:
		return Medium
	case clues >= 26:
		return Hard
	default:
		return Expert
	}
}
