package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/literal-gargoyle/sudoku/internal/domain"
)

// parseClueRange parses a clue count which can be a single number ("35")
// or a range ("28:32"). Returns min and max.
func parseClueRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return val, val, nil
	case 2:
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid clue count format: %s (use '35' or '28:32')", s)
}

// parseDifficulty maps a preset name onto its label.
func parseDifficulty(s string) (domain.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy, nil
	case "medium":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	case "expert":
		return domain.Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q (easy|medium|hard|expert)", s)
}

// parseBoard reads an 81-character row-major grid string. '0' and '.' both
// mean empty; everything else must be a digit 1-9. Whitespace is ignored.
func parseBoard(s string) (*domain.Board, error) {
	var flat []byte
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case ch == '.' || ch == '0':
			flat = append(flat, 0)
		case ch >= '1' && ch <= '9':
			flat = append(flat, byte(ch-'0'))
		default:
			return nil, fmt.Errorf("invalid grid character %q", ch)
		}
	}
	if len(flat) != 81 {
		return nil, fmt.Errorf("grid must have 81 cells, got %d", len(flat))
	}
	b := &domain.Board{}
	for i, v := range flat {
		r, c := i/9, i%9
		b.Values[r][c] = v
		b.Fixed[r][c] = v != 0
	}
	return b, nil
}
