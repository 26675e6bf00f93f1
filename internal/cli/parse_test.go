package cli

import (
	"strings"
	"testing"
)

func TestParseClueRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max int
		wantErr  bool
	}{
		{"35", 35, 35, false},
		{" 40 ", 40, 40, false},
		{"28:32", 28, 32, false},
		{"30:30", 30, 30, false},
		{"32:28", 0, 0, true},
		{"a", 0, 0, true},
		{"1:2:3", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			min, max, err := parseClueRange(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseClueRange(%q) succeeded, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClueRange(%q): %v", tc.in, err)
			}
			if min != tc.min || max != tc.max {
				t.Fatalf("parseClueRange(%q) = %d,%d want %d,%d", tc.in, min, max, tc.min, tc.max)
			}
		})
	}
}

func TestParseBoard(t *testing.T) {
	grid := "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"

	b, err := parseBoard(grid)
	if err != nil {
		t.Fatal(err)
	}
	if b.Values[0][0] != 5 || b.Values[0][4] != 7 || b.Values[8][8] != 9 {
		t.Fatalf("misparsed grid: %v", b.Values[0])
	}
	if !b.Fixed[0][0] || b.Fixed[0][2] {
		t.Fatal("fixed flags do not follow the givens")
	}

	// zeros and whitespace are accepted
	spaced := strings.ReplaceAll(grid, ".", "0") + "\n"
	if _, err := parseBoard(spaced); err != nil {
		t.Fatalf("zero/whitespace form rejected: %v", err)
	}
}

func TestParseBoardErrors(t *testing.T) {
	if _, err := parseBoard("123"); err == nil {
		t.Fatal("short grid accepted")
	}
	if _, err := parseBoard(strings.Repeat("x", 81)); err == nil {
		t.Fatal("invalid characters accepted")
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]int{"easy": 40, "Medium": 35, "hard": 28, "expert": 24} {
		d, err := parseDifficulty(in)
		if err != nil {
			t.Fatalf("parseDifficulty(%q): %v", in, err)
		}
		if got := d.TargetClues(); got != want {
			t.Fatalf("%s targets %d clues, want %d", in, got, want)
		}
	}
	if _, err := parseDifficulty("nightmare"); err == nil {
		t.Fatal("unknown difficulty accepted")
	}
}

func TestParseCoord(t *testing.T) {
	if r, c, ok := parseCoord([]string{"1", "9"}); !ok || r != 0 || c != 8 {
		t.Fatalf("parseCoord(1,9) = %d,%d,%v", r, c, ok)
	}
	for _, args := range [][]string{{"0", "5"}, {"10", "1"}, {"1"}, {"a", "b"}} {
		if _, _, ok := parseCoord(args); ok {
			t.Fatalf("parseCoord(%v) accepted out-of-range input", args)
		}
	}
}
