package validator

import (
	"context"
	"testing"

	"github.com/literal-gargoyle/sudoku/internal/domain"
)

func TestLegal(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 5
	g[4][4] = 7

	cases := []struct {
		name string
		r, c int
		v    uint8
		want bool
	}{
		{"empty area", 8, 8, 5, true},
		{"row duplicate", 0, 8, 5, false},
		{"col duplicate", 8, 0, 5, false},
		{"box duplicate", 1, 1, 5, false},
		{"same box different digit", 1, 1, 6, true},
		{"center box duplicate", 3, 3, 7, false},
		{"crossing row with other digit", 0, 5, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Legal(&g, tc.r, tc.c, tc.v); got != tc.want {
				t.Fatalf("Legal(%d,%d,%d) = %v, want %v", tc.r, tc.c, tc.v, got, tc.want)
			}
		})
	}
}

func TestValidateCleanBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 1
	b.Values[0][1] = 2
	b.Values[8][8] = 1

	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board reported conflicts: %v", conf)
	}
}

func TestValidateConflicts(t *testing.T) {
	cases := []struct {
		name  string
		setup func(b *domain.Board)
	}{
		{"row", func(b *domain.Board) { b.Values[2][1] = 9; b.Values[2][7] = 9 }},
		{"col", func(b *domain.Board) { b.Values[1][3] = 4; b.Values[8][3] = 4 }},
		{"box", func(b *domain.Board) { b.Values[0][0] = 3; b.Values[2][2] = 3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &domain.Board{}
			tc.setup(b)
			ok, conf, err := New().Validate(context.Background(), b)
			if err != nil {
				t.Fatal(err)
			}
			if ok || len(conf) == 0 {
				t.Fatal("duplicate digits not flagged")
			}
		})
	}
}
