package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/ports"
)

// Cell is one square of the live grid. Fixed cells are the puzzle's givens
// and never change; Pencil holds a suggested digit from a hint that has not
// been committed to Value yet. Fixed implies Pencil == 0.
type Cell struct {
	Value  uint8 `json:"value"`
	Fixed  bool  `json:"fixed,omitempty"`
	Pencil uint8 `json:"pencil,omitempty"`
}

// Settings are the external knobs the presentation layer hands the session.
// Persisting them is the presentation layer's problem.
type Settings struct {
	ShowHints bool
}

// DefaultSettings enables hints, matching a fresh install.
func DefaultSettings() Settings { return Settings{ShowHints: true} }

// Session is one game in progress: the live cell grid, the originating
// puzzle with its paired solution, a move counter, the start-time anchor
// and the bounded undo history. A session is owned by exactly one player
// loop; nothing here is safe for concurrent use.
type Session struct {
	cells     [9][9]Cell
	puzzle    *domain.Puzzle
	moves     int
	startedAt time.Time
	history   history
	settings  Settings
	status    string
	rng       *rand.Rand
	gen       ports.Generator
}

// New starts a session from an already generated puzzle.
func New(p *domain.Puzzle, settings Settings, rng *rand.Rand, gen ports.Generator) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		puzzle:   p,
		settings: settings,
		rng:      rng,
		gen:      gen,
	}
	s.load(p)
	return s
}

func (s *Session) load(p *domain.Puzzle) {
	s.puzzle = p
	s.cells = [9][9]Cell{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := p.Board.Values[r][c]
			s.cells[r][c] = Cell{Value: v, Fixed: v != 0}
		}
	}
	s.moves = 0
	s.history.reset()
	s.startedAt = time.Now()
	s.status = ""
}

// NewGame discards the current state wholesale and starts over with a
// freshly generated puzzle.
func (s *Session) NewGame(ctx context.Context, targetClues int) error {
	if s.gen == nil {
		return errNoGenerator
	}
	p, _, err := s.gen.Generate(ctx, 0, targetClues)
	if err != nil {
		return err
	}
	s.load(p)
	return nil
}

// Cell returns a copy of the cell at (r, c).
func (s *Session) Cell(r, c int) Cell { return s.cells[r][c] }

// Moves returns the number of committed edits this game.
func (s *Session) Moves() int { return s.moves }

// Status returns the latest human-readable status line, e.g. a hint
// message. The UI displays it verbatim.
func (s *Session) Status() string { return s.status }

// Solution exposes the paired solution grid.
func (s *Session) Solution() [9][9]uint8 { return s.puzzle.Solution }

// Puzzle returns the originating puzzle.
func (s *Session) Puzzle() *domain.Puzzle { return s.puzzle }

// Elapsed is the wall time since the game started.
func (s *Session) Elapsed() time.Duration { return time.Since(s.startedAt) }

// Complete reports whether every cell is filled with the solution's digit.
// Once true the game is over; further commands are accepted but cannot
// change the outcome.
func (s *Session) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := s.cells[r][c].Value
			if v == 0 || v != s.puzzle.Solution[r][c] {
				return false
			}
		}
	}
	return true
}

// Values flattens the live grid for validation or display.
func (s *Session) Values() [9][9]uint8 {
	var out [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = s.cells[r][c].Value
		}
	}
	return out
}

// View is the read-only snapshot handed to the presentation layer.
type View struct {
	Cells    [9][9]Cell
	Moves    int
	ElapsedS int
	Complete bool
	Status   string
}

// Snapshot builds the current read model.
func (s *Session) Snapshot() View {
	return View{
		Cells:    s.cells,
		Moves:    s.moves,
		ElapsedS: int(s.Elapsed() / time.Second),
		Complete: s.Complete(),
		Status:   s.status,
	}
}
