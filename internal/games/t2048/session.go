package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlaying, StatusWon, StatusLost:
		return true
	}
	return false
}

// initialTiles is the number of tiles on a fresh board.
const initialTiles = 2

// Rules are the tunable parameters of a session.
type Rules struct {
	WinTile  int     // Zero or less disables winning (endless)
	FourProb float64 // Chance a spawned tile is a 4
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		WinTile:  engine.WinTile,
		FourProb: engine.DefaultFourProb,
	}
}

// snapshot is the state restored by Undo.
type snapshot struct {
	board engine.Board
	score int
}

// State is a read-only view of a session.
type State struct {
	Board        engine.Board
	Score        int
	BestScore    int
	Status       Status
	HasWonBefore bool
	CanUndo      bool
}

// Outcome describes what a single move did. It is handed to the renderer
// and not retained by the session.
type Outcome struct {
	Moved         bool
	ScoreIncrease int
	Merged        []engine.Tile
	Slides        []engine.Slide
	Spawned       *engine.Tile
	Status        Status
}

// Option configures a new session.
type Option func(*Session)

// WithRules sets the session rules.
func WithRules(r Rules) Option {
	return func(s *Session) { s.rules = r }
}

// WithSeed makes the session deterministic, tile IDs included.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses rng for spawning.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithIDs names tiles from ids instead of UUIDs.
func WithIDs(ids engine.IDSource) Option {
	return func(s *Session) { s.ids = ids }
}

// WithBestScore carries a previously recorded best score into the session.
func WithBestScore(best int) Option {
	return func(s *Session) { s.best = max(best, 0) }
}

// Session owns one game: the board, score, status and a single undo step.
// It is not safe for concurrent use.
type Session struct {
	rules   Rules
	rng     *rand.Rand
	ids     engine.IDSource
	engine  *engine.Engine
	spawner *engine.Spawner

	board  engine.Board
	score  int
	best   int
	status Status
	hasWon bool
	undo   *snapshot
}

// NewSession creates a session with a freshly seeded board.
func NewSession(opts ...Option) *Session {
	s := newSession(opts...)
	s.Restart()
	return s
}

// newSession applies options without placing any tiles.
func newSession(opts ...Option) *Session {
	s := &Session{rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.spawner = engine.NewSpawner(s.rng, s.rules.FourProb, s.ids)
	s.engine = engine.NewEngine(s.spawner.IDs())
	s.status = StatusPlaying
	return s
}

// State returns the current session state.
func (s *Session) State() State {
	return State{
		Board:        s.board,
		Score:        s.score,
		BestScore:    s.best,
		Status:       s.status,
		HasWonBefore: s.hasWon,
		CanUndo:      s.undo != nil,
	}
}

// Rules returns the rules the session plays by.
func (s *Session) Rules() Rules {
	return s.rules
}

// Board returns the current board.
func (s *Session) Board() engine.Board { return s.board }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// BestScore returns the best score seen by this session.
func (s *Session) BestScore() int { return s.best }

// Status returns the session status.
func (s *Session) Status() Status { return s.status }

// Move applies dir. It is a no-op unless the session is playing and dir
// changes the board.
func (s *Session) Move(dir engine.Direction) Outcome {
	if s.status != StatusPlaying || !engine.CanMoveInDirection(s.board, dir) {
		return Outcome{Status: s.status}
	}

	prev := snapshot{board: s.board, score: s.score}

	res := s.engine.Move(s.board, dir)
	board, spawned, ok := s.spawner.Spawn(res.Board)

	s.board = board
	s.score += res.ScoreIncrease
	s.best = max(s.best, s.score)
	s.undo = &prev

	won := engine.HasWonAt(s.board, s.rules.WinTile)
	switch {
	case won && !s.hasWon:
		s.status = StatusWon
	case !engine.CanMove(s.board):
		s.status = StatusLost
	}
	s.hasWon = s.hasWon || won

	out := Outcome{
		Moved:         true,
		ScoreIncrease: res.ScoreIncrease,
		Merged:        res.Merged,
		Slides:        res.Slides,
		Status:        s.status,
	}
	if ok {
		out.Spawned = &spawned
	}
	return out
}

// Undo restores the state before the last move. It reports false when
// there is nothing to undo.
func (s *Session) Undo() bool {
	if s.undo == nil {
		return false
	}
	s.board = s.undo.board.Settled()
	s.score = s.undo.score
	s.status = StatusPlaying
	s.undo = nil
	return true
}

// Continue resumes play after a win. It reports false unless the session
// is in the won state. A won board with no moves left becomes lost.
func (s *Session) Continue() bool {
	if s.status != StatusWon {
		return false
	}
	s.status = StatusPlaying
	if !engine.CanMove(s.board) {
		s.status = StatusLost
	}
	return true
}

// Restart starts a new game, keeping only the best score.
func (s *Session) Restart() {
	s.board = s.spawner.Seed(initialTiles)
	s.score = 0
	s.status = StatusPlaying
	s.hasWon = false
	s.undo = nil
}
