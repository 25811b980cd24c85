package engine

import (
	"mill/game"
	"mill/searcher"

	"github.com/rs/zerolog/log"
)

// Session owns one game and exposes it through plain coordinates. It is not safe
// for concurrent use; BestMove only reads the state.
type Session struct {
	state  *game.GameState
	search *searcher.AlphaBeta
}

// NewSession starts a fresh game. The options configure BestMove.
func NewSession(options ...searcher.Option) *Session {
	return &Session{
		state:  game.NewGameState(),
		search: searcher.NewAlphaBeta(options...),
	}
}

// Start discards the current game and begins a new one with White to move.
func (s *Session) Start() {
	s.state.Start()
	log.Debug().Msg("session started")
}

func (s *Session) Place(x, y int) (bool, error) {
	player := s.state.CurrentPlayer
	mill, err := s.state.Place(game.Point{X: x, Y: y})
	if err != nil {
		log.Debug().Err(err).Str("player", player.String()).Int("x", x).Int("y", y).Msg("place rejected")
		return false, err
	}
	log.Debug().Str("player", player.String()).Int("x", x).Int("y", y).Bool("mill", mill).Msg("placed")
	return mill, nil
}

func (s *Session) Move(x, y, nx, ny int) (bool, error) {
	player := s.state.CurrentPlayer
	mill, err := s.state.Move(game.Point{X: x, Y: y}, game.Point{X: nx, Y: ny})
	if err != nil {
		log.Debug().Err(err).Str("player", player.String()).Msgf("move (%d,%d)->(%d,%d) rejected", x, y, nx, ny)
		return false, err
	}
	log.Debug().Str("player", player.String()).Bool("mill", mill).Msgf("moved (%d,%d)->(%d,%d)", x, y, nx, ny)
	return mill, nil
}

func (s *Session) Remove(x, y int) error {
	player := s.state.CurrentPlayer
	if err := s.state.Remove(game.Point{X: x, Y: y}); err != nil {
		log.Debug().Err(err).Str("player", player.String()).Int("x", x).Int("y", y).Msg("remove rejected")
		return err
	}
	log.Debug().Str("player", player.String()).Int("x", x).Int("y", y).Msg("removed")
	return nil
}

func (s *Session) Undo() error {
	if err := s.state.Undo(); err != nil {
		log.Debug().Err(err).Msg("undo rejected")
		return err
	}
	log.Debug().Str("player", s.state.CurrentPlayer.String()).Int("history", len(s.state.History)).Msg("undone")
	return nil
}

// Play applies a full turn, leaving the state untouched if any part is rejected.
func (s *Session) Play(t game.Turn) error {
	player := s.state.CurrentPlayer
	if err := s.state.PlayTurn(t); err != nil {
		log.Debug().Err(err).Str("player", player.String()).Str("turn", t.String()).Msg("turn rejected")
		return err
	}
	log.Debug().Str("player", player.String()).Str("turn", t.String()).Msg("played")
	return nil
}

// ValidMoves lists the legal actions of the player to move. While a removal is
// owed after a mill, those are the removals.
func (s *Session) ValidMoves() []game.Move {
	if s.state.RemovalOwed() {
		return game.LegalRemovals(s.state)
	}
	return game.LegalMoves(s.state)
}

func (s *Session) IsTerminal() (bool, game.Piece) {
	return s.state.IsTerminal()
}

// BestMove searches the current position without changing it. While a removal is
// owed the suggested turn is that removal.
func (s *Session) BestMove(depth int) (searcher.Result, bool) {
	return s.search.BestMove(s.state, depth)
}

// State returns a copy of the game state.
func (s *Session) State() *game.GameState {
	return s.state.Copy()
}
