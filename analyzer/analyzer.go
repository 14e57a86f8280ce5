// Package analyzer exposes a JSON request/response analysis endpoint
// over the core decide operation, for callers (a web UI, a remote
// service) that want to hand the engine a board position and a time
// budget and get a move back without importing the core packages
// directly. This is explicitly not a FEN interface: boards travel as
// plain row strings of 'x'/'o'/'-'.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
	"github.com/copperhead-games/gomoku-engine/search"
)

// SampleJSON is a worked example request, useful for smoke-testing a
// deployment without hand-writing a board.
var SampleJSON = []byte(`{
"size": 9,
"player": "x",
"time_limit_ms": 500,
"board": [
  "---------",
  "---------",
  "---------",
  "---------",
  "----x----",
  "---------",
  "---------",
  "---------",
  "---------"
]}`)

// JSONBoard is the request payload: a board plus whose turn it is and
// how long the engine may think.
type JSONBoard struct {
	Size        int      `json:"size"`
	Board       []string `json:"board"`
	Player      string   `json:"player"`
	TimeLimitMs int      `json:"time_limit_ms"`
}

// JSONMove is the response payload: the chosen move in both coordinate
// forms, its score, and the node count spent finding it.
type JSONMove struct {
	Column             int    `json:"column"`
	Row                int    `json:"row"`
	DisplayCoordinates string `json:"display_coordinates"`
	Score              int32  `json:"score"`
	NodesEvaluated     uint64 `json:"nodes_evaluated"`
}

// Analyzer wraps a reusable Driver behind the JSON request/response
// shape.
type Analyzer struct {
	driver *search.Driver
}

// New builds an Analyzer with the default thread count.
func New() *Analyzer {
	return &Analyzer{driver: search.NewDriver()}
}

func parseBoard(req JSONBoard) (*board.Board, error) {
	rows := make([][]board.Tile, len(req.Board))
	for y, line := range req.Board {
		row := make([]board.Tile, len(line))
		for x, c := range []byte(line) {
			switch c {
			case 'x', 'X':
				row[x] = board.TileOf(player.X)
			case 'o', 'O':
				row[x] = board.TileOf(player.O)
			default:
				row[x] = board.Empty
			}
		}
		rows[y] = row
	}
	return board.New(rows)
}

// Analyze loads a JSON position, runs the core decide operation against
// it, and returns the chosen move as JSON.
func (a *Analyzer) Analyze(ctx context.Context, jsonBoard []byte) ([]byte, error) {
	var req JSONBoard
	if err := json.Unmarshal(jsonBoard, &req); err != nil {
		return nil, fmt.Errorf("analyzer: invalid request: %w", err)
	}

	bd, err := parseBoard(req)
	if err != nil {
		return nil, err
	}

	p, ok := player.FromChar(req.Player[0])
	if !ok {
		return nil, fmt.Errorf("analyzer: invalid player %q", req.Player)
	}

	mv, stats, err := a.driver.Decide(ctx, bd, p, time.Duration(req.TimeLimitMs)*time.Millisecond)
	if err != nil {
		return nil, err
	}

	out := JSONMove{
		Column:             mv.Tile.X,
		Row:                mv.Tile.Y,
		DisplayCoordinates: mv.Tile.String(),
		Score:              mv.Score,
		NodesEvaluated:     stats.NodesEvaluated,
	}
	return json.Marshal(out)
}
