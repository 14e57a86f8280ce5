// Command lambdaworker is the AWS Lambda handler invoked by
// cloud.Backend: it rebuilds a single node's board, expands it one
// generation, and reports back how many nodes it evaluated.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	gboard "github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
	"github.com/copperhead-games/gomoku-engine/search"
)

type tilePointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type expandRequest struct {
	BoardText string        `json:"board_text"`
	Tile      tilePointJSON `json:"tile"`
	Player    string        `json:"player"`
}

type expandResponse struct {
	NodesEvaluated uint64 `json:"nodes_evaluated"`
	Error          string `json:"error,omitempty"`
}

func handle(ctx context.Context, req expandRequest) (expandResponse, error) {
	bd, err := gboard.FromString(req.BoardText)
	if err != nil {
		return expandResponse{Error: err.Error()}, nil
	}
	p, ok := player.FromChar(req.Player[0])
	if !ok {
		return expandResponse{Error: "lambdaworker: invalid player"}, nil
	}

	tile := gboard.NewTilePointer(req.Tile.X, req.Tile.Y)
	node := search.NewNode(tile, p)
	stats, err := search.Local.Expand(ctx, node, bd)
	if err != nil {
		log.Error().Err(err).Msg("lambdaworker: expand failed")
		return expandResponse{Error: err.Error()}, nil
	}
	return expandResponse{NodesEvaluated: stats.NodesEvaluated}, nil
}

func main() {
	lambda.Start(handle)
}
