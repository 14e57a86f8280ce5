// Package cloud implements an alternate search.Backend that fans a
// node's expansion out to an AWS Lambda function instead of a local
// goroutine pool, for callers who want to borrow remote CPU for a single
// deep generation rather than running workers on the calling machine.
package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/search"
)

// ExpandRequest is the payload sent to the lambdaworker function: enough
// to rebuild a node's expansion on the remote side.
type ExpandRequest struct {
	BoardText string        `json:"board_text"`
	Tile      TilePointJSON `json:"tile"`
	Player    string        `json:"player"`
}

// ExpandResponse is what the lambdaworker function returns.
type ExpandResponse struct {
	NodesEvaluated uint64 `json:"nodes_evaluated"`
	Error          string `json:"error,omitempty"`
}

// TilePointJSON is the wire form of a board.TilePointer.
type TilePointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Backend invokes a deployed lambdaworker function to expand a node.
type Backend struct {
	client       *lambda.Client
	functionName string
	attempts     uint
}

// NewBackend loads the default AWS config (region, credentials) from
// the environment and builds a Backend targeting functionName.
func NewBackend(ctx context.Context, functionName string) (*Backend, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cloud: loading AWS config: %w", err)
	}
	return &Backend{
		client:       lambda.NewFromConfig(cfg),
		functionName: functionName,
		attempts:     3,
	}, nil
}

// Expand implements search.Backend by invoking the remote function,
// retrying transient failures with backoff.
func (b *Backend) Expand(ctx context.Context, n *search.Node, bd *board.Board) (search.Stats, error) {
	req := ExpandRequest{
		BoardText: bd.String(),
		Tile:      TilePointJSON{X: n.Tile.X, Y: n.Tile.Y},
		Player:    n.Player.String(),
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return search.Stats{}, fmt.Errorf("cloud: marshaling request: %w", err)
	}

	var resp ExpandResponse
	err = retry.Do(
		func() error {
			out, err := b.client.Invoke(ctx, &lambda.InvokeInput{
				FunctionName: aws.String(b.functionName),
				Payload:      payload,
			})
			if err != nil {
				return err
			}
			if out.FunctionError != nil {
				return fmt.Errorf("cloud: lambda reported error: %s", *out.FunctionError)
			}
			return json.Unmarshal(out.Payload, &resp)
		},
		retry.Attempts(b.attempts),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil {
		return search.Stats{}, err
	}
	if resp.Error != "" {
		return search.Stats{}, fmt.Errorf("cloud: worker error: %s", resp.Error)
	}
	return search.Stats{NodesEvaluated: resp.NodesEvaluated}, nil
}
