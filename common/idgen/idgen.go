// Package idgen provides the fleet's snowflake-style id generator,
// used by the order service to hand out order idempotency tokens.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// workerIDBits is the width of the worker id segment. Worker ids are
// assumed unique per deployed instance; nothing coordinates them.
const workerIDBits = 6

// Generator emits monotonically increasing 64-bit ids. Safe for
// concurrent use. Construct once at startup and inject; the snowflake
// layout knobs are process-wide.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(workerID int64) (*Generator, error) {
	if workerID < 0 || workerID >= 1<<workerIDBits {
		return nil, fmt.Errorf("worker id %d out of range [0, %d]", workerID, 1<<workerIDBits-1)
	}

	// Layout: 41 bits time, 6 bits worker, 12 bits sequence. Must be
	// set before the first node is built.
	snowflake.NodeBits = workerIDBits
	snowflake.StepBits = 12

	node, err := snowflake.NewNode(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &Generator{node: node}, nil
}

// Next returns a fresh id.
func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
