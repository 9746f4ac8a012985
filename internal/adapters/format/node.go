package format

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the output format registry Graft node.
const NodeID graft.ID = "adapter.format"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
