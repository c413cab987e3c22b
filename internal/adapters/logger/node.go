package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/origin/internal/core/ports"
)

// NodeID provides the originctl logger. It starts as text on stderr; the app
// switches it to JSON once loaded settings ask for JSON logs.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
