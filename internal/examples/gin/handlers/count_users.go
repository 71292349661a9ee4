package handlers

import (
	"fmt"

	"github.com/vialkit/vial/internal/examples/gin/logging"
	"github.com/vialkit/vial/internal/examples/gin/storage"
)

// CountUsersHandler reports how many users the store holds.
type CountUsersHandler struct {
	Builder *storage.QueryBuilder
	Log     logging.Logger
}

type CountUsersOutput struct {
	Count int64 `json:"count"`
}

func (h *CountUsersHandler) Handle() (*CountUsersOutput, error) {
	h.Log.Info("counting users")

	rows, err := h.Builder.Select("count(*) as total").From("users").Get()
	if err != nil {
		h.Log.Warning("failed to count users")
		return nil, err
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("expected one row counting users, got %d", len(rows))
	}

	total, ok := rows[0]["total"].(int64)
	if !ok {
		return nil, fmt.Errorf("unexpected count value %v", rows[0]["total"])
	}

	output := &CountUsersOutput{
		Count: total,
	}

	return output, nil
}
