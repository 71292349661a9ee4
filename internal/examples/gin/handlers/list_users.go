package handlers

import (
	"github.com/vialkit/vial/internal/examples/gin/logging"
	"github.com/vialkit/vial/internal/examples/gin/storage"
)

// ListUsersHandler returns every user in the store. It carries no
// registration: the container autowires Builder and Log from its exported
// fields.
type ListUsersHandler struct {
	Builder *storage.QueryBuilder
	Log     logging.Logger
}

type ListUsersOutput struct {
	Users []storage.Row `json:"users"`
}

func (h *ListUsersHandler) Handle() (*ListUsersOutput, error) {
	h.Log.Info("listing users")

	users, err := h.Builder.Select("id, name, email").From("users").Get()
	if err != nil {
		h.Log.Warning("failed to list users")
		return nil, err
	}

	output := &ListUsersOutput{
		Users: users,
	}

	return output, nil
}
