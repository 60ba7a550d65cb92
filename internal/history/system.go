package history

import (
	"context"

	"github.com/google/uuid"

	"quill/pkg/pagination"
)

// System defines the public contract for generation history operations.
type System interface {
	Handler() *Handler

	Save(ctx context.Context, cmd CreateCommand) (*Record, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Record], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
