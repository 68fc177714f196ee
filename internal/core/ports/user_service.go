package ports

import (
	"context"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// UserService exposes CRUD and blocking state over registered users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, bool, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (bool, error)
	// Delete removes the user from the collection. The operation reports the
	// removal as found; an absent id is still a success, matching the
	// historical contract.
	Delete(ctx context.Context, id string) (found bool, err error)
	Block(ctx context.Context, id string) (bool, error)
	Unblock(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (domain.UserStats, error)
}
