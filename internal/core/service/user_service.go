package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// UserService exposes CRUD and blocking over registered users. Registration
// itself happens in the public frontend; this side only administers the
// resulting records.
type UserService struct {
	store  ports.KeyValueStore
	logger zerolog.Logger
}

func NewUserService(store ports.KeyValueStore, logger zerolog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return loadCollection[domain.User](ctx, s.store, keyUsers)
}

func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		patch.Apply(&users[i])
		if err := saveCollection(ctx, s.store, keyUsers, users); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Delete removes the user from the collection outright, no tombstone. An
// absent id is still a success; found tells callers whether anything was
// actually removed.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if err := saveCollection(ctx, s.store, keyUsers, kept); err != nil {
		return false, err
	}
	if found {
		s.logger.Info().Str("user", id).Msg("user deleted")
	}
	return found, nil
}

func (s *UserService) Block(ctx context.Context, id string) (bool, error) {
	return s.setBlocked(ctx, id, true)
}

func (s *UserService) Unblock(ctx context.Context, id string) (bool, error) {
	return s.setBlocked(ctx, id, false)
}

func (s *UserService) setBlocked(ctx context.Context, id string, blocked bool) (bool, error) {
	found, err := s.Update(ctx, id, domain.UserPatch{Blocked: &blocked})
	if err == nil && found {
		s.logger.Info().Str("user", id).Bool("blocked", blocked).Msg("user block state changed")
	}
	return found, err
}

func (s *UserService) Stats(ctx context.Context) (domain.UserStats, error) {
	users, err := s.List(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}
	stats := domain.UserStats{Total: len(users)}
	for _, u := range users {
		if u.Blocked {
			stats.Blocked++
		} else {
			stats.Active++
		}
	}
	return stats, nil
}
