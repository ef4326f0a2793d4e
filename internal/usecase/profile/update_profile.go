package profile

import (
	"context"
	"log"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
)

type UpdateProfileInput struct {
	ClientID    uint
	ClientEmail string

	Name        string
	PhoneNumber string
}

type UpdateProfile struct {
	repo  domain.Repository
	audit audit.Recorder
	cache cache.Cache
}

func NewUpdateProfile(
	repo domain.Repository,
	audit audit.Recorder,
	c cache.Cache,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute sobrescreve nome e telefone do cliente autenticado. Email e
// senha ficam de fora; id inexistente segue em silêncio com zero linhas.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) error {

	if err := uc.repo.UpdateClientInfo(ctx, in.ClientID, in.Name, in.PhoneNumber); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &in.ClientID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &in.ClientID,
	})

	if uc.cache != nil && in.ClientEmail != "" {
		if err := uc.cache.Delete(ctx, cache.ProfileKey(in.ClientEmail)); err != nil {
			log.Println("profile cache invalidation failed:", err)
		}
	}

	return nil
}
