package booking

import (
	"context"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit audit.Recorder
	cache cache.Cache
}

func NewDeleteBooking(
	repo domain.Repository,
	audit audit.Recorder,
	cache cache.Cache,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute apaga a reserva do cliente autenticado. Idempotente: id
// inexistente ou de outro dono afeta zero linhas e não é erro.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	clientID uint,
	clientEmail string,
) error {

	if err := uc.repo.DeleteBookingForClient(ctx, bookingID, clientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &clientID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	invalidateProfile(ctx, uc.cache, clientEmail)

	return nil
}
