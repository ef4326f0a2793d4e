package booking

import (
	"context"

	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/models"
)

// ListBookings é a listagem administrativa completa, sem escopo de
// cliente; nenhuma rota do fluxo principal depende dela.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListAllBookings(ctx)
}
