package booking

import (
	"context"

	"github.com/bookline/booking-api/internal/models"
)

// BookingFields são os campos sobrescritos por inteiro num update de reserva.
type BookingFields struct {
	ServiceName string
	Date        string
	Time        string
	Location    string
	Notes       string
}

type Repository interface {
	// -------- Client --------
	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	GetClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	UpdateClientInfo(
		ctx context.Context,
		clientID uint,
		name string,
		phoneNumber string,
	) error

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBookingForClient(
		ctx context.Context,
		bookingID uint,
		clientID uint,
		fields BookingFields,
	) error

	DeleteBookingForClient(
		ctx context.Context,
		bookingID uint,
		clientID uint,
	) error

	ListBookingsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}
