package booking

import "github.com/bookline/booking-api/internal/httperr"

// ===============================
// Business Errors
// ===============================

var (
	// ErrDuplicateEmail: já existe cliente com o email informado.
	ErrDuplicateEmail = httperr.ErrBusiness("email_already_exists")

	// ErrClientNotFound: cliente inexistente para o email pedido.
	ErrClientNotFound = httperr.ErrBusiness("client_not_found")

	// ErrBookingNotFound: a reserva não existe ou não pertence ao cliente
	// autenticado. As duas situações são indistinguíveis de propósito.
	ErrBookingNotFound = httperr.ErrBusiness("booking_not_found")
)
