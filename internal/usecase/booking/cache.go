package booking

import (
	"context"
	"log"

	"github.com/bookline/booking-api/internal/cache"
)

// invalidateProfile derruba o perfil agregado em cache depois de qualquer
// mutação do cliente. Redis fora do ar não falha a operação.
func invalidateProfile(ctx context.Context, c cache.Cache, email string) {
	if c == nil || email == "" {
		return
	}
	if err := c.Delete(ctx, cache.ProfileKey(email)); err != nil {
		log.Println("profile cache invalidation failed:", err)
	}
}
