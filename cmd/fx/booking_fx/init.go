package booking_fx

import (
	"go.uber.org/fx"
	"tripy/internal/services"
)

var Module = fx.Provide(
	services.NewBookingService,
)
