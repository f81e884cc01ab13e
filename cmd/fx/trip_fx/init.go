package trip_fx

import (
	"go.uber.org/fx"
	"tripy/internal/services"
)

var Module = fx.Provide(
	services.NewSlotResolver,
	services.NewItineraryBuilder,
	services.NewTripService,
)
