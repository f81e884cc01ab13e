package search_fx

import (
	"go.uber.org/fx"
	"tripy/internal/services"
)

var Module = fx.Provide(
	services.NewMockTransportSearchService,
	services.NewMockHotelSearchService,
	services.NewMockCabService,
	services.NewMockLegBooker,
)
