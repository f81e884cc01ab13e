package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripy/internal/infra"
	"tripy/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewBookingRepository,
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
