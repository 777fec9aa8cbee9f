package service

import (
	"github.com/joshlewis24/cinebook/internal/service/analytics"
	"github.com/joshlewis24/cinebook/internal/service/catalog"
)

// Store combines the store capabilities the services need. Satisfied by
// *mongorepo.Store.
type Store interface {
	catalog.Store
	analytics.Store
}

type Services struct {
	Catalog   *catalog.Service
	Analytics *analytics.Service
}

type Config struct {
	Analytics analytics.Config
}

func NewServices(store Store, cfg Config) *Services {
	return &Services{
		Catalog:   catalog.New(store),
		Analytics: analytics.New(store, cfg.Analytics),
	}
}
