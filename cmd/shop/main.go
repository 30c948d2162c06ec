package main

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/shop"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonfile"
	"github.com/jhoicas/tienda-cli/internal/interfaces/cli"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_file", cfg.Store.DataFile).
		Msg("iniciando tienda")

	repo := jsonfile.NewShopRepository(cfg.Store.DataFile, log)
	store := shop.New(repo, log)
	if err := store.Load(); err != nil {
		// Documento malformado: se parte de estado vacío. Aviso explícito,
		// porque un guardado posterior sobreescribe el archivo dañado.
		log.Warn().Err(err).Msg("no se pudo cargar el documento, la tienda arranca vacía")
	}

	if seedDefaults(store) {
		if err := store.Save(); err != nil {
			log.Error().Err(err).Msg("no se pudo persistir la siembra inicial")
		}
	}

	cli.New(store, log, os.Stdin, os.Stdout).Run()
	log.Info().Msg("sesión terminada")
}

// seedDefaults garantiza los usuarios y productos de fábrica cuando faltan.
// Devuelve true si agregó algo (y entonces corresponde guardar una vez).
func seedDefaults(s *shop.Shop) bool {
	seeded := false

	if !s.UserExists("john_doe") {
		s.AddUser(entity.NewRegularUser("john_doe", "password"))
		seeded = true
	}
	if !s.UserExists("admin_user") {
		s.AddUser(entity.NewAdmin("admin_user", "password"))
		seeded = true
	}

	defaults := []struct {
		name   string
		price  float64
		rating float64
	}{
		{"Rosa", 100, 5},
		{"Tulipán", 50, 4},
		{"Lirio", 80, 5},
	}
	for _, d := range defaults {
		if !s.ProductExists(d.name) {
			s.SeedProduct(entity.NewProduct(d.name, decimal.NewFromFloat(d.price), d.rating))
			seeded = true
		}
	}

	return seeded
}
