// Seed fills the database with demo users and their goals, deposits and
// finances. Every user can log in with the password "poupix-demo".
package main

import (
	"flag"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/poupix/backend/internal/config"
	"github.com/poupix/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const password = "poupix-demo"

func main() {
	users := flag.Int("users", 3, "number of users to create")
	seed := flag.Int64("seed", 0, "seed for the fake data, 0 uses a random seed")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	if cfg.Database.Postgres() {
		err = models.ConnectPostgres(cfg.Database.DSN())
	} else {
		if err = os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	emails, err := generate(gofakeit.New(*seed), *users)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	for _, email := range emails {
		log.Info().Str("email", email).Str("password", password).Msg("Created user")
	}
}
