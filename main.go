package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Syabadriel/financeTrack/internal/config"
	"github.com/Syabadriel/financeTrack/internal/kv"
	"github.com/Syabadriel/financeTrack/internal/ledger"
	"github.com/Syabadriel/financeTrack/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate swag init --parseDependency --output ./api

func main() {
	// A .env file is optional, the environment always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Reading .env file")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := kv.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer store.Close()

	l, err := ledger.New(store)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	opts := router.Options{
		AllowOrigins: cfg.AllowOrigins(),
		EnablePprof:  cfg.EnablePprof,
	}

	r, teardown, err := router.Config(url, opts)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group(url.Path), l, opts)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
