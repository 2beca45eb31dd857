package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evanl44730/tusmo/internal/game"
	"github.com/evanl44730/tusmo/internal/httpserver"
	"github.com/evanl44730/tusmo/internal/words"
)

const defaultWordsURL = "https://raw.githubusercontent.com/Taknok/French-Wordlist/master/francais.txt"

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list := loadWords()
	ctrl := game.NewController(list, game.DefaultRenewalDelay)
	if info, err := ctrl.NewGame(); err != nil {
		log.Warn().Err(err).Msg("could not start initial game")
	} else {
		log.Info().Int("length", info.Length).Msg("game ready")
	}

	srv := httpserver.New(ctrl)
	port := getEnv("PORT", "3000")
	log.Info().Str("port", port).Msg("starting tusmo server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadWords fetches the word list, falling back to the built-in list so
// the game stays playable when the source is unreachable.
func loadWords() words.List {
	url := getEnv("WORDS_URL", defaultWordsURL)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 15 * time.Second}
	list, err := words.Fetch(ctx, client, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("word list fetch failed, using fallback")
		return words.Fallback()
	}
	log.Info().Int("count", len(list)).Msg("word list loaded")
	return list
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
