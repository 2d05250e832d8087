// main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command wordfeud-server stands up the engine's HTTP service,
// grounded on the teacher's go-app/main.go (PORT-env listen loop),
// generalized to register every supported language's lexicon instead
// of a single hardcoded dictionary. Requests are not authenticated.

package main

import (
	"net/http"
	"os"
	"path/filepath"

	skrafl "github.com/anjodev/wordfeud-engine"
	"github.com/anjodev/wordfeud-engine/server"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

var localeToLanguage = map[string]skrafl.Language{
	"en": skrafl.English,
	"nl": skrafl.Dutch,
	"is": skrafl.Icelandic,
	"pl": skrafl.Polish,
	"no": skrafl.Norwegian,
}

func main() {
	verbose := flag.BoolP("verbose", "v", false, "enable debug logging")
	flag.Parse()
	skrafl.InitLogging(*verbose)

	cfg := skrafl.LoadConfig(".env")

	dicts := server.NewDictionaries()
	for locale, lang := range localeToLanguage {
		path := filepath.Join(cfg.WordlistDir, locale+".txt")
		tiles := skrafl.NewTileSetFor(lang)
		lexicon, err := skrafl.FromFile(path, tiles.Codec)
		if err != nil {
			log.Warn().Err(err).Str("locale", locale).Msg("skipping unavailable wordlist")
			continue
		}
		dicts.Register(locale, lexicon, tiles)
		log.Info().Str("locale", locale).Int("words", lexicon.WordCount).Msg("wordlist loaded")
	}

	srv := server.NewServer(dicts)
	mux := http.NewServeMux()
	srv.Routes(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("listening")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
