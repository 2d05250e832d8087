// main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command wordfeud-engine is a CLI driver for the skrafl move
// generator: load a wordlist and an optional board state, score a
// rack, and print the ranked candidates. Flag handling follows the
// teacher's own main/main.go (stdlib flag, a dictionary/-d style
// selector), generalized to pflag per SPEC_FULL.md's ambient-stack
// decision.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	skrafl "github.com/anjodev/wordfeud-engine"
	"github.com/anjodev/wordfeud-engine/store"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	wordlistPath := flag.StringP("wordlist", "w", "", "path to a newline-delimited wordlist file (required)")
	lang := flag.StringP("lang", "l", "en", "tile-set language: en, nl, is, pl, no")
	boardPath := flag.StringP("board", "b", "", "path to a 15-line board-state file (default: empty board)")
	rack := flag.StringP("rack", "r", "", "rack letters, uppercase for an assigned blank (required)")
	evaluate := flag.BoolP("evaluate", "e", false, "adjust scores for likely opponent replies")
	limit := flag.IntP("limit", "n", 10, "maximum number of candidates to print")
	verbose := flag.BoolP("verbose", "v", false, "enable debug logging")
	flag.Parse()

	skrafl.InitLogging(*verbose)

	if *wordlistPath == "" || *rack == "" {
		fmt.Fprintln(os.Stderr, "usage: wordfeud-engine -w wordlist.txt -r RACK [-l lang] [-b board.txt] [-e] [-n limit]")
		os.Exit(2)
	}

	cfg := skrafl.LoadConfig(".env")
	cfg.Language = skrafl.LanguageFromName(*lang)

	tiles := skrafl.NewTileSetFor(cfg.Language)
	lexicon, err := skrafl.FromFile(*wordlistPath, tiles.Codec)
	if err != nil {
		log.Fatal().Err(err).Str("path", *wordlistPath).Msg("failed to load wordlist")
	}

	board := skrafl.NewBoard(lexicon, tiles, skrafl.NewStandardGrid())
	if *boardPath != "" {
		rows, err := skrafl.ReadBoardFile(*boardPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *boardPath).Msg("failed to read board state")
		}
		if err := board.SetRows(rows); err != nil {
			log.Fatal().Err(err).Msg("invalid board state")
		}
	}

	rackLetters, err := tiles.Codec.Encode(*rack)
	if err != nil {
		log.Fatal().Err(err).Str("rack", *rack).Msg("invalid rack")
	}
	letters, err := skrafl.LettersFromCodes(rackLetters)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rack")
	}

	if !*evaluate {
		words, err := board.CalcAllWordScores(letters)
		if err != nil {
			log.Fatal().Err(err).Msg("scoring failed")
		}
		sort.Slice(words, func(i, j int) bool { return words[i].Score > words[j].Score })
		printScored(words, *limit, board.Lexicon)
		return
	}

	eval := skrafl.NewEvaluator(board, tiles)
	eval.Seed = cfg.Seed
	eval.Samples = cfg.Samples
	results, err := eval.FindBestScore(letters)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}
	printEvaluated(results, *limit, board.Lexicon)

	ctx := context.Background()
	s := store.Open(ctx)
	defer s.Close()
	for _, w := range results {
		word := board.Lexicon.Decode(w.Word.Codes())
		if err := s.Save(ctx, *rack, word, w); err != nil {
			log.Warn().Err(err).Msg("failed to persist evaluator run")
		}
	}
}

func printScored(words []skrafl.ScoredWord, limit int, lex *skrafl.Wordlist) {
	if limit > len(words) {
		limit = len(words)
	}
	for _, w := range words[:limit] {
		fmt.Printf("(%d,%d,%s) %-16s %d\n", w.X, w.Y, orientLabel(w.Horizontal), lex.Decode(w.Word.Codes()), w.Score)
	}
}

func printEvaluated(words []skrafl.EvaluatedWord, limit int, lex *skrafl.Wordlist) {
	if limit > len(words) {
		limit = len(words)
	}
	for _, w := range words[:limit] {
		fmt.Printf("(%d,%d,%s) %-16s score=%d adj=%d std=%.1f exit=%v\n",
			w.X, w.Y, orientLabel(w.Horizontal), lex.Decode(w.Word.Codes()), w.Score, w.AdjScore, w.Std, w.Exit)
	}
}

func orientLabel(horiz bool) string {
	if horiz {
		return "h"
	}
	return "v"
}
