// server.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This package implements a compact HTTP server that receives JSON
// encoded requests and returns JSON encoded responses, grounded on
// the teacher's own server.go (MovesRequest/HeaderJson shape,
// locale-to-dictionary mapping), generalized from the teacher's
// rune-keyed Dawg/TileSet to the byte-code Wordlist/TileSet/Board of
// this engine, and extended with an /evaluate endpoint over the
// opponent-aware Evaluator (C10).
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	skrafl "github.com/anjodev/wordfeud-engine"
	"github.com/rs/zerolog/log"
)

// Dictionaries bundles the lexicons and tile sets this server can
// offer, keyed by locale string, so a Server can be stood up once at
// startup and reused across requests.
type Dictionaries struct {
	entries map[string]localeEntry
}

type localeEntry struct {
	lexicon *skrafl.Wordlist
	tiles   *skrafl.TileSet
}

// NewDictionaries builds an empty Dictionaries set; callers populate
// it with Register before passing it to NewServer.
func NewDictionaries() *Dictionaries {
	return &Dictionaries{entries: make(map[string]localeEntry)}
}

// Register binds locale to the given lexicon and tile set.
func (d *Dictionaries) Register(locale string, lexicon *skrafl.Wordlist, tiles *skrafl.TileSet) {
	d.entries[locale] = localeEntry{lexicon: lexicon, tiles: tiles}
}

// decodeLocale maps a requested locale string to a registered
// lexicon and tile set, defaulting to "en" for an empty or
// unrecognized locale, per the teacher's own decodeLocale.
func (d *Dictionaries) decodeLocale(locale string) (*skrafl.Wordlist, *skrafl.TileSet, bool) {
	if locale == "" {
		locale = "en"
	}
	e, ok := d.entries[locale]
	if !ok {
		e, ok = d.entries["en"]
	}
	return e.lexicon, e.tiles, ok
}

// Server holds the dictionaries a running instance serves requests
// from.
type Server struct {
	Dictionaries *Dictionaries
}

// NewServer builds a Server over the given dictionaries.
func NewServer(dicts *Dictionaries) *Server {
	return &Server{Dictionaries: dicts}
}

// MovesRequest is the body of an incoming /moves request.
type MovesRequest struct {
	Locale string   `json:"locale"`
	Board  []string `json:"board"`
	Rack   string   `json:"rack"`
	Limit  int      `json:"limit"`
}

// ScoredWordJSON is the wire shape of one scored candidate.
type ScoredWordJSON struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Horizontal bool   `json:"horizontal"`
	Word       string `json:"word"`
	Score      int    `json:"score"`
}

// MovesResponse is the JSON response header for /moves.
type MovesResponse struct {
	Version string           `json:"version"`
	Count   int              `json:"count"`
	Moves   []ScoredWordJSON `json:"moves"`
}

// HandleMovesRequest computes every legal placement for req.Rack on
// req.Board and writes the Limit highest-scoring ones as JSON.
func (s *Server) HandleMovesRequest(w http.ResponseWriter, req MovesRequest) {
	lexicon, tiles, ok := s.Dictionaries.decodeLocale(req.Locale)
	if !ok {
		http.Error(w, "Unknown locale.\n", http.StatusBadRequest)
		return
	}

	rackCodes, err := lexicon.Encode(req.Rack)
	if err != nil || len(rackCodes) == 0 || len(rackCodes) > skrafl.RackSize {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return
	}
	rack, err := skrafl.LettersFromCodes(rackCodes)
	if err != nil {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return
	}

	board := skrafl.NewBoard(lexicon, tiles, skrafl.NewStandardGrid())
	if len(req.Board) > 0 {
		if len(req.Board) != skrafl.N {
			http.Error(w, fmt.Sprintf("Invalid board. Must be %v rows.\n", skrafl.N), http.StatusBadRequest)
			return
		}
		if err := board.SetRows(req.Board); err != nil {
			http.Error(w, fmt.Sprintf("Invalid board: %v.\n", err), http.StatusBadRequest)
			return
		}
	}

	scored, err := board.CalcAllWordScores(rack)
	if err != nil {
		log.Error().Err(err).Msg("move generation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if req.Limit > 0 && req.Limit < len(scored) {
		scored = scored[:req.Limit]
	}

	moves := make([]ScoredWordJSON, len(scored))
	for i, m := range scored {
		moves[i] = ScoredWordJSON{
			X: m.X, Y: m.Y, Horizontal: m.Horizontal,
			Word: lexicon.Decode(m.Word.Codes()), Score: m.Score,
		}
	}
	result := MovesResponse{Version: "1.0", Count: len(moves), Moves: moves}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// EvaluateRequest is the body of an incoming /evaluate request: a
// MovesRequest plus the RNG seed and sample count the Evaluator
// should use.
type EvaluateRequest struct {
	MovesRequest
	Seed    int64 `json:"seed"`
	Samples int   `json:"samples"`
}

// EvaluatedWordJSON is the wire shape of one opponent-aware scored
// candidate.
type EvaluatedWordJSON struct {
	ScoredWordJSON
	AdjScore int     `json:"adj_score"`
	Std      float64 `json:"std"`
	Exit     int     `json:"exit"`
}

// EvaluateResponse is the JSON response header for /evaluate.
type EvaluateResponse struct {
	Version string              `json:"version"`
	Count   int                 `json:"count"`
	Moves   []EvaluatedWordJSON `json:"moves"`
}

// HandleEvaluateRequest computes every legal placement for req.Rack,
// adjusted for the likely best opponent reply, and writes the Limit
// highest adjusted-scoring ones as JSON.
func (s *Server) HandleEvaluateRequest(w http.ResponseWriter, req EvaluateRequest) {
	lexicon, tiles, ok := s.Dictionaries.decodeLocale(req.Locale)
	if !ok {
		http.Error(w, "Unknown locale.\n", http.StatusBadRequest)
		return
	}

	rackCodes, err := lexicon.Encode(req.Rack)
	if err != nil || len(rackCodes) == 0 || len(rackCodes) > skrafl.RackSize {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return
	}
	rack, err := skrafl.LettersFromCodes(rackCodes)
	if err != nil {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return
	}

	board := skrafl.NewBoard(lexicon, tiles, skrafl.NewStandardGrid())
	if len(req.Board) > 0 {
		if len(req.Board) != skrafl.N {
			http.Error(w, fmt.Sprintf("Invalid board. Must be %v rows.\n", skrafl.N), http.StatusBadRequest)
			return
		}
		if err := board.SetRows(req.Board); err != nil {
			http.Error(w, fmt.Sprintf("Invalid board: %v.\n", err), http.StatusBadRequest)
			return
		}
	}

	eval := skrafl.NewEvaluator(board, tiles)
	if req.Seed != 0 {
		eval.Seed = req.Seed
	}
	if req.Samples > 0 {
		eval.Samples = req.Samples
	}

	evaluated, err := eval.FindBestScore(rack)
	if err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Slice(evaluated, func(i, j int) bool { return evaluated[i].AdjScore > evaluated[j].AdjScore })
	if req.Limit > 0 && req.Limit < len(evaluated) {
		evaluated = evaluated[:req.Limit]
	}

	moves := make([]EvaluatedWordJSON, len(evaluated))
	for i, m := range evaluated {
		moves[i] = EvaluatedWordJSON{
			ScoredWordJSON: ScoredWordJSON{
				X: m.X, Y: m.Y, Horizontal: m.Horizontal,
				Word: lexicon.Decode(m.Word.Codes()), Score: m.Score,
			},
			AdjScore: m.AdjScore, Std: m.Std, Exit: int(m.Exit),
		}
	}
	result := EvaluateResponse{Version: "1.0", Count: len(moves), Moves: moves}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WordCheckRequest is the body of an incoming /wordcheck request.
type WordCheckRequest struct {
	Locale string   `json:"locale"`
	Words  []string `json:"words"`
}

// WordCheckResultPair mirrors the teacher's [word, found] pair shape.
type WordCheckResultPair [2]interface{}

// okFalseResponse is written whenever a /wordcheck request cannot be
// evaluated at all (as opposed to evaluating to an invalid word).
var okFalseResponse = map[string]bool{"ok": false}

// HandleWordCheckRequest reports, for each word in req.Words,
// whether it is present in the locale's lexicon.
func (s *Server) HandleWordCheckRequest(w http.ResponseWriter, req WordCheckRequest) {
	if len(req.Words) == 0 || len(req.Words) > skrafl.N+1 {
		json.NewEncoder(w).Encode(okFalseResponse)
		return
	}
	lexicon, _, ok := s.Dictionaries.decodeLocale(req.Locale)
	if !ok {
		json.NewEncoder(w).Encode(okFalseResponse)
		return
	}

	allValid := true
	valid := make([]WordCheckResultPair, len(req.Words))
	for i, word := range req.Words {
		if len(word) == 0 || len(word) > skrafl.N {
			json.NewEncoder(w).Encode(okFalseResponse)
			return
		}
		codes, err := lexicon.Encode(word)
		found := err == nil && lexicon.IsWord(codesToLabels(codes))
		valid[i] = WordCheckResultPair{word, found}
		if !found {
			allValid = false
		}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": allValid, "valid": valid})
}

func codesToLabels(codes []skrafl.Code) []skrafl.Label {
	labels := make([]skrafl.Label, len(codes))
	for i, c := range codes {
		labels[i] = c & skrafl.LetterMask
	}
	return labels
}

// Routes registers the server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/moves", func(w http.ResponseWriter, r *http.Request) {
		var req MovesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Malformed request body.\n", http.StatusBadRequest)
			return
		}
		s.HandleMovesRequest(w, req)
	})
	mux.HandleFunc("/evaluate", func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Malformed request body.\n", http.StatusBadRequest)
			return
		}
		s.HandleEvaluateRequest(w, req)
	})
	mux.HandleFunc("/wordcheck", func(w http.ResponseWriter, r *http.Request) {
		var req WordCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Malformed request body.\n", http.StatusBadRequest)
			return
		}
		s.HandleWordCheckRequest(w, req)
	})
}
