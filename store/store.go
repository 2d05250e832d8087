// store.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This package persists opponent-evaluator results to Cloud
// Datastore, narrowing the teacher's own use of
// cloud.google.com/go/datastore for Game/Riddle state (riddle.go) to
// a single record shape: one candidate move plus its adjusted score
// and exit flag, logged for later analysis of the Evaluator's (C10)
// choices. Matching the teacher's own optional, environment-gated
// Datastore usage in its App Engine deployment, a Store with no
// configured project degrades to a no-op rather than failing.
package store

import (
	"context"
	"os"

	"cloud.google.com/go/datastore"
	"github.com/rs/zerolog/log"

	skrafl "github.com/anjodev/wordfeud-engine"
)

// defaultKind is the Datastore kind every EvaluatorRun is stored
// under.
const defaultKind = "EvaluatorRun"

// EvaluatorRun is one persisted record of an opponent-aware
// evaluation: the candidate played, its raw and adjusted score, and
// whether either side emptied their rack.
type EvaluatorRun struct {
	Rack       string
	Word       string
	X, Y       int
	Horizontal bool
	Score      int
	AdjScore   int
	Exit       int
	Std        float64
}

// Store writes EvaluatorRun records to Cloud Datastore.
type Store struct {
	client *datastore.Client
	kind   string
}

// Open builds a Store from the GOOGLE_CLOUD_PROJECT or
// DATASTORE_PROJECT_ID environment variable. If neither is set, or
// the client cannot be constructed, Open returns a Store whose Save
// calls silently no-op, so the CLI/server run unchanged without a
// Datastore project configured.
func Open(ctx context.Context) *Store {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("DATASTORE_PROJECT_ID")
	}
	if projectID == "" {
		log.Debug().Msg("no datastore project configured, evaluator logging disabled")
		return &Store{kind: defaultKind}
	}
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		log.Warn().Err(err).Str("project", projectID).Msg("datastore client unavailable, evaluator logging disabled")
		return &Store{kind: defaultKind}
	}
	return &Store{client: client, kind: defaultKind}
}

// Close releases the underlying Datastore client, if any.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Save persists one EvaluatedWord's record for the given rack and
// decoded word string. It is a no-op when s has no configured
// client.
func (s *Store) Save(ctx context.Context, rack string, word string, w skrafl.EvaluatedWord) error {
	if s.client == nil {
		return nil
	}
	run := EvaluatorRun{
		Rack: rack, Word: word,
		X: w.X, Y: w.Y, Horizontal: w.Horizontal,
		Score: w.Score, AdjScore: w.AdjScore,
		Exit: int(w.Exit), Std: w.Std,
	}
	key := datastore.IncompleteKey(defaultKind, nil)
	_, err := s.client.Put(ctx, key, &run)
	return err
}
