package termgraph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// Term is one abbreviation entry in the terminology graph.
type Term struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"` // standard or custom
}

// Store reads and writes the gloss abbreviation terminology held in Neo4j.
// Teams extend the standard table with project-specific codes there; the
// renderer merges the graph's terms over the built-in defaults.
type Store struct {
	driver neo4j.DriverWithContext
}

// NewStore creates a terminology store.
func NewStore(driver neo4j.DriverWithContext) *Store {
	return &Store{driver: driver}
}

// EnsureSchema creates constraints on the Neo4j database.
func (s *Store) EnsureSchema(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (t:Abbrev) REQUIRE t.code IS UNIQUE",
	}

	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Terminology schema ensured")
	return nil
}

// SeedDefaults populates the graph with the built-in abbreviation table.
// Existing custom descriptions are overwritten only for standard codes.
func (s *Store) SeedDefaults(ctx context.Context, table map[string]string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	for code, desc := range table {
		_, err := session.Run(ctx, `
			MERGE (t:Abbrev {code: $code})
			SET t.description = $description,
			    t.category = 'standard'
		`, map[string]any{
			"code":        code,
			"description": desc,
		})
		if err != nil {
			return fmt.Errorf("upsert term %s: %w", code, err)
		}
	}

	log.Info().Int("terms", len(table)).Msg("Seeded abbreviation terminology")
	return nil
}

// Upsert inserts or updates a single custom term.
func (s *Store) Upsert(ctx context.Context, t Term) error {
	if t.Category == "" {
		t.Category = "custom"
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.Run(ctx, `
		MERGE (t:Abbrev {code: $code})
		SET t.description = $description,
		    t.category = $category
	`, map[string]any{
		"code":        t.Code,
		"description": t.Description,
		"category":    t.Category,
	})
	if err != nil {
		return fmt.Errorf("upsert term %s: %w", t.Code, err)
	}
	return nil
}

// GetAll retrieves the whole terminology as a code → description map, the
// shape the renderer's options expect.
func (s *Store) GetAll(ctx context.Context) (map[string]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (t:Abbrev)
		RETURN t.code AS code, t.description AS description
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("get all terms: %w", err)
	}

	terms := make(map[string]string)
	for result.Next(ctx) {
		record := result.Record()
		code, _ := record.Get("code")
		description, _ := record.Get("description")
		terms[fmt.Sprintf("%v", code)] = fmt.Sprintf("%v", description)
	}

	log.Info().Int("count", len(terms)).Msg("Loaded terminology from graph")
	return terms, nil
}

// List retrieves all terms with their categories, ordered by code.
func (s *Store) List(ctx context.Context) ([]Term, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (t:Abbrev)
		RETURN t.code AS code, t.description AS description, t.category AS category
		ORDER BY code
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	var terms []Term
	for result.Next(ctx) {
		record := result.Record()
		code, _ := record.Get("code")
		description, _ := record.Get("description")
		category, _ := record.Get("category")
		terms = append(terms, Term{
			Code:        fmt.Sprintf("%v", code),
			Description: fmt.Sprintf("%v", description),
			Category:    fmt.Sprintf("%v", category),
		})
	}
	return terms, nil
}
