package termgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExportTSV writes all terms to a TSV file.
func (s *Store) ExportTSV(ctx context.Context, outputPath string) error {
	terms, err := s.List(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create TSV file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "code\tdescription\tcategory")
	for _, t := range terms {
		fmt.Fprintf(f, "%s\t%s\t%s\n", escapeTSV(t.Code), escapeTSV(t.Description), t.Category)
	}

	log.Info().Str("path", outputPath).Int("terms", len(terms)).Msg("Exported terminology to TSV")
	return nil
}

// ExportJSON writes all terms to a JSON file.
func (s *Store) ExportJSON(ctx context.Context, outputPath string) error {
	terms, err := s.List(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(terms); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	log.Info().Str("path", outputPath).Int("terms", len(terms)).Msg("Exported terminology to JSON")
	return nil
}

func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
