package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// GlossParser handles standalone .gloss files: one gloss block per file,
// with optional leading "%key: value" directive lines carrying options.
type GlossParser struct{}

func NewGlossParser() *GlossParser { return &GlossParser{} }

func (p *GlossParser) CanParse(ext string) bool {
	return ext == ".gloss"
}

func (p *GlossParser) Parse(filePath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open gloss file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		FileType: "gloss",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		result.RawLines = append(result.RawLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan gloss file: %w", err)
	}

	rawOpts := make(map[string]string)
	body := 0
	for body < len(result.RawLines) {
		line := strings.TrimSpace(result.RawLines[body])
		if !strings.HasPrefix(line, "%") {
			break
		}
		// One directive per line, so option values may contain commas.
		directive := strings.TrimSpace(strings.TrimPrefix(line, "%"))
		idx := strings.Index(directive, ":")
		if idx > 0 {
			rawOpts[strings.TrimSpace(directive[:idx])] = strings.TrimSpace(directive[idx+1:])
		}
		body++
	}

	content := strings.Join(result.RawLines[body:], "\n")
	if strings.TrimSpace(content) != "" {
		result.Blocks = append(result.Blocks, Block{
			Source:     content,
			RawOptions: rawOpts,
			StartLine:  0,
			EndLine:    len(result.RawLines) - 1,
		})
	}

	return result, nil
}

// Render replaces the whole file with the rendered block; a .gloss file has
// no surrounding prose to preserve.
func (p *GlossParser) Render(result *ParseResult, rendered map[int]string) ([]byte, error) {
	html, ok := rendered[0]
	if !ok || len(result.Blocks) == 0 {
		return []byte{}, nil
	}
	return []byte(html + "\n"), nil
}
