package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MarkdownParser extracts fenced gloss blocks from Markdown and plain text
// documents. A block opens with a "```gloss" fence, optionally followed on
// the info line by comma-separated "key: value" options, and closes with
// "```". Everything outside fences passes through verbatim.
type MarkdownParser struct{}

func NewMarkdownParser() *MarkdownParser { return &MarkdownParser{} }

func (p *MarkdownParser) CanParse(ext string) bool {
	return ext == ".md" || ext == ".markdown" || ext == ".txt"
}

func (p *MarkdownParser) Parse(filePath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open markdown file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		FileType: "markdown",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4*1024*1024), 4*1024*1024)
	for scanner.Scan() {
		result.RawLines = append(result.RawLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan markdown file: %w", err)
	}

	inBlock := false
	start := 0
	var rawOpts map[string]string
	var content []string

	for i, line := range result.RawLines {
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			rest, ok := strings.CutPrefix(trimmed, "```gloss")
			if ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
				inBlock = true
				start = i
				rawOpts = make(map[string]string)
				parseOptionList(rest, rawOpts)
				content = content[:0]
			}
			continue
		}

		if trimmed == "```" {
			inBlock = false
			result.Blocks = append(result.Blocks, Block{
				Source:     strings.Join(content, "\n"),
				RawOptions: rawOpts,
				StartLine:  start,
				EndLine:    i,
			})
			continue
		}

		content = append(content, line)
	}
	// An unterminated fence is dropped rather than treated as an error.

	return result, nil
}

// Render splices rendered HTML in place of each fenced block, keeping all
// other lines verbatim.
func (p *MarkdownParser) Render(result *ParseResult, rendered map[int]string) ([]byte, error) {
	var sb strings.Builder
	next := 0

	for i := 0; i < len(result.RawLines); i++ {
		if next < len(result.Blocks) && i == result.Blocks[next].StartLine {
			if html, ok := rendered[next]; ok {
				sb.WriteString(html)
				sb.WriteByte('\n')
			}
			i = result.Blocks[next].EndLine
			next++
			continue
		}
		sb.WriteString(result.RawLines[i])
		sb.WriteByte('\n')
	}

	return []byte(sb.String()), nil
}
