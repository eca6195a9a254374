package parser

// Block is one gloss block found in a source file.
type Block struct {
	// Source is the raw multi-line block content handed to the renderer.
	Source string
	// RawOptions holds the block's unparsed key/value option pairs.
	RawOptions map[string]string
	// StartLine and EndLine delimit the block in the file, 0-based and
	// inclusive of any fence/directive lines.
	StartLine int
	EndLine   int
}

// ParseResult holds parsing output for a single file.
type ParseResult struct {
	// FilePath is the absolute path to the parsed file.
	FilePath string
	// FileType is the detected type (gloss, markdown).
	FileType string
	// Blocks are the gloss blocks extracted from the file.
	Blocks []Block
	// RawLines preserves the original file content for reconstruction.
	RawLines []string
}

// Parser is the interface for all document format parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse extracts gloss blocks from a file.
	Parse(filePath string) (*ParseResult, error)
	// Render rebuilds the document with every gloss block replaced by its
	// rendered HTML. rendered is keyed by block index in result.Blocks.
	Render(result *ParseResult, rendered map[int]string) ([]byte, error)
}
