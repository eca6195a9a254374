package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"interlinear/internal/gloss"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGlossParserDirectives(t *testing.T) {
	path := writeFile(t, "sample.gloss",
		"% first_line_orig: true\n"+
			"% abbrev.HON: honorific\n"+
			"the dog runs\n"+
			"DET dog.NOM run.3SG\n"+
			"the dog runs\n")

	p := NewGlossParser()
	if !p.CanParse(".gloss") || p.CanParse(".md") {
		t.Error("CanParse extension dispatch wrong")
	}

	result, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(result.Blocks))
	}

	b := result.Blocks[0]
	if b.RawOptions["first_line_orig"] != "true" {
		t.Errorf("RawOptions = %v, want first_line_orig: true", b.RawOptions)
	}
	if b.RawOptions["abbrev.HON"] != "honorific" {
		t.Errorf("RawOptions = %v, want abbrev.HON entry", b.RawOptions)
	}
	if strings.Contains(b.Source, "%") {
		t.Errorf("directive lines leaked into block source: %q", b.Source)
	}
	if !strings.HasPrefix(b.Source, "the dog runs\n") {
		t.Errorf("block source = %q", b.Source)
	}
}

func TestGlossParserEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.gloss", "% spacing: false\n\n   \n")
	result, err := NewGlossParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Blocks) != 0 {
		t.Errorf("whitespace-only file produced %d blocks, want 0", len(result.Blocks))
	}
}

func TestMarkdownParserFences(t *testing.T) {
	path := writeFile(t, "doc.md",
		"# Heading\n"+
			"\n"+
			"```gloss first_line_orig: true, last_line_free: true\n"+
			"le chien\n"+
			"DET dog\n"+
			"the dog\n"+
			"```\n"+
			"\n"+
			"prose after\n"+
			"\n"+
			"```gloss\n"+
			"dog.PL\n"+
			"```\n")

	result, err := NewMarkdownParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(result.Blocks))
	}

	first := result.Blocks[0]
	if first.RawOptions["first_line_orig"] != "true" || first.RawOptions["last_line_free"] != "true" {
		t.Errorf("fence options = %v", first.RawOptions)
	}
	if first.Source != "le chien\nDET dog\nthe dog" {
		t.Errorf("block source = %q", first.Source)
	}
	if result.Blocks[1].Source != "dog.PL" {
		t.Errorf("second block source = %q", result.Blocks[1].Source)
	}
}

func TestMarkdownParserRender(t *testing.T) {
	path := writeFile(t, "doc.md",
		"before\n"+
			"```gloss\n"+
			"a b\n"+
			"```\n"+
			"after\n")

	p := NewMarkdownParser()
	result, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := p.Render(result, map[int]string{0: "<div>RENDERED</div>"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "before\n<div>RENDERED</div>\nafter\n"
	if string(out) != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
}

func TestMarkdownParserUnterminatedFence(t *testing.T) {
	path := writeFile(t, "doc.md", "```gloss\nno closing fence\n")
	result, err := NewMarkdownParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Blocks) != 0 {
		t.Errorf("unterminated fence produced %d blocks, want 0", len(result.Blocks))
	}
}

func TestBuildOverrides(t *testing.T) {
	ov := BuildOverrides(map[string]string{
		"first_line_orig": "true",
		"spacing":         "false",
		"auto_tag":        "nope", // not a boolean literal, ignored
		"selector":        ".ig",
		"abbrev.NEG":      "negation",
		"class.word":      "cell",
		"bogus":           "x",
	})

	if ov.FirstLineOrig == nil || !*ov.FirstLineOrig {
		t.Error("first_line_orig not coerced to true")
	}
	if ov.Spacing == nil || *ov.Spacing {
		t.Error("spacing not coerced to false")
	}
	if ov.AutoTag != nil {
		t.Error("malformed boolean must stay unset")
	}
	if ov.Selector == nil || *ov.Selector != ".ig" {
		t.Error("selector not carried")
	}
	if ov.Abbreviations["NEG"] != "negation" {
		t.Errorf("abbrev namespace not parsed: %v", ov.Abbreviations)
	}
	if ov.Classes[gloss.RoleWord] != "cell" {
		t.Errorf("class namespace not parsed: %v", ov.Classes)
	}

	merged := gloss.DefaultOptions().Apply(ov)
	if !merged.FirstLineOrig || merged.Spacing || !merged.AutoTag {
		t.Error("overrides did not merge into options as expected")
	}
}
