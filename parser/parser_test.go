package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"estate_cleanser/config"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return data
}

func TestParseHTML_Basic(t *testing.T) {
	p := NewDetailParser(config.SelectorConfig{})
	data := loadFixture(t, "detail_basic.html")

	fields, err := p.ParseHTML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(fields) != 7 {
		t.Fatalf("expected 7 fields, got %d: %v", len(fields), fields)
	}

	if fields[0].Label != "物件名" || fields[0].Value != "パークハウス六本木" {
		t.Fatalf("unexpected first field %+v", fields[0])
	}
	if fields[1].Label != "所在地" || fields[1].Value != "東京都港区六本木1-2-3" {
		t.Fatalf("unexpected address field %+v", fields[1])
	}
}

func TestParseHTML_PackedRow(t *testing.T) {
	p := NewDetailParser(config.SelectorConfig{})
	data := loadFixture(t, "detail_basic.html")

	fields, err := p.ParseHTML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	byLabel := map[string]string{}
	for _, f := range fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["価格"] != "3980万円～5980万円" {
		t.Fatalf("expected price from packed row, got %q", byLabel["価格"])
	}
	if byLabel["間取り"] != "2LDK～3LDK" {
		t.Fatalf("expected layout from packed row, got %q", byLabel["間取り"])
	}
}

func TestParseHTML_FootnoteAndEmpty(t *testing.T) {
	p := NewDetailParser(config.SelectorConfig{})
	data := loadFixture(t, "detail_basic.html")

	fields, err := p.ParseHTML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	byLabel := map[string]string{}
	for _, f := range fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["専有面積"] != "55.5m²～70.5m²" {
		t.Fatalf("expected footnote mark stripped, got %q", byLabel["専有面積"])
	}
	if _, ok := byLabel["備考"]; ok {
		t.Fatalf("expected empty-value row skipped")
	}
}

func TestParseHTML_MultilineValue(t *testing.T) {
	p := NewDetailParser(config.SelectorConfig{})
	data := loadFixture(t, "detail_basic.html")

	fields, err := p.ParseHTML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var access string
	for _, f := range fields {
		if f.Label == "交通" {
			access = f.Value
		}
	}
	parts := strings.Split(access, "\t")
	if len(parts) != 2 {
		t.Fatalf("expected 2 tab-joined lines, got %q", access)
	}
	if !strings.Contains(parts[0], "六本木") || !strings.Contains(parts[1], "麻布十番") {
		t.Fatalf("unexpected access lines %q", access)
	}
}

func TestParseHTML_CustomSelectors(t *testing.T) {
	p := NewDetailParser(config.SelectorConfig{Table: "table.outline", Label: "th", Value: "td"})
	data := loadFixture(t, "detail_basic.html")

	fields, err := p.ParseHTML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(fields) != 7 {
		t.Fatalf("expected 7 fields with scoped selector, got %d", len(fields))
	}
}
