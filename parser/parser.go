package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"estate_cleanser/config"
	"estate_cleanser/models"
)

// DetailParser extracts raw label/value field pairs from a listing detail
// page's outline tables.
type DetailParser struct {
	tableSelector string
	labelSelector string
	valueSelector string
}

func NewDetailParser(selectors config.SelectorConfig) *DetailParser {
	p := &DetailParser{
		tableSelector: selectors.Table,
		labelSelector: selectors.Label,
		valueSelector: selectors.Value,
	}
	if p.tableSelector == "" {
		p.tableSelector = "table"
	}
	if p.labelSelector == "" {
		p.labelSelector = "th"
	}
	if p.valueSelector == "" {
		p.valueSelector = "td"
	}
	return p
}

var footnoteMarkPattern = regexp.MustCompile(`^[※◎●]\s*`)

// ParseHTML reads a detail page and returns its field pairs in document
// order. Rows with an empty label or value are skipped; a row whose label
// cell repeats within the page keeps every occurrence since phased listings
// legitimately repeat labels.
func (p *DetailParser) ParseHTML(r io.Reader) ([]models.RawField, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var fields []models.RawField
	doc.Find(p.tableSelector + " tr").Each(func(i int, row *goquery.Selection) {
		labels := row.Find(p.labelSelector)
		values := row.Find(p.valueSelector)
		if labels.Length() == 0 || values.Length() == 0 {
			return
		}
		// Outline tables sometimes pack two label/value pairs per row.
		n := labels.Length()
		if values.Length() < n {
			n = values.Length()
		}
		for j := 0; j < n; j++ {
			label := cleanCell(labels.Eq(j).Text())
			value := cleanCell(values.Eq(j).Text())
			if label == "" || value == "" {
				continue
			}
			fields = append(fields, models.RawField{Label: label, Value: value})
		}
	})

	return fields, nil
}

// cleanCell trims cell text and collapses the runs of whitespace the page
// templates leave around line breaks, keeping tabs since several converters
// split on them.
func cleanCell(text string) string {
	text = strings.TrimSpace(text)
	text = footnoteMarkPattern.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.Trim(line, " 　")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\t")
}
