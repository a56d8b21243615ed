package render

import (
	"strings"

	"github.com/samber/lo"
)

// Title heads every report.
const Title = "Documio – Ärztlicher Befundbericht"

// Style selects the font a line is drawn with.
type Style int

const (
	StyleTitle Style = iota
	StyleMeta
	StyleBody
)

// Geometry holds page size and spacing in points. Y grows downwards from the
// top edge and addresses the text baseline.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	LeftMargin   float64
	TopMargin    float64
	BottomMargin float64
	TitleGap     float64
	MetaGap      float64
	BodyGap      float64
	LineHeight   float64
}

// A4 returns the report geometry on an A4 page.
func A4() Geometry {
	return Geometry{
		PageWidth:    595.28,
		PageHeight:   841.89,
		LeftMargin:   50,
		TopMargin:    50,
		BottomMargin: 60,
		TitleGap:     40,
		MetaGap:      20,
		BodyGap:      30,
		LineHeight:   15,
	}
}

// TextWidth is the usable width of a body line.
func (g Geometry) TextWidth() float64 {
	return g.PageWidth - 2*g.LeftMargin
}

// Line is one positioned piece of text. Page starts at 1.
type Line struct {
	Page  int
	X     float64
	Y     float64
	Style Style
	Text  string
}

// Layout is the full set of positioned lines for a document.
type Layout struct {
	Lines []Line
	Pages int
}

// Body returns the report lines, without title and metadata.
func (l Layout) Body() []Line {
	return lo.Filter(l.Lines, func(line Line, _ int) bool {
		return line.Style == StyleBody
	})
}

// MeasureFunc returns the drawn width of text in points.
type MeasureFunc func(style Style, text string) float64

// MetadataLines returns the labelled header lines shown under the title.
func MetadataLines(doc Document) []string {
	return []string{
		"Praxis: " + doc.Practice,
		"Patient: " + doc.Patient,
		"Geburtsdatum: " + doc.BirthDate,
		"Datum: " + doc.Date,
	}
}

// Compose positions title, metadata and report text on pages.
func Compose(doc Document, geo Geometry, measure MeasureFunc) Layout {
	page := 1
	y := geo.TopMargin
	lines := make([]Line, 0, 16)

	lines = append(lines, Line{
		Page:  page,
		X:     (geo.PageWidth - measure(StyleTitle, Title)) / 2,
		Y:     y,
		Style: StyleTitle,
		Text:  Title,
	})
	y += geo.TitleGap

	meta := MetadataLines(doc)
	for i, text := range meta {
		lines = append(lines, Line{Page: page, X: geo.LeftMargin, Y: y, Style: StyleMeta, Text: text})
		if i < len(meta)-1 {
			y += geo.MetaGap
		} else {
			y += geo.BodyGap
		}
	}

	bodyWidth := func(s string) float64 { return measure(StyleBody, s) }
	for _, fragment := range Fragments(doc.Report) {
		for _, text := range Wrap(fragment, geo.TextWidth(), bodyWidth) {
			if y > geo.PageHeight-geo.BottomMargin {
				page++
				y = geo.TopMargin
			}
			lines = append(lines, Line{Page: page, X: geo.LeftMargin, Y: y, Style: StyleBody, Text: text})
			y += geo.LineHeight
		}
	}

	return Layout{Lines: lines, Pages: page}
}

// Fragments splits report text into drawable lines: one paragraph per
// newline, then one fragment per ". " inside a paragraph. Fragments keep
// their period, and a list number such as "1." stays with the text after it.
// An empty paragraph yields one empty fragment so blank lines stay visible.
func Fragments(report string) []string {
	var fragments []string
	for _, paragraph := range strings.Split(report, "\n") {
		parts := lo.Map(strings.SplitAfter(strings.TrimSpace(paragraph), ". "), func(part string, _ int) string {
			return strings.TrimSpace(part)
		})
		for i := 0; i < len(parts); i++ {
			fragment := parts[i]
			for isEnumerator(parts[i]) && i+1 < len(parts) {
				i++
				fragment += " " + parts[i]
			}
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

func isEnumerator(s string) bool {
	if len(s) < 2 || !strings.HasSuffix(s, ".") {
		return false
	}
	for _, r := range s[:len(s)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Wrap breaks text into lines no wider than maxWidth, on word boundaries
// where possible. A word wider than maxWidth is broken between characters.
func Wrap(text string, maxWidth float64, width func(string) float64) []string {
	if width(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if width(word) <= maxWidth {
			current = word
			continue
		}
		pieces := breakWord(word, maxWidth, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, maxWidth float64, width func(string) float64) []string {
	var pieces []string
	runes := []rune(word)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if width(string(runes[start:i])) > maxWidth && i-1 > start {
			pieces = append(pieces, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(pieces, string(runes[start:]))
}
