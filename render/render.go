// Package render turns annotated strings from package irish into HTML,
// coloured terminal text, or plain text.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gookit/color"

	irish "github.com/cuplamilefocal/lookup-irish"
)

// Format selects the output markup.
type Format int

const (
	HTML Format = iota
	Terminal
	Plain
)

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Terminal:
		return "terminal"
	default:
		return "plain"
	}
}

// ParseFormat accepts "html", "terminal" (or "bash") and "plain".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return HTML, nil
	case "terminal", "bash", "term":
		return Terminal, nil
	case "plain", "text", "":
		return Plain, nil
	}
	return Plain, fmt.Errorf("unknown format %q", s)
}

var (
	feminineStyle  = color.New(color.FgMagenta)
	masculineStyle = color.New(color.FgBlue)
	weakStyle      = color.New(color.BgBlack)
	underlineStyle = color.New(color.BgRed)
)

// style returns the terminal style for a mark. Emphasis follows the
// gender: magenta for feminine, blue otherwise.
func style(m irish.Mark, gender irish.Gender) (color.Style, bool) {
	switch m {
	case irish.MarkEmphasis:
		if gender.Feminine() {
			return feminineStyle, true
		}
		return masculineStyle, true
	case irish.MarkWeak:
		return weakStyle, true
	case irish.MarkContrary, irish.MarkAnomaly, irish.MarkIrregular:
		return underlineStyle, true
	}
	return nil, false
}

// Inline renders one annotated string. gender picks the terminal emphasis
// colour and is ignored by the other formats.
func Inline(s string, gender irish.Gender, f Format) string {
	switch f {
	case Plain:
		return irish.Strip(s)
	case HTML:
		var b strings.Builder
		for _, seg := range irish.Segments(s) {
			open, close := irish.Tags(seg.Mark)
			b.WriteString(open)
			b.WriteString(html.EscapeString(seg.Text))
			b.WriteString(close)
		}
		return b.String()
	default:
		var b strings.Builder
		for _, seg := range irish.Segments(s) {
			if st, ok := style(seg.Mark, gender); ok {
				b.WriteString(st.Sprint(seg.Text))
				continue
			}
			b.WriteString(seg.Text)
		}
		return b.String()
	}
}

// Declension renders a declension summary. The terminal layout drops the
// description and puts the genitive on its own line. An empty summary
// renders as "".
func Declension(sum irish.DeclensionSummary, f Format) string {
	if sum.Empty() {
		return ""
	}
	gender := irish.Gender(sum.Class)

	switch f {
	case HTML:
		middle := `<div class="decl">` + Inline(sum.Description, gender, HTML) + `</div>`
		r := Inline(sum.Forms, gender, HTML) + middle + Inline(sum.Genitive, gender, HTML)
		return fmt.Sprintf(`<div class="%s d%s">%s</div>`, sum.Class, sum.Declension, r)
	case Terminal:
		return Inline(sum.Forms, gender, Terminal) + "\n" + Inline(sum.Genitive, gender, Terminal)
	default:
		return strings.Join([]string{
			irish.Strip(sum.Forms),
			irish.Strip(sum.Description),
			irish.Strip(sum.Genitive),
		}, "\n")
	}
}

// Adjective renders adjective examples, one line per example.
func Adjective(ex irish.AdjectiveExamples, f Format) string {
	if len(ex.Lines) == 0 {
		return ""
	}

	lines := make([]string, 0, len(ex.Lines))
	for _, l := range ex.Lines {
		lines = append(lines, adjectiveLine(l, f))
	}
	r := strings.Join(lines, "\n")
	if f == HTML {
		return `<div class="adj">` + r + `</div>`
	}
	return r
}

func adjectiveLine(l irish.AdjectiveLine, f Format) string {
	gender := irish.Masculine
	if l.Kind == irish.LineFeminine {
		gender = irish.Feminine
	}

	if f != HTML {
		form := Inline(l.Form, gender, f)
		if l.Noun == "" {
			return form
		}
		return l.Noun + " " + form
	}

	form := Inline(l.Form, gender, HTML)
	noun := html.EscapeString(l.Noun)
	switch l.Kind {
	case irish.LineMasculine, irish.LineFeminine:
		return fmt.Sprintf(`<div class="%s"><i class="noun">%s</i> %s</div>`, l.Kind.Class(), noun, form)
	case irish.LineOther:
		return fmt.Sprintf(`<div class="%s">%s</div>`, l.Kind.Class(), form)
	default:
		return fmt.Sprintf(`<div class="%s"><span class="noun">%s</span> %s</div>`, l.Kind.Class(), noun, form)
	}
}
