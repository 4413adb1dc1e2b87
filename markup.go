package irish

import "strings"

// Mark classifies an annotated span for the renderer.
type Mark int

const (
	// MarkNone is unannotated text.
	MarkNone Mark = iota
	// MarkEmphasis highlights mutation material or agreeing evidence.
	MarkEmphasis
	// MarkWeak is emphasis the renderer may tone down (genitive masculine article).
	MarkWeak
	// MarkContrary underlines evidence that goes against the known gender.
	MarkContrary
	// MarkAnomaly underlines a surprising plural strength for the declension.
	MarkAnomaly
	// MarkIrregular underlines the irregular-noun flag.
	MarkIrregular
)

// String returns the class name used in HTML output.
func (m Mark) String() string {
	switch m {
	case MarkEmphasis:
		return "emphasis"
	case MarkWeak:
		return "weak"
	case MarkContrary:
		return "contrary"
	case MarkAnomaly:
		return "exc-strong-plural"
	case MarkIrregular:
		return "irr"
	default:
		return "none"
	}
}

// markTag pairs a mark with its opening and closing tags.
type markTag struct {
	mark  Mark
	open  string
	close string
}

// markTags is ordered so that class-carrying tags are tried before the bare
// tag sharing their element name.
var markTags = []markTag{
	{MarkWeak, `<i class="weak">`, "</i>"},
	{MarkEmphasis, "<i>", "</i>"},
	{MarkAnomaly, `<u class="exc-strong-plural">`, "</u>"},
	{MarkIrregular, `<u class="irr">`, "</u>"},
	{MarkContrary, "<u>", "</u>"},
}

// Tags returns the opening and closing markers for m. MarkNone has none.
func Tags(m Mark) (open, close string) {
	for _, t := range markTags {
		if t.mark == m {
			return t.open, t.close
		}
	}
	return "", ""
}

// Wrap encloses s in the markers for m.
func Wrap(m Mark, s string) string {
	open, close := Tags(m)
	return open + s + close
}

func emphasize(s string) string { return Wrap(MarkEmphasis, s) }

func contrary(s string) string { return Wrap(MarkContrary, s) }

// Segment is a run of text sharing one mark.
type Segment struct {
	Text string
	Mark Mark
}

// Segments splits an annotated string into marked runs. Unknown or
// unbalanced markers are treated as text boundaries and dropped.
func Segments(s string) []Segment {
	var (
		out     []Segment
		current = MarkNone
		buf     strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Segment{Text: buf.String(), Mark: current})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '<' {
			if m, n, ok := matchOpen(s[i:]); ok {
				flush()
				current = m
				i += n
				continue
			}
			if n, ok := matchClose(s[i:]); ok {
				flush()
				current = MarkNone
				i += n
				continue
			}
		}
		buf.WriteByte(s[i])
		i++
	}
	flush()
	return out
}

func matchOpen(s string) (Mark, int, bool) {
	for _, t := range markTags {
		if strings.HasPrefix(s, t.open) {
			return t.mark, len(t.open), true
		}
	}
	return MarkNone, 0, false
}

func matchClose(s string) (int, bool) {
	for _, c := range []string{"</i>", "</u>"} {
		if strings.HasPrefix(s, c) {
			return len(c), true
		}
	}
	return 0, false
}

// Strip removes every marker from s. It repeats until nothing changes, so
// Strip(Strip(s)) == Strip(s) for any input.
func Strip(s string) string {
	for {
		var b strings.Builder
		for _, seg := range Segments(s) {
			b.WriteString(seg.Text)
		}
		t := b.String()
		if t == s {
			return t
		}
		s = t
	}
}

// Mode selects between plain output and output carrying markers.
type Mode int

const (
	// Plain output has every marker stripped.
	Plain Mode = iota
	// Annotated output keeps markers for a renderer.
	Annotated
)

func (m Mode) apply(s string) string {
	if m == Plain {
		return Strip(s)
	}
	return s
}
