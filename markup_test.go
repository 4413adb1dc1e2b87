package irish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []Segment
	}{
		{"bád", []Segment{{"bád", MarkNone}}},
		{"an <i>t</i>sráid", []Segment{
			{"an ", MarkNone}, {"t", MarkEmphasis}, {"sráid", MarkNone},
		}},
		{`<i class="weak">an</i> b<i>h</i>áid`, []Segment{
			{"an", MarkWeak}, {" b", MarkNone}, {"h", MarkEmphasis}, {"áid", MarkNone},
		}},
		{"cail<u>ín</u>", []Segment{{"cail", MarkNone}, {"ín", MarkContrary}}},
		{`n<i>m</i>1 <u class="exc-strong-plural">but</u> strong plural, <u class="irr">irregular</u>`, []Segment{
			{"n", MarkNone}, {"m", MarkEmphasis}, {"1 ", MarkNone},
			{"but", MarkAnomaly}, {" strong plural, ", MarkNone}, {"irregular", MarkIrregular},
		}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(tt.in))
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<i>m</i>bád", "mbád"},
		{`<i class="weak">an</i> b<i>h</i>áid`, "an bháid"},
		{"a < b", "a < b"},
		// markers rebuilt by removing inner markers are removed too
		{"<<i>i>x</i>", "x"},
		{"<</u>u>y", "y"},
	}
	for _, tt := range tests {
		got := Strip(tt.in)
		assert.Equal(t, tt.want, got, "Strip(%q)", tt.in)
		assert.Equal(t, got, Strip(got), "Strip must be idempotent for %q", tt.in)
	}
}

func TestWrapAndTags(t *testing.T) {
	assert.Equal(t, "<i>h</i>", Wrap(MarkEmphasis, "h"))
	assert.Equal(t, `<u class="irr">irregular</u>`, Wrap(MarkIrregular, "irregular"))
	assert.Equal(t, "x", Wrap(MarkNone, "x"))

	open, close := Tags(MarkWeak)
	assert.Equal(t, `<i class="weak">`, open)
	assert.Equal(t, "</i>", close)

	assert.Equal(t, "exc-strong-plural", MarkAnomaly.String())
	assert.Equal(t, "contrary", MarkContrary.String())
}

func TestModeApply(t *testing.T) {
	assert.Equal(t, "an tsráid", Plain.apply("an <i>t</i>sráid"))
	assert.Equal(t, "an <i>t</i>sráid", Annotated.apply("an <i>t</i>sráid"))
}
