package irish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(gender Gender, forms ...string) DeclensionRecord {
	f := make([]string, 5)
	copy(f, forms)
	return DeclensionRecord{
		Gender:             gender,
		NominativeSingular: f[0],
		GenitiveSingular:   f[1],
		NominativePlural:   f[2],
		GenitivePlural:     f[3],
		PluralStrength:     f[4],
	}
}

func TestClassifyDeclensionAnomaly(t *testing.T) {
	tests := []struct {
		name string
		rec  DeclensionRecord
		want bool
	}{
		{"nm3 weak", record("nm3", "am", "ama", "amanna", "amanna", WeakPlural), true},
		{"nm3 strong", record("nm3", "am", "ama", "amanna", "amanna", StrongPlural), false},
		{"nf4 weak", record("nf4", "oíche", "oíche", "oícheanta", "oícheanta", WeakPlural), true},
		{"nf5 weak", record("nf5", "cathaoir", "cathaoireach", "cathaoireacha", "", WeakPlural), true},
		{"nf2 weak", record("nf2", "bróg", "bróige", "bróga", "bróg", WeakPlural), false},
		{"nm1 strong", record("nm1", "solas", "solais", "soilse", "soilse", StrongPlural), true},
		{"nm1 weak", record("nm1", "bád", "báid", "báid", "bád", WeakPlural), false},
		{"no plural", record("nm3", "am", "ama", "", "", WeakPlural), false},
		{"no strength", record("nm1", "bád", "báid", "báid", "bád", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ClassifyDeclension(tt.rec.NominativeSingular, tt.rec, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.AnomalousPluralStrength)
			assert.Equal(t, tt.rec.Gender, c.Gender)
		})
	}
}

func TestClassifyDeclensionIrregular(t *testing.T) {
	for word, want := range map[string]bool{
		"bean":     true,
		"teach":    true,
		"deirfiúr": true,
		"fear":     false,
		"bád":      false,
	} {
		c, err := ClassifyDeclension(word, record("nf", word, "x"), "")
		require.NoError(t, err)
		assert.Equal(t, want, c.Irregular, word)
	}

	// the flag needs a nominative singular form
	c, err := ClassifyDeclension("bean", record("nf", "", "mná"), "")
	require.NoError(t, err)
	assert.False(t, c.Irregular)
}

func TestClassifyDeclensionGender(t *testing.T) {
	c, err := ClassifyDeclension("am", record("", "am", "ama", "amanna", "", WeakPlural), "nm3")
	require.NoError(t, err)
	assert.Equal(t, Gender("nm3"), c.Gender)
	assert.True(t, c.AnomalousPluralStrength)

	_, err = ClassifyDeclension("am", record("", "am"), "")
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestDeclensionRecordValidate(t *testing.T) {
	assert.NoError(t, record("nm1", "bád", "báid", "báid", "bád").Validate())
	assert.NoError(t, record("nm1", "bád", "báid").Validate())

	err := record("nm1", "bád", "báid", "", "bád").Validate()
	assert.ErrorIs(t, err, ErrMissingData)

	_, err = ClassifyDeclension("bád", record("nm1", "bád", "báid", "", "bád"), "")
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestFormatDeclension(t *testing.T) {
	tests := []struct {
		name string
		rec  DeclensionRecord
		want DeclensionSummary
	}{
		{
			name: "weak plural",
			rec:  record("nm1", "bád", "báid", "báid", "bád", WeakPlural),
			want: DeclensionSummary{
				Forms:       "bád/báid",
				Description: "n<i>m</i>1 weak plural",
				Genitive:    "báid/bád",
				Class:       "nm",
				Declension:  "1",
			},
		},
		{
			name: "anomalous strong plural",
			rec:  record("nm1", "solas", "solais", "soilse", "soilse", StrongPlural),
			want: DeclensionSummary{
				Forms:       "solas/soilse",
				Description: `n<i>m</i>1 <u class="exc-strong-plural">but</u> strong plural`,
				Genitive:    "solais/soilse",
				Class:       "nm",
				Declension:  "1",
			},
		},
		{
			name: "irregular",
			rec:  record("nf", "bean", "mná", "mná", "ban", StrongPlural),
			want: DeclensionSummary{
				Forms:       "bean/mná",
				Description: `n<i>f</i> strong plural, <u class="irr">irregular</u>`,
				Genitive:    "mná/ban",
				Class:       "nf",
				Declension:  "",
			},
		},
		{
			name: "singular only",
			rec:  record("nf2", "feirm", "feirme"),
			want: DeclensionSummary{
				Forms:       "feirm",
				Description: "n<i>f</i>2",
				Genitive:    "feirme",
				Class:       "nf",
				Declension:  "2",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDeclension(tt.rec.NominativeSingular, tt.rec, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Empty())
		})
	}
}

func TestFormatDeclensionMissingSingular(t *testing.T) {
	got, err := FormatDeclension("fear", record("nm1", "fear", "", "fir", "fear", WeakPlural), "")
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Empty(t, got.Genitive)
	assert.Equal(t, "n<i>m</i>1 weak plural", got.Description)
}

func TestFormatDeclensionKeepsMarkers(t *testing.T) {
	rec := record("nm4", "cail<i>ín</i>", "cailín", "cailíní", "cailíní", StrongPlural)
	got, err := FormatDeclension("cailín", rec, "")
	require.NoError(t, err)
	assert.Equal(t, "cail<i>ín</i>/cailíní", got.Forms)
}

func TestDeclensionRecordForm(t *testing.T) {
	rec := record("nm1", "bád", "báid", "báid2", "bád2", WeakPlural)
	assert.Equal(t, "bád", rec.Form(NominativeSingular))
	assert.Equal(t, "báid", rec.Form(GenitiveSingular))
	assert.Equal(t, "báid2", rec.Form(NominativePlural))
	assert.Equal(t, "bád2", rec.Form(GenitivePlural))
	assert.Equal(t, WeakPlural, rec.Form(PluralStrengthTag))
	assert.Empty(t, rec.Form("dative"))
}

func TestArticleForms(t *testing.T) {
	rec := record("nm1", "bád", "báid", "báid", "bád", WeakPlural)
	table, err := ArticleForms("bád", rec, "", Plain)
	require.NoError(t, err)
	assert.Equal(t, map[Descriptor]string{
		NominativeSingular: "an bád",
		GenitiveSingular:   "an bháid",
		NominativePlural:   "na báid",
		GenitivePlural:     "na mbád",
	}, table.Cells)

	// absent forms have no cell; annotated input forms are stripped first
	table, err = ArticleForms("bean", record("nf", "b<i>e</i>an", "mná"), "", Annotated)
	require.NoError(t, err)
	assert.Equal(t, "an b<i>h</i>ean", table.Cell(NominativeSingular))
	assert.Equal(t, "<i>na</i> mná", table.Cell(GenitiveSingular))
	assert.Empty(t, table.Cell(NominativePlural))

	var none *ArticleTable
	assert.Empty(t, none.Cell(NominativeSingular))

	_, err = ArticleForms("bád", record("x", "bád"), "", Plain)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenderCode(t *testing.T) {
	tests := []struct {
		g                 Gender
		nf, nm, known     bool
		class, declension string
	}{
		{"nf2", true, false, true, "nf", "2"},
		{"nm1", false, true, true, "nm", "1"},
		{"nf", true, false, true, "nf", ""},
		{"adj", false, false, false, "", ""},
		{"", false, false, false, "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nf, tt.g.Feminine(), "%q Feminine", tt.g)
		assert.Equal(t, tt.nm, tt.g.Masculine(), "%q Masculine", tt.g)
		assert.Equal(t, tt.known, tt.g.Known(), "%q Known", tt.g)
		assert.Equal(t, tt.class, tt.g.Class(), "%q Class", tt.g)
		assert.Equal(t, tt.declension, tt.g.Declension(), "%q Declension", tt.g)
	}
}

func TestDescriptor(t *testing.T) {
	assert.True(t, GenitivePlural.Genitive())
	assert.True(t, GenitivePlural.EndsPlural())
	assert.True(t, NominativeSingular.Nominative())
	assert.False(t, NominativeSingular.Plural())
	assert.True(t, PluralStrengthTag.Plural())
	assert.False(t, PluralStrengthTag.EndsPlural())
	assert.True(t, PluralStrengthTag.PluralStrength())
}
