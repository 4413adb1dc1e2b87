package irish

// ArticleTable holds the article forms of one noun.
type ArticleTable struct {
	// Word is the headword the table was built for.
	Word string
	// Cells maps a word-form descriptor to "article + noun".
	Cells map[Descriptor]string
}

// Cell returns the form for d, or "" when the record lacks it.
func (t *ArticleTable) Cell(d Descriptor) string {
	if t == nil {
		return ""
	}
	return t.Cells[d]
}

// ArticleForms applies the definite article to every form present in rec.
// Absent forms have no cell.
func ArticleForms(word string, rec DeclensionRecord, gender Gender, mode Mode) (*ArticleTable, error) {
	if gender == "" {
		gender = rec.Gender
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	table := &ArticleTable{
		Word:  word,
		Cells: make(map[Descriptor]string, len(Descriptors)),
	}
	for _, d := range Descriptors {
		form := rec.Form(d)
		if form == "" {
			continue
		}
		s, err := ApplyArticle(Strip(form), gender, d, mode)
		if err != nil {
			return nil, err
		}
		table.Cells[d] = s
	}
	return table, nil
}
