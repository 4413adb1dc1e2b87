package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phuslu/log"

	irish "github.com/cuplamilefocal/lookup-irish"
	"github.com/cuplamilefocal/lookup-irish/render"
)

// ---- JSON response types ------------------------------------------------

type mutateResponse struct {
	Word   string `json:"word"`
	Kind   string `json:"kind"`
	Result string `json:"result"`
}

type articleResponse struct {
	Word   string `json:"word"`
	Gender string `json:"gender"`
	Case   string `json:"case"`
	Result string `json:"result"`
}

type possessiveResponse struct {
	Word     string `json:"word"`
	Particle string `json:"particle"`
	Result   string `json:"result"`
}

type genderResponse struct {
	Word      string `json:"word"`
	Gender    string `json:"gender"`
	Annotated string `json:"annotated"`
	Source    string `json:"source"`
	Ending    string `json:"ending,omitempty"`
	Agrees    bool   `json:"agrees"`
}

type nounResponse struct {
	Word       string            `json:"word"`
	Gender     string            `json:"gender"`
	Declension string            `json:"declension"`
	Hint       genderResponse    `json:"hint"`
	Articles   map[string]string `json:"articles"`
	My         string            `json:"my"`
	Your       string            `json:"your"`
	Irregular  bool              `json:"irregular"`
	Anomalous  bool              `json:"anomalous_plural_strength"`
}

type batchRequest struct {
	Words []string `json:"words"`
}

type batchResultJSON struct {
	Word  string        `json:"word"`
	Noun  *nounResponse `json:"noun,omitempty"`
	Error string        `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResultJSON `json:"results"`
}

type adjectiveLineJSON struct {
	Noun string `json:"noun,omitempty"`
	Form string `json:"form"`
}

type adjectiveResponse struct {
	Word     string              `json:"word"`
	Examples string              `json:"examples"`
	Lines    []adjectiveLineJSON `json:"lines"`
	Missing  []string            `json:"missing,omitempty"`
}

type matchJSON struct {
	Word     string `json:"word"`
	Gender   string `json:"gender"`
	Mutation string `json:"mutation,omitempty"`
}

type lookupResponse struct {
	Form    string      `json:"form"`
	Matches []matchJSON `json:"matches"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Nouns      int    `json:"nouns"`
	Adjectives int    `json:"adjectives"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, logger *log.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("encode response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, s.logger, status, errorResponse{Error: msg})
}

// writeEngineError maps engine errors to HTTP status codes.
func (s *server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, irish.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, irish.ErrInvalidInput), errors.Is(err, irish.ErrMissingData):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Msg("engine failure")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func requireMethod(s *server, w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		s.writeError(w, http.StatusMethodNotAllowed, method+" required")
		return false
	}
	return true
}

// format reads the "format" query parameter, defaulting to plain.
func format(r *http.Request) (render.Format, error) {
	return render.ParseFormat(r.URL.Query().Get("format"))
}

func toGenderJSON(p irish.GenderPrediction, gender irish.Gender, f render.Format) genderResponse {
	return genderResponse{
		Word:      p.Word,
		Gender:    string(gender),
		Annotated: render.Inline(p.Annotated, gender, f),
		Source:    p.Source.String(),
		Ending:    p.Ending,
		Agrees:    p.Agrees,
	}
}

func toNounJSON(a *irish.NounAnalysis, f render.Format) *nounResponse {
	articles := make(map[string]string, len(a.Articles.Cells))
	for d, form := range a.Articles.Cells {
		articles[string(d)] = render.Inline(form, a.Gender, f)
	}
	return &nounResponse{
		Word:       a.Word,
		Gender:     string(a.Gender),
		Declension: render.Declension(a.Declension, f),
		Hint:       toGenderJSON(a.Prediction, a.Gender, f),
		Articles:   articles,
		My:         render.Inline(a.My, a.Gender, f),
		Your:       render.Inline(a.Your, a.Gender, f),
		Irregular:  a.Class.Irregular,
		Anomalous:  a.Class.AnomalousPluralStrength,
	}
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleMutate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	word, kind := q.Get("word"), strings.ToLower(q.Get("kind"))

	var out string
	switch kind {
	case "eclipse", "eclipsis":
		out, err = irish.Eclipse(word, irish.Annotated)
	case "lenite", "lenition":
		out, err = irish.Lenite(word, irish.Annotated)
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mutation kind %q", kind))
		return
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, mutateResponse{
		Word:   word,
		Kind:   kind,
		Result: render.Inline(out, "", f),
	})
}

func (s *server) handleArticle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	word := q.Get("word")
	gender := irish.Gender(q.Get("gender"))
	d := irish.Descriptor(q.Get("case"))
	if d == "" {
		d = irish.NominativeSingular
	}

	out, err := irish.ApplyArticle(word, gender, d, irish.Annotated)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, articleResponse{
		Word:   word,
		Gender: string(gender),
		Case:   string(d),
		Result: render.Inline(out, gender, f),
	})
}

func (s *server) handlePossessive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	word := q.Get("word")
	p := irish.Particle(strings.ToLower(q.Get("particle")))
	if p == "" {
		p = irish.My
	}
	if p != irish.My && p != irish.Your {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown particle %q", p))
		return
	}

	out, err := irish.Possessive(word, p, irish.Annotated)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, possessiveResponse{
		Word:     word,
		Particle: string(p),
		Result:   render.Inline(out, "", f),
	})
}

func (s *server) handleGender(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	gender := irish.Gender(q.Get("gender"))

	p, err := irish.PredictGender(q.Get("word"), gender)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if err := p.Err(); err != nil {
		s.logger.Warn().Str("word", p.Word).Err(err).Msg("no gender hint")
	}
	writeJSON(w, s.logger, http.StatusOK, toGenderJSON(p, gender, f))
}

func (s *server) handleNoun(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}

	a, err := s.lex.Analyze(word)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, toNounJSON(a, f))
}

func (s *server) handleNounBatch(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodPost) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var body batchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'words' array")
		return
	}
	if len(body.Words) > s.cfg.Server.MaxBatch {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("at most %d words per request", s.cfg.Server.MaxBatch))
		return
	}

	results, err := s.lex.AnalyzeAll(r.Context(), body.Words)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	out := make([]batchResultJSON, 0, len(results))
	for _, res := range results {
		item := batchResultJSON{Word: res.Word}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else {
			item.Noun = toNounJSON(res.Analysis, f)
		}
		out = append(out, item)
	}
	writeJSON(w, s.logger, http.StatusOK, batchResponse{Results: out})
}

func (s *server) handleAdjective(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	f, err := format(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}

	ex, err := s.lex.AdjectiveExamples(word)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	lines := make([]adjectiveLineJSON, 0, len(ex.Lines))
	for _, l := range ex.Lines {
		lines = append(lines, adjectiveLineJSON{Noun: l.Noun, Form: render.Inline(l.Form, "", f)})
	}
	writeJSON(w, s.logger, http.StatusOK, adjectiveResponse{
		Word:     ex.Adjective,
		Examples: render.Adjective(ex, f),
		Lines:    lines,
		Missing:  ex.Missing,
	})
}

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	form := r.URL.Query().Get("form")
	if form == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
		return
	}

	matches := s.lex.Lookup(form)
	out := make([]matchJSON, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchJSON{
			Word:     m.Noun.Word,
			Gender:   string(m.Noun.Record.Gender),
			Mutation: string(m.Mutation),
		})
	}
	status := http.StatusOK
	if len(out) == 0 {
		status = http.StatusNotFound
	}
	writeJSON(w, s.logger, status, lookupResponse{Form: form, Matches: out})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(s, w, r, http.MethodGet) {
		return
	}
	nouns, adjectives := s.lex.Len()
	writeJSON(w, s.logger, http.StatusOK, healthResponse{
		Status:     "ok",
		Nouns:      nouns,
		Adjectives: adjectives,
	})
}
