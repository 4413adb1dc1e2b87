package irish

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	NounsFile      = "nouns.txt"
	AdjectivesFile = "adjectives.txt"
)

// loadNouns reads nouns.txt into l.nouns. Records whose genitive plural
// has no nominative plural are skipped with a warning.
func (l *Lexicon) loadNouns(dataDir string) error {
	return scanFile(filepath.Join(dataDir, NounsFile), func(lineNo int, line string) {
		n := newNoun(line)
		if n == nil {
			l.logger.Warn().Str("file", NounsFile).Int("line", lineNo).Msg("malformed noun line")
			return
		}
		if err := n.Record.Validate(); err != nil {
			l.logger.Warn().Str("file", NounsFile).Int("line", lineNo).Str("word", n.Word).Err(err).Msg("skipping noun")
			return
		}
		l.nouns[n.Key] = n
	})
}

// loadAdjectives reads adjectives.txt into l.adjectives. The file is
// optional.
func (l *Lexicon) loadAdjectives(dataDir string) error {
	err := scanFile(filepath.Join(dataDir, AdjectivesFile), func(lineNo int, line string) {
		a := newAdjective(line)
		if a == nil {
			l.logger.Warn().Str("file", AdjectivesFile).Int("line", lineNo).Msg("malformed adjective line")
			return
		}
		l.adjectives[a.Key] = a
	})
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug().Str("dir", dataDir).Msg("no adjectives file")
		return nil
	}
	return err
}

// scanFile calls fn for every non-blank line that is not a "!" comment.
func scanFile(path string, fn func(lineNo int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fn(lineNo, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return nil
}
