// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package highlight

import (
	"errors"
	"fmt"
	"regexp"
)

// Finder is the matching stage of FindAll.
//
// Implementations return the raw matches of o.SearchWords in text: chunks may
// overlap, come in any order and repeat; CombineChunks sorts that out.
// Positions are rune offsets.
//
// Implementations are:
//
//   - PatternFinder: regular expression matching (the default),
//   - MarkupFinder:  PatternFinder restricted to the content of a markup text,
//   - FinderFunc:    any plain function,
//   - Slog:          a logging decorator around another Finder.
type Finder interface {
	FindChunks(text string, o Options) ([]Chunk, error)
}

// FinderFunc is a function adapter that implements Finder.
//
//	f := FinderFunc(func(text string, o Options) ([]Chunk, error) {
//		return []Chunk{{Start: 1, End: 3}}, nil
//	})
type FinderFunc func(text string, o Options) ([]Chunk, error)

// FindChunks calls f(text, o).
func (f FinderFunc) FindChunks(text string, o Options) ([]Chunk, error) {
	return f(text, o)
}

// PatternFinder matches every search word as a regular expression (RE2
// syntax, see package regexp).
type PatternFinder struct{}

// FindChunks implements Finder.
func (PatternFinder) FindChunks(text string, o Options) ([]Chunk, error) {
	return FindChunks(text, o)
}

// FindChunks returns every match of every non-empty search word in text.
//
// Each word is scanned independently over the whole text and the results are
// concatenated in word order. Matches of a single word never overlap each
// other; matches of different words may. Zero-length matches (for instance
// the empty match of "w?") are dropped, and the scan resumes one rune after
// them, so a pattern that can match the empty string always terminates.
//
// The text and the words go through o.Sanitize first. With o.AutoEscape the
// words are quoted with regexp.QuoteMeta. Otherwise a word that is not a
// valid expression makes FindChunks fail; every invalid word is reported.
func FindChunks(text string, o Options) ([]Chunk, error) {
	sanitize := o.Sanitize
	if sanitize == nil {
		sanitize = Identity
	}
	text = sanitize(text)

	var (
		chunks []Chunk
		errs   []error
	)
	for _, word := range o.SearchWords {
		if word == "" {
			continue
		}
		re, err := compileWord(sanitize(word), o.CaseSensitive, o.AutoEscape)
		if err != nil {
			errs = append(errs, fmt.Errorf("highlight: invalid search word %q: %w", word, err))
			continue
		}
		chunks = appendMatches(chunks, text, re)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return chunks, nil
}

func compileWord(word string, caseSensitive, autoEscape bool) (*regexp.Regexp, error) {
	if autoEscape {
		word = regexp.QuoteMeta(word)
	}
	if !caseSensitive {
		word = "(?i)" + word
	}
	return regexp.Compile(word)
}

// appendMatches appends the non-empty matches of re in text, converted to
// rune offsets.
func appendMatches(chunks []Chunk, text string, re *regexp.Regexp) []Chunk {
	// FindAllStringIndex already steps over empty matches: one that abuts the
	// previous match is skipped and the scan moves forward by one rune.
	locs := re.FindAllStringIndex(text, -1)
	rc := runeCursor{text: text}
	for _, loc := range locs {
		if loc[1] <= loc[0] {
			continue
		}
		start := rc.at(loc[0])
		end := rc.at(loc[1])
		chunks = append(chunks, Chunk{Start: start, End: end})
	}
	return chunks
}
