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

import "log/slog"

// Options configures a search. The zero value is usable: it matches nothing
// because SearchWords is empty.
//
// Defaults:
//
//   - CaseSensitive: false (matching ignores case).
//   - AutoEscape:    false (search words are regular expressions).
//   - Sanitize:      nil, meaning Identity.
//   - HTMLText:      false (tags and attributes are searched like any text).
//   - FindChunks:    nil, meaning PatternFinder, or MarkupFinder with
//     HTMLRegions when HTMLText is set.
//   - Logger:        nil, meaning FindAll does not log.
type Options struct {
	// SearchWords are the terms to look for. Empty words are ignored.
	SearchWords []string

	// CaseSensitive disables case folding.
	CaseSensitive bool

	// AutoEscape quotes every search word so it matches itself verbatim.
	// Enable it whenever the words come from an untrusted source.
	AutoEscape bool

	// Sanitize is applied to the text and to every search word before
	// matching. Chunk positions refer to the sanitized text, so a sanitizer
	// must keep the rune count unchanged for them to be valid against the
	// original text. FoldAccents does; custom sanitizers must do the same.
	Sanitize Sanitizer

	// HTMLText restricts matching to the text content of an HTML document:
	// tag names and attributes are never highlighted.
	HTMLText bool

	// FindChunks replaces the matching stage.
	FindChunks Finder

	// Logger receives one debug record per FindAll call.
	Logger *slog.Logger
}

// withDefaults resolves the nil fields of o.
func (o Options) withDefaults() Options {
	if o.Sanitize == nil {
		o.Sanitize = Identity
	}
	if o.FindChunks == nil {
		if o.HTMLText {
			o.FindChunks = MarkupFinder{Regions: HTMLRegions}
		} else {
			o.FindChunks = PatternFinder{}
		}
	}
	return o
}
