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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sanitizer normalizes a text or a search word before matching.
//
// Chunk positions are computed on the sanitized text. To keep them valid for
// the original text, a Sanitizer must map every rune to exactly one rune.
type Sanitizer func(string) string

// Identity returns s unchanged. It is the default Sanitizer.
func Identity(s string) string {
	return s
}

// ChainSanitizers applies the given sanitizers from left to right.
// Nil sanitizers are ignored.
func ChainSanitizers(sanitizers ...Sanitizer) Sanitizer {
	chain := make([]Sanitizer, 0, len(sanitizers))
	for _, s := range sanitizers {
		if s != nil {
			chain = append(chain, s)
		}
	}
	switch len(chain) {
	case 0:
		return Identity
	case 1:
		return chain[0]
	}
	return func(s string) string {
		for _, sanitize := range chain {
			s = sanitize(s)
		}
		return s
	}
}

// FoldAccents replaces every accented latin letter by its base letter, so
// that "example" matches "ỆᶍǍᶆṔƚÉ" case-insensitively.
//
// Folding is done rune by rune, the rune count never changes and chunk
// positions stay valid for the original text.
func FoldAccents(s string) string {
	out, _, err := transform.String(runes.Map(foldRune), s)
	if err != nil {
		return s
	}
	return out
}

// foldRune returns the base letter of r when r decomposes (NFD) into a single
// letter followed by combining marks, or when it is one of the hooked or
// stroked letters that have no decomposition.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	if base, ok := undecomposable[r]; ok {
		return base
	}
	d := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(d)
	if size == len(d) || unicode.Is(unicode.Mn, base) {
		return r
	}
	for _, m := range d[size:] {
		if !unicode.Is(unicode.Mn, m) {
			// Hangul syllables and friends: not an accent.
			return r
		}
	}
	return base
}

var undecomposable = map[rune]rune{
	'Đ': 'D', 'đ': 'd',
	'Ħ': 'H', 'ħ': 'h',
	'ı': 'i', 'ɨ': 'i',
	'Ł': 'L', 'ł': 'l', 'ƚ': 'l', 'ɫ': 'l',
	'Ø': 'O', 'ø': 'o',
	'Ŧ': 'T', 'ŧ': 't',
	'ƀ': 'b', 'Ƀ': 'B',
	'ʉ': 'u',
	'ᵬ': 'b', 'ᶀ': 'b',
	'ᵭ': 'd', 'ᶁ': 'd',
	'ᶂ': 'f',
	'ᶃ': 'g',
	'ᶄ': 'k',
	'ᶅ': 'l',
	'ᵯ': 'm', 'ᶆ': 'm',
	'ᵰ': 'n', 'ᶇ': 'n',
	'ᵱ': 'p', 'ᶈ': 'p',
	'ᵲ': 'r', 'ᶉ': 'r',
	'ᵴ': 's', 'ᶊ': 's',
	'ᵵ': 't',
	'ᶌ': 'v',
	'ᶍ': 'x',
	'ᵶ': 'z', 'ᶎ': 'z',
}
