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
	"fmt"
	"unicode/utf8"
)

// Chunk is a half-open range [Start, End) in the original text.
//
// Positions are expressed in runes (characters), not bytes, so a chunk can be
// mapped back to the text with Chunks.Texts or by slicing []rune(text).
//
// Highlight is only meaningful on the output of FillInChunks / FindAll. Raw
// matches returned by a Finder and merged chunks returned by CombineChunks
// leave it false.
type Chunk struct {
	Start     int  `json:"start"`     // First rune position (inclusive).
	End       int  `json:"end"`       // Last rune position (exclusive).
	Highlight bool `json:"highlight"` // True when the chunk matches a search word.
}

// Len returns the length of the chunk in runes.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Chunks is an ordered list of chunks.
type Chunks []Chunk

// Highlighted returns the highlight chunks only, in order.
func (cs Chunks) Highlighted() Chunks {
	out := make(Chunks, 0, len(cs))
	for _, c := range cs {
		if c.Highlight {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the portion of text covered by every chunk.
//
// Chunks are clamped to the text, so a chunk produced against a different
// text never panics; it simply yields a shorter (possibly empty) string.
func (cs Chunks) Texts(text string) []string {
	runes := []rune(text)
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		start := clamp(c.Start, 0, len(runes))
		end := clamp(c.End, start, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}

// Validate reports whether cs is a complete partition of [0, totalLength):
// every chunk is non-empty, each one starts where the previous one ended, and
// the last one ends at totalLength.
func (cs Chunks) Validate(totalLength int) error {
	cursor := 0
	for i, c := range cs {
		if c.Start != cursor {
			return fmt.Errorf("highlight: chunk %d starts at %d, expected %d", i, c.Start, cursor)
		}
		if c.End <= c.Start {
			return fmt.Errorf("highlight: chunk %d is empty [%d, %d)", i, c.Start, c.End)
		}
		cursor = c.End
	}
	if cursor != totalLength {
		return fmt.Errorf("highlight: chunks cover [0, %d), expected [0, %d)", cursor, totalLength)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runeCursor converts ascending byte offsets of a string into rune offsets
// without rescanning the prefix on every call.
type runeCursor struct {
	text    string
	bytePos int
	runePos int
}

// at returns the rune offset of byte offset b. Calls must be made with
// non-decreasing b.
func (rc *runeCursor) at(b int) int {
	if b < rc.bytePos {
		rc.bytePos, rc.runePos = 0, 0
	}
	rc.runePos += utf8.RuneCountInString(rc.text[rc.bytePos:b])
	rc.bytePos = b
	return rc.runePos
}
