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

// Package highlight locates search words in a text and splits the text into
// an ordered list of highlight and non-highlight chunks, ready to be rendered
// with alternating styles.
//
// The pipeline has three stages, each exported on its own:
//
//	FindChunks / Finder  raw matches, possibly overlapping
//	CombineChunks        sorted, disjoint, maximal matches
//	FillInChunks         complete partition of the text
//
// FindAll runs the three of them. Every function is pure and safe for
// concurrent use.
package highlight

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

// FindAll splits text into highlight and non-highlight chunks.
//
// It runs the configured Finder, merges its matches with CombineChunks and
// fills the gaps with FillInChunks. The result is a complete partition of the
// text in rune offsets:
//
//	chunks, err := highlight.FindAll("This is a string", highlight.Options{
//		SearchWords: []string{"thi", "is"},
//	})
//	// [{0 4 true} {4 5 false} {5 7 true} {7 16 false}]
//
// Chunks returned by a custom Finder are clamped to the text, and empty ones
// are dropped. An empty text yields an empty result. The only error source is
// the Finder, e.g. an invalid expression when AutoEscape is off.
func FindAll(text string, o Options) ([]Chunk, error) {
	o = o.withDefaults()
	totalLength := utf8.RuneCountInString(text)
	if totalLength == 0 {
		return []Chunk{}, nil
	}

	raw, err := o.FindChunks.FindChunks(text, o)
	if err != nil {
		return nil, err
	}
	merged := CombineChunks(clampChunks(raw, totalLength))
	all := FillInChunks(merged, totalLength)

	if o.Logger != nil {
		o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "highlight.FindAll",
			slog.Any("words", o.SearchWords),
			slog.Int("length", totalLength),
			slog.Int("raw", len(raw)),
			slog.Int("merged", len(merged)),
			slog.Int("chunks", len(all)),
		)
	}
	return all, nil
}

// clampChunks restricts chunks to [0, totalLength) and drops the empty ones.
func clampChunks(chunks []Chunk, totalLength int) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		start := clamp(c.Start, 0, totalLength)
		end := clamp(c.End, start, totalLength)
		if end > start {
			out = append(out, Chunk{Start: start, End: end})
		}
	}
	return out
}
