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

// FillInChunks completes a set of highlight chunks with the non-highlight
// chunks found between, before and after them.
//
// highlights must be sorted and disjoint, as returned by CombineChunks. The
// result covers [0, totalLength) without gaps or overlaps, and the highlight
// chunks appear in it unchanged. Empty chunks are never emitted: an empty
// text yields an empty result.
func FillInChunks(highlights []Chunk, totalLength int) []Chunk {
	all := make([]Chunk, 0, 2*len(highlights)+1)
	appendChunk := func(start, end int, highlight bool) {
		if end > start {
			all = append(all, Chunk{Start: start, End: end, Highlight: highlight})
		}
	}

	// Cursor points to the first rune that has not been classified yet.
	cursor := 0
	for _, h := range highlights {
		appendChunk(cursor, h.Start, false)
		appendChunk(h.Start, h.End, true)
		cursor = h.End
	}
	appendChunk(cursor, totalLength, false)
	return all
}
