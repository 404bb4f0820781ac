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

import "sort"

// CombineChunks merges overlapping and touching chunks.
//
// The result is sorted by Start, its chunks are pairwise disjoint and no two
// of them touch: [0,4) and [4,6) become [0,6). Running CombineChunks on its
// own output returns it unchanged. The input slice is not modified.
func CombineChunks(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return []Chunk{}
	}

	sorted := make([]Chunk, len(chunks))
	copy(sorted, chunks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]Chunk, 0, len(sorted))
	current := Chunk{Start: sorted[0].Start, End: sorted[0].End}
	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			// next may sit entirely inside current.
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		out = append(out, current)
		current = Chunk{Start: next.Start, End: next.End}
	}
	return append(out, current)
}
