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
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// RegionFunc returns the content regions of a markup text: the rune ranges
// that are neither tags nor other markup constructs. Regions are sorted and
// disjoint.
type RegionFunc func(text string) []Chunk

// MarkupFinder matches the search words like PatternFinder, then keeps only
// the parts of each match that fall inside a content region of the text.
// Tag names and attribute values are therefore never highlighted.
//
// Regions defaults to HTMLRegions.
type MarkupFinder struct {
	Regions RegionFunc
}

// FindChunks implements Finder.
func (f MarkupFinder) FindChunks(text string, o Options) ([]Chunk, error) {
	chunks, err := FindChunks(text, o)
	if err != nil || len(chunks) == 0 {
		return chunks, err
	}
	regionsOf := f.Regions
	if regionsOf == nil {
		regionsOf = HTMLRegions
	}
	return clipToRegions(chunks, regionsOf(text)), nil
}

// clipToRegions intersects every chunk with the regions. A match that spans
// several regions is split; a match outside every region is dropped.
func clipToRegions(chunks []Chunk, regions []Chunk) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		// First region that ends after the chunk starts.
		i := sort.Search(len(regions), func(i int) bool {
			return regions[i].End > c.Start
		})
		for ; i < len(regions) && regions[i].Start < c.End; i++ {
			start := max(c.Start, regions[i].Start)
			end := min(c.End, regions[i].End)
			if end > start {
				out = append(out, Chunk{Start: start, End: end})
			}
		}
	}
	return out
}

// HTMLRegions classifies text with the HTML5 tokenizer. Text tokens are
// content; tags, comments and doctypes are markup.
//
// The tokenizer follows the HTML rules for stray delimiters: in
// "a < b > c" the '<' does not open a tag and the whole string is content,
// and a '>' inside a quoted attribute value does not close its tag.
func HTMLRegions(text string) []Chunk {
	z := html.NewTokenizer(strings.NewReader(text))
	regions := make([]Chunk, 0, 8)
	pos := 0 // rune offset of the next token
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF: strings.Reader cannot fail otherwise.
			break
		}
		n := utf8.RuneCount(z.Raw())
		if tt == html.TextToken {
			regions = appendRegion(regions, pos, pos+n)
		}
		pos += n
	}
	return regions
}

// appendRegion appends [start, end) to regions, extending the last region
// when both touch.
func appendRegion(regions []Chunk, start, end int) []Chunk {
	if end <= start {
		return regions
	}
	if n := len(regions); n > 0 && regions[n-1].End == start {
		regions[n-1].End = end
		return regions
	}
	return append(regions, Chunk{Start: start, End: end})
}
