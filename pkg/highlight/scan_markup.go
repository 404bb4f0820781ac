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

import "strings"

// XMLRegions classifies an XML (or XML-like) text into content and markup.
//
// Classification rules:
//
//   - start and end tags (`<name ...>`, `</name>`, `<name/>`) are markup,
//     including their attributes; a '>' inside a quoted attribute value does
//     not close the tag.
//   - comments:        <!-- ... -->        markup
//   - processing instr:<? ... ?>           markup
//   - directives:      <! ... >            markup, with basic bracket/quote handling
//   - CDATA sections:  <![CDATA[ ... ]]>   the delimiters are markup, the body is content
//   - a '<' that does not open one of the above, or whose construct is never
//     closed, is content.
//
// Unlike a parser, XMLRegions does not check nesting: it only needs to know
// where each construct ends.
func XMLRegions(text string) []Chunk {
	regions := make([]Chunk, 0, 8)
	rc := runeCursor{text: text}
	content := func(from, to int) {
		regions = appendRegion(regions, rc.at(from), rc.at(to))
	}

	start := 0 // first byte of the pending content run
	i := 0
	for i < len(text) {
		// Fast-forward until the next markup start.
		if text[i] != '<' {
			i++
			continue
		}

		end, body, ok := scanMarkupEnd(text, i)
		if !ok {
			i++
			continue
		}
		content(start, i)
		if body.End > body.Start {
			content(body.Start, body.End)
		}
		i, start = end, end
	}
	content(start, len(text))
	return regions
}

// scanMarkupEnd recognizes the markup construct opened by the '<' at text[i].
// It returns the byte offset right after the construct and, for CDATA, the
// byte range of its body. ok is false when text[i] does not open a construct.
func scanMarkupEnd(text string, i int) (end int, body Chunk, ok bool) {
	if i+1 >= len(text) {
		return 0, body, false
	}
	rest := text[i:]
	switch {
	case strings.HasPrefix(rest, xmlCommentOpen):
		end, ok = indexAfter(text, i+len(xmlCommentOpen), xmlCommentClose)
		return end, body, ok

	case strings.HasPrefix(rest, xmlCDATAOpen):
		from := i + len(xmlCDATAOpen)
		end, ok = indexAfter(text, from, xmlCDATAClose)
		if !ok {
			return 0, body, false
		}
		return end, Chunk{Start: from, End: end - len(xmlCDATAClose)}, true

	case text[i+1] == '?':
		end, ok = indexAfter(text, i+2, xmlPIClose)
		return end, body, ok

	case text[i+1] == '!':
		end, ok = scanDirectiveEnd(text, i+2)
		return end, body, ok

	case text[i+1] == '/':
		nameEnd, named := scanName(text, i+2)
		if !named {
			return 0, body, false
		}
		closeIdx, closed := scanTagClose(text, nameEnd)
		if !closed {
			return 0, body, false
		}
		return closeIdx + 1, body, true

	case isXMLNameStart(text[i+1]):
		nameEnd, _ := scanName(text, i+1)
		closeIdx, closed := scanTagClose(text, nameEnd)
		if !closed {
			return 0, body, false
		}
		return closeIdx + 1, body, true
	}
	return 0, body, false
}

const (
	xmlCommentOpen  = "<!--"
	xmlCommentClose = "-->"

	xmlCDATAOpen  = "<![CDATA["
	xmlCDATAClose = "]]>"

	xmlPIClose = "?>"
)

// indexAfter searches for `needle` in text starting at offset `from`.
// It returns the index immediately AFTER the needle when found.
func indexAfter(text string, from int, needle string) (after int, ok bool) {
	if from > len(text) {
		return 0, false
	}
	idx := strings.Index(text[from:], needle)
	if idx == -1 {
		return 0, false
	}
	return from + idx + len(needle), true
}

func isXMLNameStart(b byte) bool {
	// XML NameStartChar is much broader (unicode), but for classification
	// purposes we accept the common ASCII subset.
	return (b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		b == '_' || b == ':'
}

func isXMLNameChar(b byte) bool {
	return isXMLNameStart(b) ||
		(b >= '0' && b <= '9') ||
		b == '-' || b == '.'
}

// scanName parses an XML name starting at offset `from` and returns the index
// of the first byte after it.
func scanName(text string, from int) (next int, ok bool) {
	i := from
	for i < len(text) && isXMLNameChar(text[i]) {
		i++
	}
	return i, i > from
}

// scanTagClose scans a tag until the closing '>' (outside quotes) and returns
// its index.
func scanTagClose(text string, from int) (idx int, ok bool) {
	var quote byte // 0, '\'' or '"'
	for i := from; i < len(text); i++ {
		b := text[i]

		if quote != 0 {
			if b == quote {
				quote = 0
			}
			continue
		}

		switch b {
		case '"', '\'':
			quote = b
		case '>':
			return i, true
		case '<':
			// A new tag opens before this one closed: not a tag.
			return 0, false
		}
	}
	return 0, false
}

// scanDirectiveEnd scans a directive ("<! ... >") and returns the index
// immediately after its closing '>'. A '>' inside quotes or inside "[ ... ]"
// (doctype internal subset) does not terminate the directive.
func scanDirectiveEnd(text string, from int) (after int, ok bool) {
	var quote byte // 0, '\'' or '"'
	bracketDepth := 0

	for i := from; i < len(text); i++ {
		b := text[i]

		if quote != 0 {
			if b == quote {
				quote = 0
			}
			continue
		}

		switch b {
		case '"', '\'':
			quote = b
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '>':
			if bracketDepth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
