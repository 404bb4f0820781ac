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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	paragraph      = `<p>There is some content in this paragraph</p>`
	strongHTML     = `<p>There is <strong>some strong content</strong> in this paragraph</p>`
	attributeHTML  = `<p>There is <span class="strong">some strong content</span> in this paragraph</p>`
	strayDelimHTML = `<p aria-strong=1>There is <span class="strong">some < not so stong > content</span> in this paragraph</p>`
)

func TestFindAll_EmptyText(t *testing.T) {
	got, err := FindAll("", Options{SearchWords: []string{"search"}})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = FindAll("", Options{SearchWords: []string{"("}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindAll_MinimalChunks(t *testing.T) {
	got, err := FindAll(sampleText, Options{SearchWords: []string{"thi", "is"}})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{
		{Start: 0, End: 4, Highlight: true},
		{Start: 4, End: 5},
		{Start: 5, End: 7, Highlight: true},
		{Start: 7, End: 38},
	}, got)
}

func TestFindAll_NoMatch(t *testing.T) {
	got, err := FindAll(sampleText, Options{SearchWords: []string{"absent"}})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{{Start: 0, End: 38}}, got)
}

func TestFindAll_InvalidPattern(t *testing.T) {
	_, err := FindAll("(This is text)", Options{SearchWords: []string{"text)"}})
	require.Error(t, err)

	got, err := FindAll("(This is text)", Options{SearchWords: []string{"text)"}, AutoEscape: true})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{{Start: 0, End: 9}, {Start: 9, End: 14, Highlight: true}}, got)
}

func TestFindAll_CustomFinder(t *testing.T) {
	got, err := FindAll(sampleText, Options{
		SearchWords: []string{"xxx"},
		FindChunks:  FinderFunc(func(string, Options) ([]Chunk, error) {
			return []Chunk{{Start: 1, End: 3}}, nil
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{
		{Start: 0, End: 1},
		{Start: 1, End: 3, Highlight: true},
		{Start: 3, End: 38},
	}, got)

	got, err = FindAll(sampleText, Options{
		SearchWords: []string{"This"},
		FindChunks:  FinderFunc(func(string, Options) ([]Chunk, error) {
			return nil, nil
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{{Start: 0, End: 38}}, got)
}

func TestFindAll_CustomFinderOutOfRange(t *testing.T) {
	got, err := FindAll("hello", Options{
		FindChunks: FinderFunc(func(string, Options) ([]Chunk, error) {
			return []Chunk{{Start: -3, End: 1}, {Start: 3, End: 2}, {Start: 4, End: 40}, {Start: 9, End: 12}}, nil
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []Chunk{
		{Start: 0, End: 1, Highlight: true},
		{Start: 1, End: 4},
		{Start: 4, End: 5, Highlight: true},
	}, got)
}

func TestFindAll_CustomFinderReceivesResolvedOptions(t *testing.T) {
	var seen Options
	_, err := FindAll(sampleText, Options{
		SearchWords: []string{"is"},
		FindChunks:  FinderFunc(func(_ string, o Options) ([]Chunk, error) {
			seen = o
			return nil, nil
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"is"}, seen.SearchWords)
	require.NotNil(t, seen.Sanitize)
	assert.Equal(t, "ABC", seen.Sanitize("ABC"))
}

func TestFindAll_AccentsKeepOriginalPositions(t *testing.T) {
	const text = "Un exemple, ỆᶍǍᶆṔƚÉ !"
	got, err := FindAll(text, Options{SearchWords: []string{"example"}, Sanitize: FoldAccents})
	require.NoError(t, err)

	highlighted := Chunks(got).Highlighted()
	assert.Equal(t, []string{"ỆᶍǍᶆṔƚÉ"}, highlighted.Texts(text))
	assert.NoError(t, Chunks(got).Validate(len([]rune(text))))
}

func TestFindAll_Markup(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want []Chunk
	}{
		{
			name: "tags are searched when HTMLText is off",
			text: strongHTML,
			opts: Options{SearchWords: []string{"strong"}},
			want: []Chunk{
				{Start: 0, End: 13},
				{Start: 13, End: 19, Highlight: true},
				{Start: 19, End: 25},
				{Start: 25, End: 31, Highlight: true},
				{Start: 31, End: 41},
				{Start: 41, End: 47, Highlight: true},
				{Start: 47, End: 70},
			},
		},
		{
			name: "content",
			text: paragraph,
			opts: Options{SearchWords: []string{"content"}, HTMLText: true},
			want: []Chunk{
				{Start: 0, End: 17},
				{Start: 17, End: 24, Highlight: true},
				{Start: 24, End: 46},
			},
		},
		{
			name: "tag names are skipped",
			text: strongHTML,
			opts: Options{SearchWords: []string{"strong"}, HTMLText: true},
			want: []Chunk{
				{Start: 0, End: 25},
				{Start: 25, End: 31, Highlight: true},
				{Start: 31, End: 70},
			},
		},
		{
			name: "attribute values are skipped",
			text: attributeHTML,
			opts: Options{SearchWords: []string{"strong"}, HTMLText: true},
			want: []Chunk{
				{Start: 0, End: 38},
				{Start: 38, End: 44, Highlight: true},
				{Start: 44, End: 81},
			},
		},
		{
			name: "attribute names are skipped",
			text: strayDelimHTML,
			opts: Options{SearchWords: []string{"strong"}, HTMLText: true},
			want: []Chunk{{Start: 0, End: 105}},
		},
		{
			name: "stray delimiters are content",
			text: strayDelimHTML,
			opts: Options{SearchWords: []string{"stong"}, HTMLText: true},
			want: []Chunk{
				{Start: 0, End: 61},
				{Start: 61, End: 66, Highlight: true},
				{Start: 66, End: 105},
			},
		},
		{
			name: "xml regions through a custom finder",
			text: attributeHTML,
			opts: Options{SearchWords: []string{"strong"}, FindChunks: MarkupFinder{Regions: XMLRegions}},
			want: []Chunk{
				{Start: 0, End: 38},
				{Start: 38, End: 44, Highlight: true},
				{Start: 44, End: 81},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindAll(tt.text, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAll_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := FindAll(sampleText, Options{SearchWords: []string{"thi", "is"}, Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=highlight.FindAll")
	assert.Contains(t, out, "raw=3")
	assert.Contains(t, out, "merged=2")
	assert.Contains(t, out, "chunks=4")
}
