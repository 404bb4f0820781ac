package highlight

import (
	"log/slog"
)

// Slog is a Finder that logs every call to next with the number of chunks it
// found, or its error.
//
// A nil logger means slog.Default(); a nil next means PatternFinder.
func Slog(label string, logger *slog.Logger, next Finder) Finder {
	if logger == nil {
		logger = slog.Default()
	}
	if next == nil {
		next = PatternFinder{}
	}
	return FinderFunc(func(text string, o Options) ([]Chunk, error) {
		chunks, err := next.FindChunks(text, o)
		if err != nil {
			logger.Error(label, "err", err, "words", o.SearchWords)
		} else {
			logger.Info(label, "words", o.SearchWords, "chunks", len(chunks))
		}
		return chunks, err
	})
}
