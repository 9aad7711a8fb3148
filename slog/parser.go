// Package slog provides logging decorators for artex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artex"
	"github.com/google/uuid"
)

// Ensure LoggingParser implements artex.ArticleParser at compile time.
var _ artex.ArticleParser = (*LoggingParser)(nil)

// LoggingParser wraps an ArticleParser with structured logging. Each call
// gets a request ID so the fetch, merge and classification log lines for
// one URL can be correlated.
type LoggingParser struct {
	next   artex.ArticleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next artex.ArticleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseArticle delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseArticle(ctx context.Context, url string) (*artex.Result, error) {
	requestID := uuid.New().String()
	begin := time.Now()

	result, err := p.next.ParseArticle(ctx, url)
	if err != nil {
		p.logger.Error("article parse failed",
			"requestId", requestID,
			"url", url,
			"code", artex.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	p.logger.Info("article parsed",
		"requestId", requestID,
		"url", url,
		"method", string(result.Method),
		"structuredScore", result.StructuredScore,
		"confidence", result.Confidence,
		"fullContent", result.HasFullContent,
		"duration", time.Since(begin),
	)

	return result, nil
}
