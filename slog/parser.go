// Package slog provides logging decorators for lawtree services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/lawtree"
)

// Ensure LoggingParser implements lawtree.Parser.
var _ lawtree.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   lawtree.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next lawtree.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(content, title, documentType string) (r *lawtree.ParseResult, err error) {
	defer func(begin time.Time) {
		nodes := 0
		if r != nil {
			nodes = lawtree.CountNodes(r.Structure)
		}
		p.logger.Info("parse",
			"title", title,
			"type", documentType,
			"variant", lawtree.VariantFor(documentType).String(),
			"bytes", len(content),
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(content, title, documentType)
}
