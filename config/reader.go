package config

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoadStats reports one pass over a config stream.
type LoadStats struct {
	RunID      string
	Source     string
	Lines      int // lines read, including blanks and comments
	Directives int // lines dispatched to a handler
	Unknown    int // lines whose keyword has no handler
}

// Reader dispatches config lines to the handlers registered for one
// application type.
type Reader struct {
	handlers *Registry
	appType  string
	log      *zap.Logger
}

// NewReader returns a reader for appType. A nil logger disables logging.
func NewReader(handlers *Registry, appType string, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{handlers: handlers, appType: appType, log: log}
}

// ReadFile reads and dispatches every line of path.
func (r *Reader) ReadFile(ctx context.Context, path string) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{Source: path}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return r.read(ctx, path, f)
}

// Read reads and dispatches every line of src. Blank lines and lines
// starting with '#' are skipped. Lines whose keyword has no handler are
// logged and counted, not fatal. A handler error stops the read and is
// returned with its line number. ctx is checked between lines.
func (r *Reader) Read(ctx context.Context, src io.Reader) (LoadStats, error) {
	return r.read(ctx, "", src)
}

func (r *Reader) read(ctx context.Context, source string, src io.Reader) (LoadStats, error) {
	stats := LoadStats{RunID: uuid.New().String(), Source: source}
	log := r.log.With(zap.String("run_id", stats.RunID), zap.String("app_type", r.appType))
	if source != "" {
		log = log.With(zap.String("source", source))
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		keyword, rest := line, ""
		if end := strings.IndexAny(line, " \t"); end >= 0 {
			keyword, rest = line[:end], strings.TrimSpace(line[end+1:])
		}

		fn, ok := r.handlers.Get(r.appType, keyword)
		if !ok {
			stats.Unknown++
			log.Warn("unknown config directive", zap.String("keyword", keyword), zap.Int("line", stats.Lines))
			continue
		}
		if err := fn(keyword, rest); err != nil {
			return stats, fmt.Errorf("line %d (%s): %w", stats.Lines, keyword, err)
		}
		stats.Directives++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("read config: %w", err)
	}
	log.Debug("config loaded",
		zap.Int("lines", stats.Lines), zap.Int("directives", stats.Directives), zap.Int("unknown", stats.Unknown))
	return stats, nil
}
