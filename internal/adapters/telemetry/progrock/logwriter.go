package progrock

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/cratepath/internal/core/ports"
)

// LogWriter is a progrock.Writer that reports vertex progress and vertex logs
// as debug messages, so they show up under --verbose.
type LogWriter struct {
	logger ports.Logger

	mu    sync.Mutex
	names map[string]string
}

// NewLogWriter creates a LogWriter reporting through logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		names:  make(map[string]string),
	}
}

// WriteStatus logs every vertex state change and every log line in update.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
		switch {
		case v.Completed == nil:
			w.logger.Debug(v.Name + ": started")
		case v.Error != nil:
			w.logger.Debug(fmt.Sprintf("%s: failed: %s", v.Name, *v.Error))
		default:
			w.logger.Debug(v.Name + ": done")
		}
	}

	for _, l := range update.Logs {
		name, ok := w.names[l.Vertex]
		if !ok {
			name = l.Vertex
		}
		for _, line := range strings.Split(string(l.Data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			w.logger.Debug(name + ": " + line)
		}
	}

	return nil
}

// Close forgets the recorded vertex names.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.names = make(map[string]string)
	return nil
}
