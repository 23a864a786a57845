// Package journal is the append-only activity log. One line per event,
// "2006-01-02 15:04:05 - message", mirrored nowhere else. Lines are never
// rewritten or removed.
package journal

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const timeFormat = "2006-01-02 15:04:05"

type Journal struct {
	path string
}

func New(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the location of the log file.
func (j *Journal) Path() string {
	return j.path
}

// Log appends one timestamped line. A failure to write the journal never
// fails the operation that produced the event, it is logged and dropped.
func (j *Journal) Log(format string, args ...any) {
	line := fmt.Sprintf("%s - %s\n", time.Now().Format(timeFormat), fmt.Sprintf(format, args...))

	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("path", j.path).Msg("failed to open journal")
		return
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		log.Warn().Err(err).Str("path", j.path).Msg("failed to append to journal")
	}
}

// Lines returns every line written so far. A missing journal is an empty
// history, not an error.
func (j *Journal) Lines() ([]string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal %s: %w", j.path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}

	return lines, nil
}
