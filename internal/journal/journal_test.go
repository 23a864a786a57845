package journal

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var lineRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - .+$`)

func TestLogAppendsTimestampedLines(t *testing.T) {
	assert := require.New(t)

	j := New(filepath.Join(t.TempDir(), "blobctl.log"))

	j.Log("uploaded %s", "report.pdf")
	j.Log("deleted %s", "report.pdf")

	lines, err := j.Lines()
	assert.NoError(err)
	assert.Len(lines, 2)

	assert.Regexp(lineRE, lines[0])
	assert.Contains(lines[0], "uploaded report.pdf")
	assert.Contains(lines[1], "deleted report.pdf")
}

func TestLogAppendsAcrossInstances(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "blobctl.log")

	New(path).Log("first")
	New(path).Log("second")

	lines, err := New(path).Lines()
	assert.NoError(err)
	assert.Len(lines, 2)
}

func TestLinesMissingJournal(t *testing.T) {
	assert := require.New(t)

	lines, err := New(filepath.Join(t.TempDir(), "blobctl.log")).Lines()
	assert.NoError(err)
	assert.Empty(lines)
}
