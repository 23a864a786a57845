package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// End to end against the fake gateway: deploy, upload a file, then info on
// the uploaded blob.
func TestDeployUploadInfo(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, stdout := newTestGlobals(t, gateway)

	ctx := context.Background()

	assert.NoError((&DeployCmd{}).Run(ctx, globals))

	upload := &UploadCmd{File: writeTestFile(t, "report.pdf")}
	assert.NoError(upload.Run(ctx, globals))

	stdout.Reset()

	info := &InfoCmd{Blob: "report.pdf"}
	assert.NoError(info.Run(ctx, globals))

	assert.Contains(stdout.String(), "report.pdf")

	// both actions landed in the activity log
	lines, err := globals.Journal.Lines()
	assert.NoError(err)
	assert.Len(lines, 2)
	assert.Contains(lines[0], "deployed resource group")
	assert.Contains(lines[1], "uploaded")
}

func TestLogsPrintsJournal(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, stdout := newTestGlobals(t, gateway)

	globals.Journal.Log("uploaded report.pdf as report.pdf")

	cmd := &LogsCmd{}
	assert.NoError(cmd.Run(context.Background(), globals))

	assert.Contains(stdout.String(), "uploaded report.pdf as report.pdf")
}

func TestLogsEmptyJournal(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, stdout := newTestGlobals(t, gateway)

	cmd := &LogsCmd{}
	assert.NoError(cmd.Run(context.Background(), globals))

	// nothing on stdout when there is no history
	assert.Empty(stdout.String())
}
