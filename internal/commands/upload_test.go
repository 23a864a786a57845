package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/blobctl/internal/config"
)

func writeTestFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("test content"), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestUploadMissingFile(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, _ := newTestGlobals(t, gateway)
	saveTestRecord(t, globals, gateway.accountKey)

	cmd := &UploadCmd{File: filepath.Join(t.TempDir(), "nope.pdf")}

	err := cmd.Run(context.Background(), globals)
	assert.ErrorIs(err, os.ErrNotExist)

	// the backend was never contacted
	assert.Empty(gateway.calls)
}

func TestUploadDefaultsBlobName(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, stdout := newTestGlobals(t, gateway)
	rec := saveTestRecord(t, globals, gateway.accountKey)

	cmd := &UploadCmd{File: writeTestFile(t, "report.pdf")}
	assert.NoError(cmd.Run(context.Background(), globals))

	assert.Equal([]string{"UploadBlob report.pdf"}, gateway.calls)

	// the printed URL is the deterministic public endpoint
	assert.Contains(stdout.String(),
		"https://"+rec.Identity.StorageAccount+".blob.core.windows.net/"+rec.Identity.Container+"/report.pdf")
}

func TestUploadExplicitBlobName(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, stdout := newTestGlobals(t, gateway)
	saveTestRecord(t, globals, gateway.accountKey)

	cmd := &UploadCmd{File: writeTestFile(t, "report.pdf"), Name: "2025/q1.pdf"}
	assert.NoError(cmd.Run(context.Background(), globals))

	assert.Equal([]string{"UploadBlob 2025/q1.pdf"}, gateway.calls)
	assert.Contains(stdout.String(), "/2025/q1.pdf")
}

func TestUploadNotDeployed(t *testing.T) {
	assert := require.New(t)

	gateway := newFakeGateway()
	globals, _ := newTestGlobals(t, gateway)

	cmd := &UploadCmd{File: writeTestFile(t, "report.pdf")}

	err := cmd.Run(context.Background(), globals)
	assert.ErrorIs(err, config.ErrNotDeployed)
	assert.Empty(gateway.calls)
}
