package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wolfeidau/blobctl/internal/azure"
	"github.com/wolfeidau/blobctl/internal/config"
	"github.com/wolfeidau/blobctl/internal/console"
	"github.com/wolfeidau/blobctl/internal/deployment"
	"github.com/wolfeidau/blobctl/internal/journal"
)

// fakeGateway records every call and serves blobs from an in-memory map.
type fakeGateway struct {
	calls      []string
	accountKey string
	blobs      map[string]azure.BlobInfo
	failOn     string
}

var _ azure.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		accountKey: "c2VjcmV0LWtleQ==",
		blobs:      map[string]azure.BlobInfo{},
	}
}

func (f *fakeGateway) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return fmt.Errorf("%s failed", f.failOn)
	}
	return nil
}

func (f *fakeGateway) CreateResourceGroup(ctx context.Context, name, location string) error {
	return f.record("CreateResourceGroup " + name)
}

func (f *fakeGateway) CreateStorageAccount(ctx context.Context, name, group, location string) error {
	return f.record("CreateStorageAccount " + name)
}

func (f *fakeGateway) CreateContainer(ctx context.Context, container, account, key string) error {
	return f.record("CreateContainer " + container)
}

func (f *fakeGateway) ListAccountKeys(ctx context.Context, account, group string) (string, error) {
	if err := f.record("ListAccountKeys " + account); err != nil {
		return "", err
	}
	return f.accountKey, nil
}

func (f *fakeGateway) UploadBlob(ctx context.Context, container, account, key, localPath, blobName string) error {
	if err := f.record("UploadBlob " + blobName); err != nil {
		return err
	}
	f.blobs[blobName] = azure.BlobInfo{
		Name:         blobName,
		Size:         42,
		LastModified: time.Now(),
		ContentType:  "application/octet-stream",
	}
	return nil
}

func (f *fakeGateway) DownloadBlob(ctx context.Context, container, account, key, blobName, localPath string) error {
	return f.record("DownloadBlob " + blobName + " " + localPath)
}

func (f *fakeGateway) ListBlobs(ctx context.Context, container, account, key string) ([]azure.BlobInfo, error) {
	if err := f.record("ListBlobs " + container); err != nil {
		return nil, err
	}
	var blobs []azure.BlobInfo
	for _, b := range f.blobs {
		blobs = append(blobs, b)
	}
	return blobs, nil
}

func (f *fakeGateway) ShowBlob(ctx context.Context, container, account, key, blobName string) (azure.BlobInfo, error) {
	if err := f.record("ShowBlob " + blobName); err != nil {
		return azure.BlobInfo{}, err
	}
	info, ok := f.blobs[blobName]
	if !ok {
		return azure.BlobInfo{}, fmt.Errorf("blob %s not found", blobName)
	}
	return info, nil
}

func (f *fakeGateway) DeleteBlob(ctx context.Context, container, account, key, blobName string) error {
	if err := f.record("DeleteBlob " + blobName); err != nil {
		return err
	}
	delete(f.blobs, blobName)
	return nil
}

func (f *fakeGateway) DeleteResourceGroup(ctx context.Context, name string) error {
	// accepted but never "completed", mirroring the async backend delete
	return f.record("DeleteResourceGroup " + name)
}

func newTestGlobals(t *testing.T, gateway *fakeGateway) (*Globals, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	stdout := new(bytes.Buffer)

	return &Globals{
		Version: "test",
		Gateway: gateway,
		Store:   config.NewStore(filepath.Join(dir, "blobctl.conf")),
		Journal: journal.New(filepath.Join(dir, "blobctl.log")),
		Printer: console.NewPrinter(io.Discard),
		Stdout:  stdout,
		Confirm: strings.NewReader(""),
		Common:  CommonFlags{Location: deployment.DefaultLocation},
	}, stdout
}

func saveTestRecord(t *testing.T, globals *Globals, accountKey string) config.Record {
	t.Helper()

	rec := config.Record{
		Identity: deployment.Identity{
			ResourceGroup:  "blobctl-rg-1741944413",
			StorageAccount: "blobctl1741944413",
			Container:      "blobctl-data-1741944413",
			Location:       "eastus",
		},
		AccountKey: accountKey,
	}

	if err := globals.Store.Save(rec); err != nil {
		t.Fatalf("failed to save record: %v", err)
	}

	return rec
}
