package azure

import (
	"context"
	"fmt"
	"time"
)

// BlobInfo is the subset of blob properties surfaced by list and info.
type BlobInfo struct {
	Name         string    `json:"name" yaml:"name"`
	Size         int64     `json:"size" yaml:"size"`
	LastModified time.Time `json:"lastModified" yaml:"lastModified"`
	ContentType  string    `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// Gateway defines the remote object-storage operations blobctl depends on.
// Every call is a blocking round-trip except DeleteResourceGroup, which
// returns once the deletion has been accepted by the backend and never
// waits for it to complete.
type Gateway interface {
	// CreateResourceGroup creates the resource group holding the deployment.
	CreateResourceGroup(ctx context.Context, name, location string) error

	// CreateStorageAccount creates a storage account and blocks until it is
	// provisioned.
	CreateStorageAccount(ctx context.Context, name, group, location string) error

	// CreateContainer creates a blob container in the storage account.
	CreateContainer(ctx context.Context, container, account, key string) error

	// ListAccountKeys returns the primary access key for the account.
	ListAccountKeys(ctx context.Context, account, group string) (string, error)

	// UploadBlob uploads a local file to the container.
	UploadBlob(ctx context.Context, container, account, key, localPath, blobName string) error

	// DownloadBlob downloads a blob to a local file, overwriting it.
	DownloadBlob(ctx context.Context, container, account, key, blobName, localPath string) error

	// ListBlobs returns the blobs in the container.
	ListBlobs(ctx context.Context, container, account, key string) ([]BlobInfo, error)

	// ShowBlob returns the properties of a single blob.
	ShowBlob(ctx context.Context, container, account, key, blobName string) (BlobInfo, error)

	// DeleteBlob removes a single blob.
	DeleteBlob(ctx context.Context, container, account, key, blobName string) error

	// DeleteResourceGroup requests deletion of the resource group and all
	// resources in it. Fire and forget: the remote deletion continues after
	// this call returns.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// BlobURL returns the public URL for a blob. This is a pure string template
// that mirrors the Azure blob endpoint scheme, nothing is fetched.
func BlobURL(account, container, name string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", account, container, name)
}
