package azure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

const blobServiceURLFormat = "https://%s.blob.core.windows.net/"

// Client implements Gateway against the Azure SDK. Control-plane calls
// (resource groups, storage accounts, keys) authenticate with the ambient
// Azure credential chain; data-plane blob calls use the account shared key.
type Client struct {
	groups   *armresources.ResourceGroupsClient
	accounts *armstorage.AccountsClient
}

var _ Gateway = (*Client)(nil)

// NewClient builds a gateway for the given subscription using the default
// Azure credential chain (env vars, workload identity, managed identity,
// azure cli).
func NewClient(subscriptionID string) (*Client, error) {
	creds, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build azure credentials: %w", err)
	}

	return newClient(subscriptionID, creds)
}

func newClient(subscriptionID string, creds azcore.TokenCredential) (*Client, error) {
	groups, err := armresources.NewResourceGroupsClient(subscriptionID, creds, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}

	accounts, err := armstorage.NewAccountsClient(subscriptionID, creds, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage accounts client: %w", err)
	}

	return &Client{groups: groups, accounts: accounts}, nil
}

func (c *Client) CreateResourceGroup(ctx context.Context, name, location string) error {
	ctx, span := trace.Start(ctx, "Client.CreateResourceGroup")
	defer span.End()

	span.SetAttributes(attribute.String("resource_group", name))

	_, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return trace.NewError(span, "failed to create resource group %s: %w", name, err)
	}

	return nil
}

func (c *Client) CreateStorageAccount(ctx context.Context, name, group, location string) error {
	ctx, span := trace.Start(ctx, "Client.CreateStorageAccount")
	defer span.End()

	span.SetAttributes(attribute.String("storage_account", name))

	poller, err := c.accounts.BeginCreate(ctx, group, name, armstorage.AccountCreateParameters{
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardLRS),
		},
		Kind:     to.Ptr(armstorage.KindStorageV2),
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return trace.NewError(span, "failed to create storage account %s: %w", name, err)
	}

	// account provisioning is a long-running operation, block until done
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return trace.NewError(span, "failed waiting for storage account %s: %w", name, err)
	}

	return nil
}

func (c *Client) ListAccountKeys(ctx context.Context, account, group string) (string, error) {
	ctx, span := trace.Start(ctx, "Client.ListAccountKeys")
	defer span.End()

	resp, err := c.accounts.ListKeys(ctx, group, account, nil)
	if err != nil {
		return "", trace.NewError(span, "failed to list keys for account %s: %w", account, err)
	}

	for _, key := range resp.Keys {
		if key.Value != nil && *key.Value != "" {
			return *key.Value, nil
		}
	}

	return "", trace.NewError(span, "no usable key returned for account %s", account)
}

func (c *Client) CreateContainer(ctx context.Context, container, account, key string) error {
	ctx, span := trace.Start(ctx, "Client.CreateContainer")
	defer span.End()

	span.SetAttributes(attribute.String("container", container))

	client, err := c.blobClient(account, key)
	if err != nil {
		return trace.NewError(span, "failed to create blob client: %w", err)
	}

	if _, err := client.CreateContainer(ctx, container, &azblob.CreateContainerOptions{}); err != nil {
		return trace.NewError(span, "failed to create container %s: %w", container, err)
	}

	return nil
}

func (c *Client) UploadBlob(ctx context.Context, container, account, key, localPath, blobName string) error {
	ctx, span := trace.Start(ctx, "Client.UploadBlob")
	defer span.End()

	span.SetAttributes(attribute.String("blob_name", blobName))

	client, err := c.blobClient(account, key)
	if err != nil {
		return trace.NewError(span, "failed to create blob client: %w", err)
	}

	file, err := os.Open(localPath)
	if err != nil {
		return trace.NewError(span, "failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	start := time.Now()

	if _, err := client.UploadFile(ctx, container, blobName, file, &azblob.UploadFileOptions{}); err != nil {
		return trace.NewError(span, "failed to upload blob %s: %w", blobName, err)
	}

	log.Debug().Str("blob", blobName).Dur("duration_ms", time.Since(start)).Msg("blob uploaded")

	return nil
}

func (c *Client) DownloadBlob(ctx context.Context, container, account, key, blobName, localPath string) error {
	ctx, span := trace.Start(ctx, "Client.DownloadBlob")
	defer span.End()

	span.SetAttributes(attribute.String("blob_name", blobName))

	client, err := c.blobClient(account, key)
	if err != nil {
		return trace.NewError(span, "failed to create blob client: %w", err)
	}

	// overwrites any existing local file
	file, err := os.Create(localPath)
	if err != nil {
		return trace.NewError(span, "failed to create file %s: %w", localPath, err)
	}
	defer file.Close()

	start := time.Now()

	if _, err := client.DownloadFile(ctx, container, blobName, file, &azblob.DownloadFileOptions{}); err != nil {
		return trace.NewError(span, "failed to download blob %s: %w", blobName, err)
	}

	log.Debug().Str("blob", blobName).Dur("duration_ms", time.Since(start)).Msg("blob downloaded")

	return nil
}

func (c *Client) ListBlobs(ctx context.Context, container, account, key string) ([]BlobInfo, error) {
	ctx, span := trace.Start(ctx, "Client.ListBlobs")
	defer span.End()

	client, err := c.blobClient(account, key)
	if err != nil {
		return nil, trace.NewError(span, "failed to create blob client: %w", err)
	}

	var blobs []BlobInfo

	pager := client.NewListBlobsFlatPager(container, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, trace.NewError(span, "failed to list blobs in %s: %w", container, err)
		}

		for _, item := range page.Segment.BlobItems {
			info := BlobInfo{}
			if item.Name != nil {
				info.Name = *item.Name
			}
			if item.Properties != nil {
				if item.Properties.ContentLength != nil {
					info.Size = *item.Properties.ContentLength
				}
				if item.Properties.LastModified != nil {
					info.LastModified = *item.Properties.LastModified
				}
			}
			blobs = append(blobs, info)
		}
	}

	span.SetAttributes(attribute.Int("blob_count", len(blobs)))

	return blobs, nil
}

func (c *Client) ShowBlob(ctx context.Context, container, account, key, blobName string) (BlobInfo, error) {
	ctx, span := trace.Start(ctx, "Client.ShowBlob")
	defer span.End()

	span.SetAttributes(attribute.String("blob_name", blobName))

	client, err := c.blobClient(account, key)
	if err != nil {
		return BlobInfo{}, trace.NewError(span, "failed to create blob client: %w", err)
	}

	resp, err := client.ServiceClient().NewContainerClient(container).NewBlobClient(blobName).GetProperties(ctx, nil)
	if err != nil {
		return BlobInfo{}, trace.NewError(span, "failed to get properties of blob %s: %w", blobName, err)
	}

	info := BlobInfo{Name: blobName}
	if resp.ContentLength != nil {
		info.Size = *resp.ContentLength
	}
	if resp.LastModified != nil {
		info.LastModified = *resp.LastModified
	}
	if resp.ContentType != nil {
		info.ContentType = *resp.ContentType
	}

	return info, nil
}

func (c *Client) DeleteBlob(ctx context.Context, container, account, key, blobName string) error {
	ctx, span := trace.Start(ctx, "Client.DeleteBlob")
	defer span.End()

	span.SetAttributes(attribute.String("blob_name", blobName))

	client, err := c.blobClient(account, key)
	if err != nil {
		return trace.NewError(span, "failed to create blob client: %w", err)
	}

	if _, err := client.DeleteBlob(ctx, container, blobName, nil); err != nil {
		return trace.NewError(span, "failed to delete blob %s: %w", blobName, err)
	}

	return nil
}

func (c *Client) DeleteResourceGroup(ctx context.Context, name string) error {
	ctx, span := trace.Start(ctx, "Client.DeleteResourceGroup")
	defer span.End()

	span.SetAttributes(attribute.String("resource_group", name))

	// BeginDelete returns once the deletion is accepted. The poller is
	// dropped on purpose, remote deletion continues in the background.
	_, err := c.groups.BeginDelete(ctx, name, nil)
	if err != nil {
		return trace.NewError(span, "failed to delete resource group %s: %w", name, err)
	}

	return nil
}

func (c *Client) blobClient(account, key string) (*azblob.Client, error) {
	cred, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return nil, fmt.Errorf("failed to build shared key credential: %w", err)
	}

	return azblob.NewClientWithSharedKeyCredential(fmt.Sprintf(blobServiceURLFormat, account), cred, nil)
}
