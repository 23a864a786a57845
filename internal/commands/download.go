package commands

import (
	"context"

	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type DownloadCmd struct {
	Blob string `arg:"" name:"blob" help:"Name of the blob to download."`
	Path string `arg:"" name:"path" optional:"" help:"Local destination, defaults to the blob name in the current directory."`
}

func (cmd *DownloadCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "DownloadCmdRun")
	defer span.End()

	blobName, err := requireBlobName(cmd.Blob)
	if err != nil {
		return err
	}

	localPath := cmd.Path
	if localPath == "" {
		localPath = blobName
	}

	span.SetAttributes(
		attribute.String("blob_name", blobName),
		attribute.String("path", localPath),
	)

	rec, err := loadDeployment(ctx, globals)
	if err != nil {
		return err
	}

	globals.Printer.Info("⬇️", "Downloading %s to %s...", blobName, localPath)

	// an existing local file at the destination is overwritten
	if err := globals.Gateway.DownloadBlob(ctx, rec.Identity.Container, rec.Identity.StorageAccount, rec.AccountKey, blobName, localPath); err != nil {
		return trace.NewError(span, "failed to download blob: %w", err)
	}

	globals.Journal.Log("downloaded %s to %s", blobName, localPath)

	globals.Printer.Success("✅", "Downloaded %s", localPath)

	return nil
}
