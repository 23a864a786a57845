package commands

import (
	"context"

	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type DeleteCmd struct {
	Blob string `arg:"" name:"blob" help:"Name of the blob to delete."`
}

// Run deletes a single blob without prompting. Blobs are cheap to recreate,
// the typed confirmation is reserved for cleanup which destroys the whole
// resource group.
func (cmd *DeleteCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "DeleteCmdRun")
	defer span.End()

	blobName, err := requireBlobName(cmd.Blob)
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.String("blob_name", blobName))

	rec, err := loadDeployment(ctx, globals)
	if err != nil {
		return err
	}

	if err := globals.Gateway.DeleteBlob(ctx, rec.Identity.Container, rec.Identity.StorageAccount, rec.AccountKey, blobName); err != nil {
		return trace.NewError(span, "failed to delete blob: %w", err)
	}

	globals.Journal.Log("deleted blob %s", blobName)

	globals.Printer.Success("🗑️", "Deleted %s", blobName)

	return nil
}
