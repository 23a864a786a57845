package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/blobctl/internal/azure"
	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type UploadCmd struct {
	File string `arg:"" name:"file" help:"Local file to upload."`
	Name string `arg:"" name:"name" optional:"" help:"Blob name, defaults to the file's base name."`
}

func (cmd *UploadCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "UploadCmdRun")
	defer span.End()

	// reject a missing local file before touching the backend
	info, err := os.Stat(cmd.File)
	if err != nil {
		return trace.NewError(span, "local file %s not found: %w", cmd.File, err)
	}

	blobName := cmd.Name
	if blobName == "" {
		blobName = filepath.Base(cmd.File)
	}

	span.SetAttributes(
		attribute.String("file", cmd.File),
		attribute.String("blob_name", blobName),
		attribute.Int64("size", info.Size()),
	)

	rec, err := loadDeployment(ctx, globals)
	if err != nil {
		return err
	}

	globals.Printer.Info("⬆️", "Uploading %s (%s) as %s...", cmd.File, humanize.Bytes(uint64(info.Size())), blobName)

	if err := globals.Gateway.UploadBlob(ctx, rec.Identity.Container, rec.Identity.StorageAccount, rec.AccountKey, cmd.File, blobName); err != nil {
		return trace.NewError(span, "failed to upload blob: %w", err)
	}

	url := azure.BlobURL(rec.Identity.StorageAccount, rec.Identity.Container, blobName)

	log.Debug().Str("blob", blobName).Str("url", url).Msg("upload complete")

	globals.Journal.Log("uploaded %s as %s", cmd.File, blobName)

	globals.Printer.Success("✅", "Uploaded %s", blobName)

	fmt.Fprintln(globals.Stdout, url)

	return nil
}
