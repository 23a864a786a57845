package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type InfoCmd struct {
	Blob string `arg:"" name:"blob" help:"Name of the blob to inspect."`
}

func (cmd *InfoCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "InfoCmdRun")
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

	info, err := globals.Gateway.ShowBlob(ctx, rec.Identity.Container, rec.Identity.StorageAccount, rec.AccountKey, blobName)
	if err != nil {
		return trace.NewError(span, "failed to get blob info: %w", err)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Row("Name", info.Name).
		Row("Size", humanize.Bytes(uint64(info.Size))).
		Row("Last Modified", info.LastModified.Format(time.RFC3339)).
		Row("Content Type", info.ContentType)

	fmt.Fprintln(globals.Stdout, t.Render())

	return nil
}
