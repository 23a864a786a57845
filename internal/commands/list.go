package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/wolfeidau/blobctl/internal/azure"
	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

type ListCmd struct {
	Output string `flag:"output" short:"o" help:"Output format for the blob listing." enum:"table,json,tsv,yaml" default:"table" env:"BLOBCTL_OUTPUT"`
}

func (cmd *ListCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "ListCmdRun")
	defer span.End()

	span.SetAttributes(attribute.String("output", cmd.Output))

	rec, err := loadDeployment(ctx, globals)
	if err != nil {
		return err
	}

	blobs, err := globals.Gateway.ListBlobs(ctx, rec.Identity.Container, rec.Identity.StorageAccount, rec.AccountKey)
	if err != nil {
		return trace.NewError(span, "failed to list blobs: %w", err)
	}

	span.SetAttributes(attribute.Int("blob_count", len(blobs)))

	return cmd.render(globals, blobs)
}

func (cmd *ListCmd) render(globals *Globals, blobs []azure.BlobInfo) error {
	switch cmd.Output {
	case "json":
		enc := json.NewEncoder(globals.Stdout)
		enc.SetIndent("", "  ")
		if blobs == nil {
			blobs = []azure.BlobInfo{}
		}
		return enc.Encode(blobs)
	case "yaml":
		enc := yaml.NewEncoder(globals.Stdout)
		if err := enc.Encode(blobs); err != nil {
			return err
		}
		return enc.Close()
	case "tsv":
		for _, b := range blobs {
			fmt.Fprintf(globals.Stdout, "%s\t%d\t%s\n", b.Name, b.Size, b.LastModified.Format(time.RFC3339))
		}
		return nil
	default:
		if len(blobs) == 0 {
			globals.Printer.Info("📭", "Container is empty")
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "SIZE", "LAST MODIFIED")

		for _, b := range blobs {
			t.Row(b.Name, humanize.Bytes(uint64(b.Size)), b.LastModified.Format(time.RFC3339))
		}

		fmt.Fprintln(globals.Stdout, t.Render())
		return nil
	}
}
