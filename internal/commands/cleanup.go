package commands

import (
	"bufio"
	"context"
	"strings"

	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type CleanupCmd struct{}

// Run tears down the deployment. The resource group delete is fire and
// forget: the call returns once Azure accepts it and the local state is
// removed without waiting, so an absent state file is not proof the remote
// deletion has finished.
func (cmd *CleanupCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "CleanupCmdRun")
	defer span.End()

	rec, err := globals.Store.Load()
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.String("resource_group", rec.Identity.ResourceGroup))

	globals.Printer.Warn("⚠️", "This deletes resource group %s and every blob in %s.", rec.Identity.ResourceGroup, rec.Identity.Container)
	globals.Printer.Prompt("Type %q to continue:", "yes")

	input := ""
	scanner := bufio.NewScanner(globals.Confirm)
	if scanner.Scan() {
		input = strings.TrimSpace(scanner.Text())
	}

	if input != "yes" {
		globals.Printer.Info("🚫", "Cleanup aborted, nothing was deleted")
		return nil
	}

	if err := globals.Gateway.DeleteResourceGroup(ctx, rec.Identity.ResourceGroup); err != nil {
		return trace.NewError(span, "failed to delete resource group: %w", err)
	}

	globals.Printer.Info("🔥", "Deletion of %s accepted, it will continue in the background", rec.Identity.ResourceGroup)

	if err := globals.Store.Delete(); err != nil {
		return trace.NewError(span, "failed to remove deployment state: %w", err)
	}

	globals.Journal.Log("cleanup requested for resource group %s", rec.Identity.ResourceGroup)

	globals.Printer.Success("✅", "Local deployment state removed")

	return nil
}
