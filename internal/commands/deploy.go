package commands

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/blobctl/internal/config"
	"github.com/wolfeidau/blobctl/internal/deployment"
	"github.com/wolfeidau/blobctl/internal/trace"
	"go.opentelemetry.io/otel/attribute"
)

type DeployCmd struct{}

// Run provisions a fresh deployment: resource group, storage account and
// container, in that order, stopping at the first failure. There is no
// rollback of resources created before the failing step, the journal names
// the step that failed.
func (cmd *DeployCmd) Run(ctx context.Context, globals *Globals) error {
	ctx, span := trace.Start(ctx, "DeployCmdRun")
	defer span.End()

	log.Info().Str("version", globals.Version).Msg("Running DeployCmd")

	identity := deployment.NewIdentity(time.Now(), globals.Common.Location)

	span.SetAttributes(
		attribute.String("resource_group", identity.ResourceGroup),
		attribute.String("storage_account", identity.StorageAccount),
		attribute.String("container", identity.Container),
	)

	globals.Printer.Info("🚀", "Deploying storage for account: %s", identity.StorageAccount)

	globals.Printer.Info("📁", "Creating resource group: %s", identity.ResourceGroup)

	if err := globals.Gateway.CreateResourceGroup(ctx, identity.ResourceGroup, identity.Location); err != nil {
		globals.Journal.Log("deploy failed creating resource group %s: %v", identity.ResourceGroup, err)
		return trace.NewError(span, "failed to create resource group: %w", err)
	}

	globals.Printer.Info("💾", "Creating storage account: %s (this can take a minute)", identity.StorageAccount)

	if err := globals.Gateway.CreateStorageAccount(ctx, identity.StorageAccount, identity.ResourceGroup, identity.Location); err != nil {
		globals.Journal.Log("deploy failed creating storage account %s: %v", identity.StorageAccount, err)
		return trace.NewError(span, "failed to create storage account: %w", err)
	}

	// the account key is needed before the container can be created
	key, err := globals.Gateway.ListAccountKeys(ctx, identity.StorageAccount, identity.ResourceGroup)
	if err != nil {
		globals.Journal.Log("deploy failed fetching key for %s: %v", identity.StorageAccount, err)
		return trace.NewError(span, "failed to fetch account key: %w", err)
	}

	globals.Printer.Info("📦", "Creating container: %s", identity.Container)

	if err := globals.Gateway.CreateContainer(ctx, identity.Container, identity.StorageAccount, key); err != nil {
		globals.Journal.Log("deploy failed creating container %s: %v", identity.Container, err)
		return trace.NewError(span, "failed to create container: %w", err)
	}

	if err := globals.Store.Save(config.Record{Identity: identity, AccountKey: key}); err != nil {
		return trace.NewError(span, "failed to save deployment state: %w", err)
	}

	globals.Journal.Log("deployed resource group %s with account %s and container %s", identity.ResourceGroup, identity.StorageAccount, identity.Container)

	globals.Printer.Success("🎉", "Deployment complete")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Row("Resource Group", identity.ResourceGroup).
		Row("Storage Account", identity.StorageAccount).
		Row("Container", identity.Container).
		Row("Location", identity.Location).
		Row("State File", globals.Store.Path())

	globals.Printer.Info("📊", "Deployment summary:\n%s", t.Render())

	return nil
}
