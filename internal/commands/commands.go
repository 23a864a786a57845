package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/blobctl/internal/azure"
	"github.com/wolfeidau/blobctl/internal/config"
	"github.com/wolfeidau/blobctl/internal/console"
	"github.com/wolfeidau/blobctl/internal/journal"
)

// ErrMissingArgument indicates a required positional value was empty.
var ErrMissingArgument = errors.New("missing required argument")

type CommonFlags struct {
	StateFile string `flag:"state-file" help:"Path of the deployment state file." default:"blobctl.conf" env:"BLOBCTL_STATE_FILE"`
	LogFile   string `flag:"log-file" help:"Path of the activity log file." default:"blobctl.log" env:"BLOBCTL_LOG_FILE"`
	Location  string `flag:"location" help:"Azure location used by deploy." default:"eastus" env:"BLOBCTL_LOCATION"`
}

type Globals struct {
	Debug   bool
	Version string
	Gateway azure.Gateway
	Store   *config.Store
	Journal *journal.Journal
	Printer *console.Printer
	Stdout  io.Writer
	Confirm io.Reader
	Common  CommonFlags
}

// loadDeployment reads the persisted record and makes sure it carries a
// usable account key. A key missing from the state file is re-fetched from
// the gateway and cached back opportunistically, a failed cache write is
// not fatal.
func loadDeployment(ctx context.Context, globals *Globals) (config.Record, error) {
	rec, err := globals.Store.Load()
	if err != nil {
		return config.Record{}, err
	}

	if rec.AccountKey == "" {
		globals.Printer.Info("🔑", "Account key missing from state, fetching it from Azure...")

		key, err := globals.Gateway.ListAccountKeys(ctx, rec.Identity.StorageAccount, rec.Identity.ResourceGroup)
		if err != nil {
			return config.Record{}, fmt.Errorf("failed to fetch account key: %w", err)
		}

		rec.AccountKey = key

		if err := globals.Store.Save(rec); err != nil {
			log.Warn().Err(err).Msg("failed to cache refreshed account key")
		} else {
			globals.Journal.Log("refreshed account key for %s", rec.Identity.StorageAccount)
		}
	}

	if rec.AccountKey == "" {
		return config.Record{}, fmt.Errorf("account key for %s is empty, refusing to call the storage backend unauthenticated", rec.Identity.StorageAccount)
	}

	return rec, nil
}

// requireBlobName rejects empty positional blob names before any remote
// call is made.
func requireBlobName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("blob name is required: %w", ErrMissingArgument)
	}
	return name, nil
}
