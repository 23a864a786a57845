package main

import (
	"context"
	"os"
	"time"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/blobctl/internal/azure"
	"github.com/wolfeidau/blobctl/internal/commands"
	"github.com/wolfeidau/blobctl/internal/config"
	"github.com/wolfeidau/blobctl/internal/console"
	"github.com/wolfeidau/blobctl/internal/journal"
	"github.com/wolfeidau/blobctl/internal/trace"
)

var (
	version = "dev"

	cli struct {
		Version        kong.VersionFlag
		Debug          bool   `help:"Enable debug mode." default:"false" env:"BLOBCTL_DEBUG"`
		SubscriptionID string `flag:"subscription-id" help:"The Azure subscription to deploy into." env:"AZURE_SUBSCRIPTION_ID" required:"true"`
		TraceExporter  string `flag:"trace-exporter" help:"The trace exporter to use. Defaults to 'noop'." default:"noop" enum:"noop,grpc" env:"BLOBCTL_TRACE_EXPORTER"`

		commands.CommonFlags

		Deploy   commands.DeployCmd   `cmd:"" help:"provision a resource group, storage account and container."`
		Upload   commands.UploadCmd   `cmd:"" help:"upload a local file to the container."`
		Download commands.DownloadCmd `cmd:"" help:"download a blob to a local file."`
		List     commands.ListCmd     `cmd:"" help:"list the blobs in the container."`
		Info     commands.InfoCmd     `cmd:"" help:"show the properties of a blob."`
		Delete   commands.DeleteCmd   `cmd:"" help:"delete a blob."`
		Logs     commands.LogsCmd     `cmd:"" help:"print the activity log."`
		Cleanup  commands.CleanupCmd  `cmd:"" help:"delete the deployment and remove the local state."`
	}
)

func main() {
	ctx := context.Background()

	start := time.Now()

	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.Configuration(kongyaml.Loader, ".blobctl.yaml", ".blobctl.yml"),
		kong.BindTo(ctx, (*context.Context)(nil)))

	printer := console.NewPrinter(os.Stderr)

	if cli.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.ErrorLevel)
	}

	tp, err := trace.NewProvider(ctx, cli.TraceExporter, "github.com/wolfeidau/blobctl", version)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create trace provider")
	}
	defer func() {
		_ = tp.Shutdown(ctx)
	}()

	ctx, span := trace.Start(ctx, "blobctl")
	defer span.End()

	gateway, err := azure.NewClient(cli.SubscriptionID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create azure client")
	}

	jnl := journal.New(cli.LogFile)

	err = cmd.Run(&commands.Globals{
		Debug:   cli.Debug,
		Version: version,
		Gateway: gateway,
		Store:   config.NewStore(cli.StateFile),
		Journal: jnl,
		Printer: printer,
		Stdout:  os.Stdout,
		Confirm: os.Stdin,
		Common:  cli.CommonFlags,
	})
	if err != nil {
		jnl.Log("%s failed: %v", cmd.Command(), err)
	}
	span.RecordError(err)
	cmd.FatalIfErrorf(err)

	printer.Info("✅", "%s completed successfully in %s", cmd.Command(), time.Since(start).String())
}
