package commands

import (
	"context"
	"fmt"

	"github.com/wolfeidau/blobctl/internal/trace"
)

type LogsCmd struct{}

func (cmd *LogsCmd) Run(ctx context.Context, globals *Globals) error {
	_, span := trace.Start(ctx, "LogsCmdRun")
	defer span.End()

	lines, err := globals.Journal.Lines()
	if err != nil {
		return trace.NewError(span, "failed to read activity log: %w", err)
	}

	if len(lines) == 0 {
		globals.Printer.Info("📭", "No activity recorded yet")
		return nil
	}

	for _, line := range lines {
		fmt.Fprintln(globals.Stdout, line)
	}

	return nil
}
