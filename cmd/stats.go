package main

import (
	"context"

	"github.com/tmajor/songbook/internal/formatter"
	"github.com/urfave/cli/v3"
)

// Stats displays aggregate library statistics.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	report := r.stats.Report()

	if cmd.Bool("json") {
		return r.writeJSON(report, true)
	}

	r.writePlainHeader("Library Statistics")
	return r.writePlain("%s", formatter.RenderStats(report))
}
