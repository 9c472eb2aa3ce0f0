package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"git.home.luguber.info/inful/quizbuilder/internal/history"
)

// HistoryCmd lists recent build records from the sqlite store.
type HistoryCmd struct {
	Limit int `short:"n" help:"Maximum number of records to show" default:"10"`
}

func (h *HistoryCmd) Run(global *Global) error {
	if global.Config.History.Disabled {
		return qerrors.NewConfigError("build history is disabled in the configuration", nil)
	}

	if _, err := os.Stat(global.Config.History.Path); os.IsNotExist(err) {
		fmt.Println("No build history yet.")
		return nil
	}

	store, err := history.Open(global.Config.History.Path)
	if err != nil {
		return qerrors.Wrap(err, qerrors.CategoryInternal, qerrors.SeverityFatal, "open build history")
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return qerrors.Wrap(err, qerrors.CategoryInternal, qerrors.SeverityFatal, "read build history")
	}
	if len(records) == 0 {
		fmt.Println("No build history yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tQUIZ\tTOPICS\tQUESTIONS\tDURATION\tMANIFEST")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Quiz, rec.Topics, rec.Questions, rec.Duration, rec.ManifestPath)
	}
	return w.Flush()
}
