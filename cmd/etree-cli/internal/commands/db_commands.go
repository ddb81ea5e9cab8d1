package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
)

func newDBCommands(rt *Runtime) *cobra.Command {
	return group("db", "Maintain the ETREE database",
		dbMigrateVerb().Command(rt),
	)
}

func dbMigrateVerb() Verb[struct{}, []string] {
	return Verb[struct{}, []string]{
		Use:   "migrate",
		Short: "Create or upgrade the ETREE tables on the target database",
		Execute: func(_ context.Context, env *Env, inv Invocation, _ struct{}) ([]string, error) {
			if err := persistence.Migrate(env.Tx); err != nil {
				return nil, apperr.Database(err, "failed to migrate %s database", inv.Target)
			}
			return persistence.Tables(), nil
		},
		Report: func(w *report.Writer, inv Invocation, tables []string) ExitCode {
			w.Pass("%s database is up to date", inv.Target)
			rows := make([][]string, len(tables))
			for i, t := range tables {
				rows[i] = []string{t}
			}
			w.Table([]string{"table"}, rows)
			return ExitOK
		},
	}
}
