package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/app"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newReportCommands(rt *Runtime) *cobra.Command {
	return group("report", "Print summary reports",
		reportCRsVerb().Command(rt),
		reportToolKitVerb().Command(rt),
	)
}

func reportCRsVerb() Verb[*changerequests.ChangeRequestQuery, *app.ChangeRequestReport] {
	return Verb[*changerequests.ChangeRequestQuery, *app.ChangeRequestReport]{
		Use:   "crs",
		Short: "Summarise change requests by tool kit, component and status",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Restrict to a tool kit")
			fs.StringP(flagComponent, "c", "", "Restrict to a component")
			fs.StringP(flagStatus, "s", "", "Restrict to a status")
			fs.String(flagType, "", "Restrict to a type")
			fs.Int(flagLimit, 0, "Maximum number of rows")
		},
		Parse: parseCRQuery,
		Execute: func(ctx context.Context, env *Env, _ Invocation, q *changerequests.ChangeRequestQuery) (*app.ChangeRequestReport, error) {
			return env.Reports.ChangeRequests(ctx, q)
		},
		Report: func(w *report.Writer, _ Invocation, r *app.ChangeRequestReport) ExitCode {
			w.Heading("change requests")
			w.Fields(
				report.F("Tool kit", r.Query.ToolKitName),
				report.F("Component", r.Query.ComponentName),
				report.F("Status", r.Query.Status),
				report.F("Type", r.Query.Type),
			)
			w.Blank()
			writeChangeRequestTable(w, r.ChangeRequests)
			w.Blank()
			counts := make([]string, 0, len(changerequests.Statuses()))
			for _, s := range changerequests.Statuses() {
				counts = append(counts, fmt.Sprintf("%s %d", s, r.ByStatus[s]))
			}
			w.Line("Total %d: %s", len(r.ChangeRequests), strings.Join(counts, ", "))
			if len(r.ChangeRequests) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}

func reportToolKitVerb() Verb[string, *app.ToolKitReport] {
	return Verb[string, *app.ToolKitReport]{
		Use:   "toolkit",
		Short: "Print the component and branch matrix of a tool kit",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagToolKit)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*app.ToolKitReport, error) {
			return env.Reports.ToolKit(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, r *app.ToolKitReport) ExitCode {
			w.Heading("tool kit " + r.ToolKit.Name)
			w.Fields(
				report.F("Release", r.ToolKit.ReleaseName),
				report.F("Stage", r.ToolKit.Stage),
			)
			w.Blank()
			rows := make([][]string, len(r.Rows))
			for i, row := range r.Rows {
				names := make([]string, len(row.Branches))
				for j, b := range row.Branches {
					names[j] = b.Name
					if b.IsProduction() {
						names[j] += "*"
					}
				}
				rows[i] = []string{row.Component, report.Dash(row.Owner), report.Dash(strings.Join(names, " ")), fmt.Sprint(row.OpenRequests)}
			}
			w.Table([]string{"component", "owner", "branches (* production)", "open crs"}, rows)
			return ExitOK
		},
	}
}
