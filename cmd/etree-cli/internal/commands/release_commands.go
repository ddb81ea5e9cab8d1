package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newReleaseCommands(rt *Runtime) *cobra.Command {
	return group("release", "Manage releases",
		releaseAddVerb().Command(rt),
		releaseShowVerb().Command(rt),
	)
}

type releaseAddInput struct {
	name        string
	description string
}

func releaseAddVerb() Verb[releaseAddInput, *toolkits.Release] {
	return Verb[releaseAddInput, *toolkits.Release]{
		Use:   "add",
		Short: "Create a release",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagRelease, "r", "", "Release name, e.g. 14.1")
			fs.StringP(flagDescription, "d", "", "Description")
		},
		Parse: func(cmd *cobra.Command) (releaseAddInput, error) {
			var in releaseAddInput
			var err error
			if in.name, err = requireString(cmd, flagRelease); err != nil {
				return in, err
			}
			in.description, err = optionalString(cmd, flagDescription)
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in releaseAddInput) (*toolkits.Release, error) {
			return env.Releases.Add(ctx, inv.Actor, in.name, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, r *toolkits.Release) ExitCode {
			w.Pass("Release %s created", r.Name)
			return ExitOK
		},
	}
}

type releaseDetail struct {
	release  *toolkits.Release
	toolKits []*toolkits.ToolKit
}

func releaseShowVerb() Verb[string, *releaseDetail] {
	return Verb[string, *releaseDetail]{
		Use:   "show",
		Short: "Show a release and its tool kits",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagRelease, "r", "", "Release")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagRelease)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*releaseDetail, error) {
			r, err := env.Releases.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			list, err := env.ToolKits.List(ctx, &toolkits.ToolKitQuery{ReleaseName: name})
			if err != nil {
				return nil, err
			}
			return &releaseDetail{release: r, toolKits: list}, nil
		},
		Report: func(w *report.Writer, _ Invocation, d *releaseDetail) ExitCode {
			w.Heading("release " + d.release.Name)
			w.Fields(
				report.F("Release", d.release.Name),
				report.F("Description", d.release.Description),
				report.F("Created by", d.release.CreatedBy),
				report.F("Created", report.Time(d.release.CreatedAt)),
			)
			w.Blank()
			rows := make([][]string, len(d.toolKits))
			for i, tk := range d.toolKits {
				rows[i] = []string{tk.Name, string(tk.Stage)}
			}
			w.Table([]string{"tool kit", "stage"}, rows)
			return ExitOK
		},
	}
}
