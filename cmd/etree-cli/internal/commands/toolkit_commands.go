package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newToolKitCommands(rt *Runtime) *cobra.Command {
	return group("toolkit", "Manage tool kits and their stage",
		toolKitAddVerb().Command(rt),
		toolKitShowVerb().Command(rt),
		toolKitListVerb().Command(rt),
		toolKitStageVerb().Command(rt),
		toolKitDuplicateVerb().Command(rt),
	)
}

func parseStage(value string) (toolkits.Stage, error) {
	s, ok := toolkits.ParseStage(value)
	if !ok {
		return "", apperr.InvalidInput("invalid --stage %q", value)
	}
	return s, nil
}

func writeToolKit(w *report.Writer, tk *toolkits.ToolKit) {
	w.Fields(
		report.F("Tool kit", tk.Name),
		report.F("Release", tk.ReleaseName),
		report.F("Stage", tk.Stage),
		report.F("Description", tk.Description),
		report.F("Created by", tk.CreatedBy),
		report.F("Created", report.Time(tk.CreatedAt)),
		report.F("Updated", report.Time(tk.UpdatedAt)),
	)
}

type toolKitAddInput struct {
	name        string
	release     string
	stage       toolkits.Stage
	description string
}

func toolKitAddVerb() Verb[toolKitAddInput, *toolkits.ToolKit] {
	return Verb[toolKitAddInput, *toolkits.ToolKit]{
		Use:     "add",
		Short:   "Create a tool kit",
		Example: "  etree-cli toolkit add -t 14.1.7 --stage development",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit name, e.g. 14.1.7")
			fs.StringP(flagRelease, "r", "", "Release (default: tool kit name without its last part)")
			fs.String(flagStage, string(toolkits.StageDevelopment), "Initial stage")
			fs.StringP(flagDescription, "d", "", "Description")
		},
		Parse: func(cmd *cobra.Command) (toolKitAddInput, error) {
			var in toolKitAddInput
			var err error
			if in.name, err = requireString(cmd, flagToolKit); err != nil {
				return in, err
			}
			in.release, _ = optionalString(cmd, flagRelease)
			in.description, _ = optionalString(cmd, flagDescription)
			stageValue, _ := cmd.Flags().GetString(flagStage)
			if in.stage, err = parseStage(stageValue); err != nil {
				return in, err
			}
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in toolKitAddInput) (*toolkits.ToolKit, error) {
			return env.ToolKits.Add(ctx, inv.Actor, in.name, in.release, in.stage, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, tk *toolkits.ToolKit) ExitCode {
			w.Pass("Tool kit %s created", tk.Name)
			writeToolKit(w, tk)
			return ExitOK
		},
	}
}

func toolKitShowVerb() Verb[string, *toolKitDetail] {
	return Verb[string, *toolKitDetail]{
		Use:   "show",
		Short: "Show a tool kit and its components",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagToolKit)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*toolKitDetail, error) {
			tk, err := env.ToolKits.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			versions, err := env.Components.ListByToolKit(ctx, name)
			if err != nil {
				return nil, err
			}
			return &toolKitDetail{toolKit: tk, versions: versions}, nil
		},
		Report: func(w *report.Writer, _ Invocation, d *toolKitDetail) ExitCode {
			w.Heading("tool kit " + d.toolKit.Name)
			writeToolKit(w, d.toolKit)
			w.Blank()
			rows := make([][]string, len(d.versions))
			for i, v := range d.versions {
				rows[i] = []string{v.ComponentName, report.Dash(v.Owner)}
			}
			w.Table([]string{"component", "owner"}, rows)
			return ExitOK
		},
	}
}

type toolKitDetail struct {
	toolKit  *toolkits.ToolKit
	versions []*toolkits.ComponentVersion
}

func toolKitListVerb() Verb[*toolkits.ToolKitQuery, []*toolkits.ToolKit] {
	return Verb[*toolkits.ToolKitQuery, []*toolkits.ToolKit]{
		Use:   "list",
		Short: "List tool kits",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagRelease, "r", "", "Restrict to a release")
			fs.String(flagStage, "", "Restrict to a stage")
		},
		Parse: func(cmd *cobra.Command) (*toolkits.ToolKitQuery, error) {
			q := &toolkits.ToolKitQuery{}
			q.ReleaseName, _ = optionalString(cmd, flagRelease)
			if v, _ := optionalString(cmd, flagStage); v != "" {
				s, err := parseStage(v)
				if err != nil {
					return nil, err
				}
				q.Stage = s
			}
			return q, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, q *toolkits.ToolKitQuery) ([]*toolkits.ToolKit, error) {
			return env.ToolKits.List(ctx, q)
		},
		Report: func(w *report.Writer, _ Invocation, list []*toolkits.ToolKit) ExitCode {
			rows := make([][]string, len(list))
			for i, tk := range list {
				rows[i] = []string{tk.Name, tk.ReleaseName, string(tk.Stage), report.Time(tk.UpdatedAt)}
			}
			w.Table([]string{"tool kit", "release", "stage", "updated"}, rows)
			if len(list) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}

type toolKitStageInput struct {
	name  string
	stage toolkits.Stage
}

type toolKitStageResult struct {
	toolKit *toolkits.ToolKit
	changed bool
}

func toolKitStageVerb() Verb[toolKitStageInput, toolKitStageResult] {
	return Verb[toolKitStageInput, toolKitStageResult]{
		Use:   "stage",
		Short: "Move a tool kit to another stage",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit")
			fs.String(flagStage, "", "Target stage")
		},
		Parse: func(cmd *cobra.Command) (toolKitStageInput, error) {
			var in toolKitStageInput
			var err error
			if in.name, err = requireString(cmd, flagToolKit); err != nil {
				return in, err
			}
			v, err := requireString(cmd, flagStage)
			if err != nil {
				return in, err
			}
			in.stage, err = parseStage(v)
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in toolKitStageInput) (toolKitStageResult, error) {
			tk, changed, err := env.ToolKits.UpdateStage(ctx, inv.Actor, in.name, in.stage)
			return toolKitStageResult{toolKit: tk, changed: changed}, err
		},
		Report: func(w *report.Writer, _ Invocation, r toolKitStageResult) ExitCode {
			if !r.changed {
				w.Warn("Tool kit %s already is in stage %s", r.toolKit.Name, r.toolKit.Stage)
				return ExitNotFound
			}
			w.Pass("Tool kit %s moved to stage %s", r.toolKit.Name, r.toolKit.Stage)
			return ExitOK
		},
	}
}

type toolKitDuplicateInput struct {
	from string
	to   string
}

func toolKitDuplicateVerb() Verb[toolKitDuplicateInput, *toolkits.DuplicateResult] {
	return Verb[toolKitDuplicateInput, *toolkits.DuplicateResult]{
		Use:     "duplicate",
		Short:   "Clone a tool kit into a new DEVELOPMENT tool kit",
		Example: "  etree-cli toolkit duplicate --from 14.1.6 --to 14.1.7",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("from", "", "Source tool kit")
			fs.String("to", "", "New tool kit")
		},
		Parse: func(cmd *cobra.Command) (toolKitDuplicateInput, error) {
			var in toolKitDuplicateInput
			var err error
			if in.from, err = requireString(cmd, "from"); err != nil {
				return in, err
			}
			if in.to, err = requireString(cmd, "to"); err != nil {
				return in, err
			}
			if in.from == in.to {
				return in, apperr.InvalidInput("--from and --to must differ")
			}
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in toolKitDuplicateInput) (*toolkits.DuplicateResult, error) {
			return env.ToolKits.Duplicate(ctx, inv.Actor, in.from, in.to)
		},
		Report: func(w *report.Writer, _ Invocation, r *toolkits.DuplicateResult) ExitCode {
			w.Pass("Tool kit %s created", r.ToolKit.Name)
			w.Fields(
				report.F("Release", r.ToolKit.ReleaseName),
				report.F("Stage", r.ToolKit.Stage),
				report.F("Components copied", r.Components),
				report.F("Branches copied", r.Branches),
			)
			return ExitOK
		},
	}
}
