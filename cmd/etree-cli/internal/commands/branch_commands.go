package commands

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newBranchCommands(rt *Runtime) *cobra.Command {
	return group("branch", "Manage branch bindings of components in tool kits",
		branchAddVerb().Command(rt),
		branchDeleteVerb().Command(rt),
		branchUpdateVerb().Command(rt),
		branchShowVerb().Command(rt),
		branchCheckVerb().Command(rt),
	)
}

// branchKey identifies one binding.
type branchKey struct {
	name      string
	component string
	toolKit   string
}

func branchKeyFlags(fs *pflag.FlagSet) {
	fs.StringP(flagBranch, "b", "", "Branch name")
	fs.StringP(flagComponent, "c", "", "Component")
	fs.StringP(flagToolKit, "t", "", "Tool kit")
}

func parseBranchKey(cmd *cobra.Command) (branchKey, error) {
	var k branchKey
	var err error
	if k.name, err = requireString(cmd, flagBranch); err != nil {
		return k, err
	}
	if k.component, err = requireString(cmd, flagComponent); err != nil {
		return k, err
	}
	if k.toolKit, err = requireString(cmd, flagToolKit); err != nil {
		return k, err
	}
	return k, nil
}

func parseBranchType(value string) (branches.Type, error) {
	t, ok := branches.ParseType(value)
	if !ok {
		return "", apperr.InvalidInput("invalid --type %q: expected PRODUCTION or DEVELOPMENT", value)
	}
	return t, nil
}

func writeBranch(w *report.Writer, b *branches.Branch) {
	w.Fields(
		report.F("Branch", b.Name),
		report.F("Component", b.ComponentName),
		report.F("Tool kit", b.ToolKitName),
		report.F("Type", b.Type),
		report.F("Description", b.Description),
		report.F("Created by", b.CreatedBy),
		report.F("Created", report.Time(b.CreatedAt)),
	)
}

func branchAddVerb() Verb[*branches.Branch, *branches.Branch] {
	return Verb[*branches.Branch, *branches.Branch]{
		Use:     "add",
		Short:   "Bind a branch to a component of a tool kit",
		Example: "  etree-cli branch add -b trunk -c einstimer -t 14.1.6 --type production",
		Flags: func(fs *pflag.FlagSet) {
			branchKeyFlags(fs)
			fs.String(flagType, string(branches.TypeDevelopment), "PRODUCTION or DEVELOPMENT")
			fs.StringP(flagDescription, "d", "", "Description")
		},
		Parse: func(cmd *cobra.Command) (*branches.Branch, error) {
			k, err := parseBranchKey(cmd)
			if err != nil {
				return nil, err
			}
			typeValue, _ := cmd.Flags().GetString(flagType)
			t, err := parseBranchType(typeValue)
			if err != nil {
				return nil, err
			}
			description, err := optionalString(cmd, flagDescription)
			if err != nil {
				return nil, err
			}
			return &branches.Branch{
				Name:          k.name,
				ComponentName: k.component,
				ToolKitName:   k.toolKit,
				Type:          t,
				Description:   description,
			}, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in *branches.Branch) (*branches.Branch, error) {
			return env.Branches.Add(ctx, inv.Actor, in)
		},
		Report: func(w *report.Writer, _ Invocation, b *branches.Branch) ExitCode {
			w.Pass("Branch %s bound to %s in %s", b.Name, b.ComponentName, b.ToolKitName)
			writeBranch(w, b)
			return ExitOK
		},
	}
}

func branchDeleteVerb() Verb[branchKey, branchKey] {
	return Verb[branchKey, branchKey]{
		Use:   "delete",
		Short: "Remove a branch binding",
		Flags: branchKeyFlags,
		Parse: parseBranchKey,
		Execute: func(ctx context.Context, env *Env, _ Invocation, k branchKey) (branchKey, error) {
			return k, env.Branches.Delete(ctx, k.name, k.component, k.toolKit)
		},
		Report: func(w *report.Writer, _ Invocation, k branchKey) ExitCode {
			w.Pass("Branch %s removed from %s in %s", k.name, k.component, k.toolKit)
			return ExitOK
		},
	}
}

type branchUpdateInput struct {
	key    branchKey
	update *branches.BranchUpdate
}

func branchUpdateVerb() Verb[branchUpdateInput, *branches.Branch] {
	return Verb[branchUpdateInput, *branches.Branch]{
		Use:   "update",
		Short: "Change the type or description of a branch binding",
		Flags: func(fs *pflag.FlagSet) {
			branchKeyFlags(fs)
			fs.String(flagType, "", "New type: PRODUCTION or DEVELOPMENT")
			fs.StringP(flagDescription, "d", "", "New description")
		},
		Parse: func(cmd *cobra.Command) (branchUpdateInput, error) {
			var in branchUpdateInput
			var err error
			if in.key, err = parseBranchKey(cmd); err != nil {
				return in, err
			}
			in.update = &branches.BranchUpdate{}
			if v, _ := changedString(cmd, flagType); v != nil {
				t, err := parseBranchType(*v)
				if err != nil {
					return in, err
				}
				in.update.Type = &t
			}
			if in.update.Description, err = changedString(cmd, flagDescription); err != nil {
				return in, err
			}
			if in.update.Type == nil && in.update.Description == nil {
				return in, &StatusError{Code: ExitNotFound, Err: fmt.Errorf("nothing to update for branch %s", in.key.name)}
			}
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, in branchUpdateInput) (*branches.Branch, error) {
			return env.Branches.Update(ctx, in.key.name, in.key.component, in.key.toolKit, in.update)
		},
		Report: func(w *report.Writer, _ Invocation, b *branches.Branch) ExitCode {
			w.Pass("Branch %s updated", b.Name)
			writeBranch(w, b)
			return ExitOK
		},
	}
}

func branchShowVerb() Verb[*branches.BranchQuery, []*branches.Branch] {
	return Verb[*branches.BranchQuery, []*branches.Branch]{
		Use:   "show",
		Short: "Show branch bindings matching a branch, component or tool kit",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagBranch, "b", "", "Branch name")
			fs.StringP(flagComponent, "c", "", "Component")
			fs.StringP(flagToolKit, "t", "", "Tool kit")
		},
		Parse: func(cmd *cobra.Command) (*branches.BranchQuery, error) {
			q := &branches.BranchQuery{}
			q.Name, _ = optionalString(cmd, flagBranch)
			q.ComponentName, _ = optionalString(cmd, flagComponent)
			q.ToolKitName, _ = optionalString(cmd, flagToolKit)
			if q.Name == "" && q.ComponentName == "" && q.ToolKitName == "" {
				return nil, apperr.InvalidInput("one of --branch, --component or --toolkit is required")
			}
			return q, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, q *branches.BranchQuery) ([]*branches.Branch, error) {
			return env.Branches.List(ctx, q)
		},
		Report: func(w *report.Writer, _ Invocation, list []*branches.Branch) ExitCode {
			rows := make([][]string, len(list))
			for i, b := range list {
				rows[i] = []string{b.Name, b.ComponentName, b.ToolKitName, string(b.Type), report.Dash(b.Description)}
			}
			w.Table([]string{"branch", "component", "tool kit", "type", "description"}, rows)
			if len(list) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}

type branchCheck struct {
	key        branchKey
	production bool
}

func branchCheckVerb() Verb[branchKey, branchCheck] {
	return Verb[branchKey, branchCheck]{
		Use:   "check",
		Short: "Check whether a branch is a production branch of a component in a tool kit",
		Long: `check exits 0 when the branch is bound to the component in the tool kit as a
production branch, and 2 otherwise. A missing binding is not an error.`,
		Flags: branchKeyFlags,
		Parse: parseBranchKey,
		Execute: func(ctx context.Context, env *Env, _ Invocation, k branchKey) (branchCheck, error) {
			production, err := env.Branches.IsProduction(ctx, k.name, k.component, k.toolKit)
			return branchCheck{key: k, production: production}, err
		},
		Report: func(w *report.Writer, _ Invocation, c branchCheck) ExitCode {
			if c.production {
				w.Pass("%s is a production branch of %s in %s", c.key.name, c.key.component, c.key.toolKit)
				return ExitOK
			}
			w.Warn("%s is not a production branch of %s in %s", c.key.name, c.key.component, c.key.toolKit)
			return ExitNotFound
		},
	}
}
