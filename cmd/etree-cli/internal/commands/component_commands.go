package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newComponentCommands(rt *Runtime) *cobra.Command {
	return group("component", "Manage components and their tool kit bindings",
		componentAddVerb().Command(rt),
		componentShowVerb().Command(rt),
		componentListVerb().Command(rt),
		componentLinkVerb().Command(rt),
	)
}

func newComponentTypeCommands(rt *Runtime) *cobra.Command {
	return group("component-type", "Manage component types",
		componentTypeAddVerb().Command(rt),
		componentTypeShowVerb().Command(rt),
		componentTypeUpdateVerb().Command(rt),
	)
}

type componentAddInput struct {
	name        string
	typeName    string
	description string
}

func componentAddVerb() Verb[componentAddInput, *toolkits.Component] {
	return Verb[componentAddInput, *toolkits.Component]{
		Use:   "add",
		Short: "Create a component",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagComponent, "c", "", "Component name")
			fs.String(flagType, "", "Component type")
			fs.StringP(flagDescription, "d", "", "Description")
		},
		Parse: func(cmd *cobra.Command) (componentAddInput, error) {
			var in componentAddInput
			var err error
			if in.name, err = requireString(cmd, flagComponent); err != nil {
				return in, err
			}
			if in.typeName, err = requireString(cmd, flagType); err != nil {
				return in, err
			}
			in.description, err = optionalString(cmd, flagDescription)
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in componentAddInput) (*toolkits.Component, error) {
			return env.Components.Add(ctx, inv.Actor, in.name, in.typeName, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, c *toolkits.Component) ExitCode {
			w.Pass("Component %s created", c.Name)
			return ExitOK
		},
	}
}

func componentShowVerb() Verb[string, *toolkits.Component] {
	return Verb[string, *toolkits.Component]{
		Use:   "show",
		Short: "Show a component",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagComponent, "c", "", "Component")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagComponent)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*toolkits.Component, error) {
			return env.Components.Get(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, c *toolkits.Component) ExitCode {
			w.Heading("component " + c.Name)
			w.Fields(
				report.F("Component", c.Name),
				report.F("Type", c.ComponentTypeName),
				report.F("Description", c.Description),
				report.F("Created by", c.CreatedBy),
				report.F("Created", report.Time(c.CreatedAt)),
			)
			return ExitOK
		},
	}
}

type componentListing struct {
	toolKit    string
	typeName   string
	components []*toolkits.Component
	versions   []*toolkits.ComponentVersion
}

func componentListVerb() Verb[componentListing, componentListing] {
	return Verb[componentListing, componentListing]{
		Use:   "list",
		Short: "List components, or the components of one tool kit",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "List the components bound to a tool kit")
			fs.String(flagType, "", "Restrict to a component type")
		},
		Parse: func(cmd *cobra.Command) (componentListing, error) {
			var in componentListing
			in.toolKit, _ = optionalString(cmd, flagToolKit)
			in.typeName, _ = optionalString(cmd, flagType)
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, in componentListing) (componentListing, error) {
			if in.toolKit != "" {
				if _, err := env.ToolKits.Get(ctx, in.toolKit); err != nil {
					return in, err
				}
				versions, err := env.Components.ListByToolKit(ctx, in.toolKit)
				return componentListing{toolKit: in.toolKit, versions: versions}, err
			}
			list, err := env.Components.List(ctx, in.typeName)
			return componentListing{components: list}, err
		},
		Report: func(w *report.Writer, _ Invocation, out componentListing) ExitCode {
			if out.toolKit != "" {
				rows := make([][]string, len(out.versions))
				for i, v := range out.versions {
					rows[i] = []string{v.ComponentName, report.Dash(v.Owner)}
				}
				w.Table([]string{"component", "owner"}, rows)
				if len(rows) == 0 {
					return ExitNotFound
				}
				return ExitOK
			}
			rows := make([][]string, len(out.components))
			for i, c := range out.components {
				rows[i] = []string{c.Name, c.ComponentTypeName, report.Dash(c.Description)}
			}
			w.Table([]string{"component", "type", "description"}, rows)
			if len(rows) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}

type componentLinkInput struct {
	toolKit   string
	component string
	owner     string
}

func componentLinkVerb() Verb[componentLinkInput, *toolkits.ComponentVersion] {
	return Verb[componentLinkInput, *toolkits.ComponentVersion]{
		Use:   "link",
		Short: "Add a component to a tool kit",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagComponent, "c", "", "Component")
			fs.StringP(flagToolKit, "t", "", "Tool kit")
			fs.String("owner", "", "Owning user (default: the actor)")
		},
		Parse: func(cmd *cobra.Command) (componentLinkInput, error) {
			var in componentLinkInput
			var err error
			if in.component, err = requireString(cmd, flagComponent); err != nil {
				return in, err
			}
			if in.toolKit, err = requireString(cmd, flagToolKit); err != nil {
				return in, err
			}
			in.owner, err = optionalString(cmd, "owner")
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in componentLinkInput) (*toolkits.ComponentVersion, error) {
			return env.Components.Link(ctx, inv.Actor, in.toolKit, in.component, in.owner)
		},
		Report: func(w *report.Writer, _ Invocation, v *toolkits.ComponentVersion) ExitCode {
			w.Pass("Component %s added to tool kit %s", v.ComponentName, v.ToolKitName)
			w.Fields(report.F("Owner", v.Owner))
			return ExitOK
		},
	}
}

type componentTypeInput struct {
	name        string
	description string
}

func componentTypeFlags(fs *pflag.FlagSet) {
	fs.StringP(flagName, "n", "", "Component type name")
	fs.StringP(flagDescription, "d", "", "Description")
}

func parseComponentType(cmd *cobra.Command) (componentTypeInput, error) {
	var in componentTypeInput
	var err error
	if in.name, err = requireString(cmd, flagName); err != nil {
		return in, err
	}
	in.description, err = optionalString(cmd, flagDescription)
	return in, err
}

func componentTypeAddVerb() Verb[componentTypeInput, *toolkits.ComponentType] {
	return Verb[componentTypeInput, *toolkits.ComponentType]{
		Use:   "add",
		Short: "Create a component type",
		Flags: componentTypeFlags,
		Parse: parseComponentType,
		Execute: func(ctx context.Context, env *Env, _ Invocation, in componentTypeInput) (*toolkits.ComponentType, error) {
			return env.ComponentTypes.Add(ctx, in.name, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, ct *toolkits.ComponentType) ExitCode {
			w.Pass("Component type %s created", ct.Name)
			return ExitOK
		},
	}
}

func componentTypeShowVerb() Verb[string, *toolkits.ComponentType] {
	return Verb[string, *toolkits.ComponentType]{
		Use:   "show",
		Short: "Show a component type",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagName, "n", "", "Component type name")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagName)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*toolkits.ComponentType, error) {
			return env.ComponentTypes.Get(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, ct *toolkits.ComponentType) ExitCode {
			w.Fields(
				report.F("Component type", ct.Name),
				report.F("Description", ct.Description),
			)
			return ExitOK
		},
	}
}

func componentTypeUpdateVerb() Verb[componentTypeInput, *toolkits.ComponentType] {
	return Verb[componentTypeInput, *toolkits.ComponentType]{
		Use:   "update",
		Short: "Change the description of a component type",
		Flags: componentTypeFlags,
		Parse: parseComponentType,
		Execute: func(ctx context.Context, env *Env, _ Invocation, in componentTypeInput) (*toolkits.ComponentType, error) {
			return env.ComponentTypes.Update(ctx, in.name, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, ct *toolkits.ComponentType) ExitCode {
			w.Pass("Component type %s updated", ct.Name)
			return ExitOK
		},
	}
}
