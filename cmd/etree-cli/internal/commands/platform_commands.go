package commands

import (
	"context"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlatformCommands(rt *Runtime) *cobra.Command {
	return group("platform", "Manage build platforms",
		platformAddVerb().Command(rt),
		platformShowVerb().Command(rt),
	)
}

func newPackageCommands(rt *Runtime) *cobra.Command {
	return group("package", "Manage release packages",
		packageAddVerb().Command(rt),
		packageShowVerb().Command(rt),
	)
}

type platformAddInput struct {
	name        string
	shortName   string
	description string
}

func platformAddVerb() Verb[platformAddInput, *toolkits.Platform] {
	return Verb[platformAddInput, *toolkits.Platform]{
		Use:     "add",
		Short:   "Create a platform",
		Example: "  etree-cli platform add -p 64-rh7 --short rh7",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagPlatform, "p", "", "Platform name")
			fs.String("short", "", "Short name (default: the platform name)")
			fs.StringP(flagDescription, "d", "", "Description")
		},
		Parse: func(cmd *cobra.Command) (platformAddInput, error) {
			var in platformAddInput
			var err error
			if in.name, err = requireString(cmd, flagPlatform); err != nil {
				return in, err
			}
			in.shortName, _ = optionalString(cmd, "short")
			in.description, err = optionalString(cmd, flagDescription)
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, in platformAddInput) (*toolkits.Platform, error) {
			return env.Platforms.Add(ctx, in.name, in.shortName, in.description)
		},
		Report: func(w *report.Writer, _ Invocation, p *toolkits.Platform) ExitCode {
			w.Pass("Platform %s created", p.Name)
			return ExitOK
		},
	}
}

func platformShowVerb() Verb[string, *toolkits.Platform] {
	return Verb[string, *toolkits.Platform]{
		Use:   "show",
		Short: "Show a platform",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagPlatform, "p", "", "Platform name")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagPlatform)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*toolkits.Platform, error) {
			return env.Platforms.Get(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, p *toolkits.Platform) ExitCode {
			w.Fields(
				report.F("Platform", p.Name),
				report.F("Short name", p.ShortName),
				report.F("Description", p.Description),
			)
			return ExitOK
		},
	}
}

type packageAddInput struct {
	name       string
	toolKit    string
	platform   string
	components []string
}

func packageAddVerb() Verb[packageAddInput, *toolkits.ReleasePackage] {
	return Verb[packageAddInput, *toolkits.ReleasePackage]{
		Use:     "add",
		Short:   "Assemble a release package of a tool kit for a platform",
		Example: "  etree-cli package add -t 14.1.6 -p 64-rh7 --components einstimer,edif",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagName, "n", "", "Package name (default: <toolkit>-<platform>)")
			fs.StringP(flagToolKit, "t", "", "Tool kit")
			fs.StringP(flagPlatform, "p", "", "Platform")
			fs.String("components", "", "Comma separated components (default: every component of the tool kit)")
		},
		Parse: func(cmd *cobra.Command) (packageAddInput, error) {
			var in packageAddInput
			var err error
			if in.toolKit, err = requireString(cmd, flagToolKit); err != nil {
				return in, err
			}
			if in.platform, err = requireString(cmd, flagPlatform); err != nil {
				return in, err
			}
			in.name, _ = optionalString(cmd, flagName)
			components, _ := optionalString(cmd, "components")
			in.components = splitCSV(components)
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in packageAddInput) (*toolkits.ReleasePackage, error) {
			return env.Packages.Add(ctx, inv.Actor, in.name, in.toolKit, in.platform, in.components)
		},
		Report: func(w *report.Writer, _ Invocation, p *toolkits.ReleasePackage) ExitCode {
			w.Pass("Package %s created", p.Name)
			writePackage(w, p)
			return ExitOK
		},
	}
}

func packageShowVerb() Verb[string, *toolkits.ReleasePackage] {
	return Verb[string, *toolkits.ReleasePackage]{
		Use:   "show",
		Short: "Show a release package",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagName, "n", "", "Package name")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagName)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*toolkits.ReleasePackage, error) {
			return env.Packages.Get(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, p *toolkits.ReleasePackage) ExitCode {
			w.Heading("package " + p.Name)
			writePackage(w, p)
			return ExitOK
		},
	}
}

func writePackage(w *report.Writer, p *toolkits.ReleasePackage) {
	w.Fields(
		report.F("Package", p.Name),
		report.F("Tool kit", p.ToolKitName),
		report.F("Platform", p.PlatformName),
		report.F("Components", strings.Join(p.Components, ", ")),
		report.F("Created by", p.CreatedBy),
		report.F("Created", report.Time(p.CreatedAt)),
	)
}
