package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newEventCommands(rt *Runtime) *cobra.Command {
	return group("event", "Record and show location events",
		eventAddVerb().Command(rt),
		eventShowVerb().Command(rt),
	)
}

func parseLocation(value string) (events.Location, error) {
	l, ok := events.ParseLocation(value)
	if !ok {
		return "", apperr.InvalidInput("invalid --location %q: expected BUILD, DEV, TK, SHIP or PROD", value)
	}
	return l, nil
}

type eventAddInput struct {
	toolKit   string
	component string
	location  events.Location
	event     string
	message   string
}

func eventAddVerb() Verb[eventAddInput, *events.LocationEvent] {
	return Verb[eventAddInput, *events.LocationEvent]{
		Use:     "add",
		Short:   "Record an event for a component of a tool kit",
		Example: "  etree-cli event add -t 14.1.6 -c einstimer --location build -e BUILD_SUCCESS",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit")
			fs.StringP(flagComponent, "c", "", "Component")
			fs.String("location", "", "BUILD, DEV, TK, SHIP or PROD")
			fs.StringP("event", "e", "", "Event name, e.g. BUILD_SUCCESS")
			fs.StringP("message", "m", "", "Free text message")
		},
		Parse: func(cmd *cobra.Command) (eventAddInput, error) {
			var in eventAddInput
			var err error
			if in.toolKit, err = requireString(cmd, flagToolKit); err != nil {
				return in, err
			}
			if in.component, err = requireString(cmd, flagComponent); err != nil {
				return in, err
			}
			loc, err := requireString(cmd, "location")
			if err != nil {
				return in, err
			}
			if in.location, err = parseLocation(loc); err != nil {
				return in, err
			}
			if in.event, err = requireString(cmd, "event"); err != nil {
				return in, err
			}
			in.message, err = optionalString(cmd, "message")
			return in, err
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in eventAddInput) (*events.LocationEvent, error) {
			return env.Events.Add(ctx, inv.Actor, in.toolKit, in.component, in.location, in.event, in.message)
		},
		Report: func(w *report.Writer, _ Invocation, e *events.LocationEvent) ExitCode {
			w.Pass("Event %s recorded for %s in %s at %s", e.Event, e.ComponentName, e.ToolKitName, e.Location)
			return ExitOK
		},
	}
}

func eventShowVerb() Verb[*events.EventQuery, []*events.LocationEvent] {
	return Verb[*events.EventQuery, []*events.LocationEvent]{
		Use:   "show",
		Short: "Show the latest events of a tool kit, newest first",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Tool kit")
			fs.StringP(flagComponent, "c", "", "Restrict to a component")
			fs.String("location", "", "Restrict to a location")
			fs.Int(flagLimit, 20, "Maximum number of events")
		},
		Parse: func(cmd *cobra.Command) (*events.EventQuery, error) {
			q := &events.EventQuery{}
			var err error
			if q.ToolKitName, err = requireString(cmd, flagToolKit); err != nil {
				return nil, err
			}
			q.ComponentName, _ = optionalString(cmd, flagComponent)
			if v, _ := optionalString(cmd, "location"); v != "" {
				if q.Location, err = parseLocation(v); err != nil {
					return nil, err
				}
			}
			q.Limit, _ = cmd.Flags().GetInt(flagLimit)
			return q, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, q *events.EventQuery) ([]*events.LocationEvent, error) {
			return env.Events.List(ctx, q)
		},
		Report: func(w *report.Writer, _ Invocation, list []*events.LocationEvent) ExitCode {
			rows := make([][]string, len(list))
			for i, e := range list {
				rows[i] = []string{report.Time(e.CreatedAt), e.ComponentName, string(e.Location), e.Event, e.User, report.Dash(e.Message)}
			}
			w.Table([]string{"when", "component", "location", "event", "user", "message"}, rows)
			if len(list) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}
