package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newChangeRequestCommands(rt *Runtime) *cobra.Command {
	return group("cr", "Manage change requests and their workflow",
		crAddVerb().Command(rt),
		crShowVerb().Command(rt),
		crListVerb().Command(rt),
		crUpdateVerb().Command(rt),
		crTransitionVerb("approve", "Approve a change request (CCB approvers)", changerequests.WorkflowService.Approve).Command(rt),
		crTransitionVerb("activate", "Activate a change request", changerequests.WorkflowService.Activate).Command(rt),
		crTransitionVerb("reactivate", "Reactivate a COMPLETE change request (creator or system account)", changerequests.WorkflowService.ReActivate).Command(rt),
		crUpdateStatusVerb().Command(rt),
		crReadyVerb().Command(rt),
		crHistoryVerb().Command(rt),
	)
}

func crNameFlag(fs *pflag.FlagSet) {
	fs.StringP(flagChangeRequest, "q", "", "Change request name, e.g. CR-100")
}

func parseCRName(cmd *cobra.Command) (string, error) {
	return requireString(cmd, flagChangeRequest)
}

func crAddVerb() Verb[*changerequests.ChangeRequest, *changerequests.ChangeRequest] {
	return Verb[*changerequests.ChangeRequest, *changerequests.ChangeRequest]{
		Use:     "add",
		Short:   "Submit a change request against a component of a tool kit",
		Example: "  etree-cli cr add --cr CR-100 -t 14.1.6 -c einstimer -d 'fix slack column' --severity 2",
		Flags: func(fs *pflag.FlagSet) {
			crNameFlag(fs)
			fs.StringP(flagToolKit, "t", "", "Tool kit, e.g. 14.1.6")
			fs.StringP(flagComponent, "c", "", "Component")
			fs.StringP(flagDescription, "d", "", "Description")
			fs.String(flagType, string(changerequests.TypeDefect), "Type: DEFECT, FEATURE or DEV")
			fs.String("severity", "3", "Severity 1 (critical) to 4 (low)")
			fs.String("customer", "", "Impacted customer")
		},
		Parse: func(cmd *cobra.Command) (*changerequests.ChangeRequest, error) {
			cr := &changerequests.ChangeRequest{}
			var err error
			if cr.Name, err = parseCRName(cmd); err != nil {
				return nil, err
			}
			if cr.ToolKitName, err = requireString(cmd, flagToolKit); err != nil {
				return nil, err
			}
			if cr.ComponentName, err = requireString(cmd, flagComponent); err != nil {
				return nil, err
			}
			if cr.Description, err = requireString(cmd, flagDescription); err != nil {
				return nil, err
			}
			if cr.ImpactedCustomer, err = optionalString(cmd, "customer"); err != nil {
				return nil, err
			}

			typeValue, _ := cmd.Flags().GetString(flagType)
			t, ok := changerequests.ParseType(typeValue)
			if !ok {
				return nil, apperr.InvalidInput("invalid --type %q", typeValue)
			}
			cr.Type = t

			severityValue, _ := cmd.Flags().GetString("severity")
			sev, ok := changerequests.ParseSeverity(severityValue)
			if !ok {
				return nil, apperr.InvalidInput("invalid --severity %q: expected 1 to 4", severityValue)
			}
			cr.Severity = sev
			return cr, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in *changerequests.ChangeRequest) (*changerequests.ChangeRequest, error) {
			return env.ChangeRequests.Add(ctx, inv.Actor, in)
		},
		Report: func(w *report.Writer, _ Invocation, cr *changerequests.ChangeRequest) ExitCode {
			w.Pass("Change request %s submitted", cr.Name)
			writeChangeRequest(w, cr)
			return ExitOK
		},
	}
}

func crShowVerb() Verb[string, *changerequests.ChangeRequest] {
	return Verb[string, *changerequests.ChangeRequest]{
		Use:   "show",
		Short: "Show a change request",
		Flags: crNameFlag,
		Parse: parseCRName,
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) (*changerequests.ChangeRequest, error) {
			return env.ChangeRequests.Get(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, cr *changerequests.ChangeRequest) ExitCode {
			w.Heading("change request " + cr.Name)
			writeChangeRequest(w, cr)
			return ExitOK
		},
	}
}

func writeChangeRequest(w *report.Writer, cr *changerequests.ChangeRequest) {
	w.Fields(
		report.F("Name", cr.Name),
		report.F("Status", cr.Status),
		report.F("Type", cr.Type),
		report.F("Severity", cr.Severity),
		report.F("Tool kit", cr.ToolKitName),
		report.F("Component", cr.ComponentName),
		report.F("Impacted customer", cr.ImpactedCustomer),
		report.F("Description", cr.Description),
		report.F("Created by", cr.CreatedBy),
		report.F("Created", report.Time(cr.CreatedAt)),
		report.F("Updated by", cr.UpdatedBy),
		report.F("Updated", report.Time(cr.UpdatedAt)),
	)
}

func crListVerb() Verb[*changerequests.ChangeRequestQuery, []*changerequests.ChangeRequest] {
	return Verb[*changerequests.ChangeRequestQuery, []*changerequests.ChangeRequest]{
		Use:   "list",
		Short: "List change requests",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagToolKit, "t", "", "Restrict to a tool kit")
			fs.StringP(flagComponent, "c", "", "Restrict to a component")
			fs.StringP(flagStatus, "s", "", "Restrict to a status")
			fs.String(flagType, "", "Restrict to a type")
			fs.Int(flagLimit, 0, "Maximum number of rows")
		},
		Parse: parseCRQuery,
		Execute: func(ctx context.Context, env *Env, _ Invocation, q *changerequests.ChangeRequestQuery) ([]*changerequests.ChangeRequest, error) {
			return env.ChangeRequests.List(ctx, q)
		},
		Report: func(w *report.Writer, _ Invocation, list []*changerequests.ChangeRequest) ExitCode {
			writeChangeRequestTable(w, list)
			if len(list) == 0 {
				return ExitNotFound
			}
			return ExitOK
		},
	}
}

func parseCRQuery(cmd *cobra.Command) (*changerequests.ChangeRequestQuery, error) {
	q := &changerequests.ChangeRequestQuery{}
	var err error
	if q.ToolKitName, err = optionalString(cmd, flagToolKit); err != nil {
		return nil, err
	}
	if q.ComponentName, err = optionalString(cmd, flagComponent); err != nil {
		return nil, err
	}
	if v, _ := optionalString(cmd, flagStatus); v != "" {
		s, ok := changerequests.ParseStatus(v)
		if !ok {
			return nil, apperr.InvalidInput("invalid --status %q", v)
		}
		q.Status = s
	}
	if v, _ := optionalString(cmd, flagType); v != "" {
		t, ok := changerequests.ParseType(v)
		if !ok {
			return nil, apperr.InvalidInput("invalid --type %q", v)
		}
		q.Type = t
	}
	if q.Limit, err = cmd.Flags().GetInt(flagLimit); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidInput, err, "invalid --limit")
	}
	if q.Limit < 0 {
		return nil, apperr.InvalidInput("--limit must not be negative")
	}
	return q, nil
}

func writeChangeRequestTable(w *report.Writer, list []*changerequests.ChangeRequest) {
	rows := make([][]string, len(list))
	for i, cr := range list {
		rows[i] = []string{
			cr.Name, string(cr.Status), string(cr.Type), fmt.Sprint(cr.Severity),
			cr.ToolKitName, cr.ComponentName, cr.CreatedBy, report.Time(cr.UpdatedAt),
		}
	}
	w.Table([]string{"name", "status", "type", "sev", "tool kit", "component", "created by", "updated"}, rows)
}

func crUpdateVerb() Verb[crUpdateInput, *changerequests.ChangeRequest] {
	return Verb[crUpdateInput, *changerequests.ChangeRequest]{
		Use:   "update",
		Short: "Update description, severity or impacted customer of a change request",
		Flags: func(fs *pflag.FlagSet) {
			crNameFlag(fs)
			fs.StringP(flagDescription, "d", "", "New description")
			fs.String("severity", "", "New severity 1 to 4")
			fs.String("customer", "", "New impacted customer")
		},
		Parse: func(cmd *cobra.Command) (crUpdateInput, error) {
			var in crUpdateInput
			var err error
			if in.name, err = parseCRName(cmd); err != nil {
				return in, err
			}
			in.update = &changerequests.ChangeRequestUpdate{}
			if in.update.Description, err = changedString(cmd, flagDescription); err != nil {
				return in, err
			}
			if in.update.ImpactedCustomer, err = changedString(cmd, "customer"); err != nil {
				return in, err
			}
			if v, _ := changedString(cmd, "severity"); v != nil {
				sev, ok := changerequests.ParseSeverity(*v)
				if !ok {
					return in, apperr.InvalidInput("invalid --severity %q: expected 1 to 4", *v)
				}
				in.update.Severity = &sev
			}
			if in.update.IsEmpty() {
				return in, &StatusError{Code: ExitNotFound, Err: fmt.Errorf("nothing to update for change request %s", in.name)}
			}
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in crUpdateInput) (*changerequests.ChangeRequest, error) {
			return env.ChangeRequests.Update(ctx, inv.Actor, in.name, in.update)
		},
		Report: func(w *report.Writer, _ Invocation, cr *changerequests.ChangeRequest) ExitCode {
			w.Pass("Change request %s updated", cr.Name)
			writeChangeRequest(w, cr)
			return ExitOK
		},
	}
}

type crUpdateInput struct {
	name   string
	update *changerequests.ChangeRequestUpdate
}

type transitionFunc func(svc changerequests.WorkflowService, ctx context.Context, actor, name string) (*changerequests.TransitionResult, error)

func crTransitionVerb(use, short string, apply transitionFunc) Verb[string, *changerequests.TransitionResult] {
	return Verb[string, *changerequests.TransitionResult]{
		Use:   use,
		Short: short,
		Flags: crNameFlag,
		Parse: parseCRName,
		Execute: func(ctx context.Context, env *Env, inv Invocation, name string) (*changerequests.TransitionResult, error) {
			return apply(env.Workflow, ctx, inv.Actor, name)
		},
		Report: reportTransition,
	}
}

func crUpdateStatusVerb() Verb[crStatusInput, *changerequests.TransitionResult] {
	return Verb[crStatusInput, *changerequests.TransitionResult]{
		Use:   "update-status",
		Short: "Move a change request to REVIEWED, APPROVED or COMPLETE",
		Flags: func(fs *pflag.FlagSet) {
			crNameFlag(fs)
			fs.StringP(flagStatus, "s", "", "Target status")
		},
		Parse: func(cmd *cobra.Command) (crStatusInput, error) {
			var in crStatusInput
			var err error
			if in.name, err = parseCRName(cmd); err != nil {
				return in, err
			}
			v, err := requireString(cmd, flagStatus)
			if err != nil {
				return in, err
			}
			s, ok := changerequests.ParseStatus(v)
			if !ok {
				return in, apperr.InvalidInput("invalid --status %q", v)
			}
			in.target = s
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, inv Invocation, in crStatusInput) (*changerequests.TransitionResult, error) {
			return env.Workflow.UpdateStatus(ctx, inv.Actor, in.name, in.target)
		},
		Report: reportTransition,
	}
}

type crStatusInput struct {
	name   string
	target changerequests.Status
}

func reportTransition(w *report.Writer, inv Invocation, r *changerequests.TransitionResult) ExitCode {
	title := "status update"
	if r.Action != "" {
		title = strings.ToLower(string(r.Action))
	}
	w.Heading(title + " " + r.ChangeRequest)
	w.Fields(
		report.F("Change request", r.ChangeRequest),
		report.F("Action", r.Action),
		report.F("From", r.From),
		report.F("To", r.To),
		report.F("Actor", inv.Actor),
	)

	switch r.Outcome {
	case changerequests.OutcomeApplied:
		w.Pass("%s", r.Reason)
		return ExitOK
	case changerequests.OutcomeUnchanged:
		w.Warn("%s", r.Reason)
		return ExitOK
	default:
		w.Fail("%s", r.Reason)
		if r.Reject == changerequests.RejectNotAllowed {
			return ExitNotAuthorized
		}
		return ExitIllegalTransition
	}
}

func crReadyVerb() Verb[crReadyInput, *changerequests.Readiness] {
	return Verb[crReadyInput, *changerequests.Readiness]{
		Use:   "ready",
		Short: "Check whether a change request may be committed to a branch of a component",
		Long: `ready checks a change request against every tool kit binding of a branch.

The identifier DEV is accepted for compatibility and stands for a development
request that is ready when every bound tool kit is in DEVELOPMENT. It is
deprecated: create change requests of type DEV instead.`,
		Flags: func(fs *pflag.FlagSet) {
			crNameFlag(fs)
			fs.StringP(flagBranch, "b", "", "Branch")
			fs.StringP(flagComponent, "c", "", "Component")
		},
		Parse: func(cmd *cobra.Command) (crReadyInput, error) {
			var in crReadyInput
			var err error
			if in.name, err = parseCRName(cmd); err != nil {
				return in, err
			}
			if in.branch, err = requireString(cmd, flagBranch); err != nil {
				return in, err
			}
			if in.component, err = requireString(cmd, flagComponent); err != nil {
				return in, err
			}
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, in crReadyInput) (*changerequests.Readiness, error) {
			return env.Workflow.Ready(ctx, in.name, in.branch, in.component)
		},
		Report: func(w *report.Writer, _ Invocation, r *changerequests.Readiness) ExitCode {
			if r.Ready {
				w.Pass("READY: %s", r.Reason)
				return ExitOK
			}
			w.Fail("NOT READY: %s", r.Reason)
			return ExitNotReady
		},
	}
}

type crReadyInput struct {
	name      string
	branch    string
	component string
}

func crHistoryVerb() Verb[string, []*changerequests.History] {
	return Verb[string, []*changerequests.History]{
		Use:   "history",
		Short: "List the status transitions of a change request",
		Flags: crNameFlag,
		Parse: parseCRName,
		Execute: func(ctx context.Context, env *Env, _ Invocation, name string) ([]*changerequests.History, error) {
			return env.ChangeRequests.History(ctx, name)
		},
		Report: func(w *report.Writer, _ Invocation, list []*changerequests.History) ExitCode {
			rows := make([][]string, len(list))
			for i, h := range list {
				rows[i] = []string{report.Time(h.CreatedAt), string(h.Action), string(h.FromStatus), string(h.ToStatus), h.Actor}
			}
			w.Table([]string{"when", "action", "from", "to", "actor"}, rows)
			return ExitOK
		},
	}
}
