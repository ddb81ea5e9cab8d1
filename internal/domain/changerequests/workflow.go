package changerequests

import (
	"fmt"
	"strings"
)

// Action is a requested change of status.
type Action string

// Workflow actions
const (
	ActionApprove    Action = "APPROVE"
	ActionActivate   Action = "ACTIVATE"
	ActionReActivate Action = "REACTIVATE"
	ActionReview     Action = "REVIEW"
	ActionComplete   Action = "COMPLETE"
)

// Authority is what an actor must hold for a transition.
type Authority int

// Authorities checked by the transition table
const (
	// AuthorityAnyone needs no role.
	AuthorityAnyone Authority = iota
	// AuthorityCCBApprover needs the CCB approver role.
	AuthorityCCBApprover
	// AuthorityCCBOrDevelopment needs the CCB approver role unless the
	// request's tool kit is in DEVELOPMENT.
	AuthorityCCBOrDevelopment
	// AuthorityCreatorOrSystem needs the actor to be the request's creator
	// or a system account.
	AuthorityCreatorOrSystem
)

// Outcome is the result class of an evaluated transition.
type Outcome string

// Transition outcomes
const (
	OutcomeApplied   Outcome = "APPLIED"
	OutcomeUnchanged Outcome = "UNCHANGED"
	OutcomeRejected  Outcome = "REJECTED"
)

// RejectKind tells why a transition was rejected.
type RejectKind string

// Rejection kinds
const (
	RejectNone        RejectKind = ""
	RejectIllegal     RejectKind = "ILLEGAL_TRANSITION"
	RejectNotAllowed  RejectKind = "NOT_AUTHORIZED"
	RejectUnsupported RejectKind = "UNSUPPORTED_TARGET"
)

// Rule is one legal transition.
type Rule struct {
	To        Status
	Authority Authority
}

type transitionKey struct {
	from   Status
	action Action
}

// transitions is the complete set of legal (status, action) pairs. A pair
// whose To equals its status is a no-op reported as unchanged.
var transitions = map[transitionKey]Rule{
	{StatusSubmitted, ActionApprove}: {To: StatusApproved, Authority: AuthorityCCBApprover},
	{StatusReviewed, ActionApprove}:  {To: StatusApproved, Authority: AuthorityCCBApprover},
	{StatusApproved, ActionApprove}:  {To: StatusApproved, Authority: AuthorityAnyone},

	{StatusSubmitted, ActionActivate}: {To: StatusApproved, Authority: AuthorityCCBOrDevelopment},
	{StatusReviewed, ActionActivate}:  {To: StatusApproved, Authority: AuthorityCCBOrDevelopment},
	{StatusApproved, ActionActivate}:  {To: StatusApproved, Authority: AuthorityAnyone},

	{StatusComplete, ActionReActivate}: {To: StatusApproved, Authority: AuthorityCreatorOrSystem},

	{StatusSubmitted, ActionReview}: {To: StatusReviewed, Authority: AuthorityAnyone},
	{StatusReviewed, ActionReview}:  {To: StatusReviewed, Authority: AuthorityAnyone},

	{StatusApproved, ActionComplete}: {To: StatusComplete, Authority: AuthorityAnyone},
	{StatusComplete, ActionComplete}: {To: StatusComplete, Authority: AuthorityAnyone},
}

// Lookup returns the rule for (from, action).
func Lookup(from Status, action Action) (Rule, bool) {
	rule, ok := transitions[transitionKey{from: from, action: action}]
	return rule, ok
}

// AllowedFrom lists the statuses from which action is legal.
func AllowedFrom(action Action) []Status {
	var allowed []Status
	for _, s := range Statuses() {
		if _, ok := Lookup(s, action); ok {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

// Actor is the identity and authority of whoever requests a transition.
type Actor struct {
	Login         string
	CCBApprover   bool
	SystemAccount bool
}

// Conditions are facts about the request's surroundings that some rules
// depend on.
type Conditions struct {
	// DevelopmentToolKit is true when the request's tool kit is in DEVELOPMENT.
	DevelopmentToolKit bool
}

// TransitionResult describes an evaluated transition.
type TransitionResult struct {
	ChangeRequest string
	Action        Action
	From          Status
	To            Status
	Outcome       Outcome
	Reject        RejectKind
	Reason        string
}

// Changed reports whether the transition must be persisted.
func (r *TransitionResult) Changed() bool {
	return r.Outcome == OutcomeApplied
}

// Evaluate decides the transition of cr under action by actor. It never
// mutates cr.
func Evaluate(cr *ChangeRequest, action Action, actor Actor, cond Conditions) TransitionResult {
	result := TransitionResult{
		ChangeRequest: cr.Name,
		Action:        action,
		From:          cr.Status,
		To:            cr.Status,
	}

	rule, ok := Lookup(cr.Status, action)
	if !ok {
		result.Outcome = OutcomeRejected
		result.Reject = RejectIllegal
		result.Reason = fmt.Sprintf("cannot %s change request %s in status %s; allowed from %s",
			strings.ToLower(string(action)), cr.Name, cr.Status, joinStatuses(AllowedFrom(action)))
		return result
	}

	if reason := checkAuthority(rule.Authority, cr, actor, cond); reason != "" {
		result.Outcome = OutcomeRejected
		result.Reject = RejectNotAllowed
		result.Reason = reason
		return result
	}

	if rule.To == cr.Status {
		result.Outcome = OutcomeUnchanged
		result.Reason = fmt.Sprintf("change request %s is already %s", cr.Name, cr.Status)
		return result
	}

	result.To = rule.To
	result.Outcome = OutcomeApplied
	result.Reason = fmt.Sprintf("change request %s moved from %s to %s", cr.Name, cr.Status, rule.To)
	return result
}

func checkAuthority(authority Authority, cr *ChangeRequest, actor Actor, cond Conditions) string {
	switch authority {
	case AuthorityAnyone:
		return ""
	case AuthorityCCBApprover:
		if !actor.CCBApprover {
			return fmt.Sprintf("user %s is not a CCB approver", actor.Login)
		}
	case AuthorityCCBOrDevelopment:
		if !actor.CCBApprover && !cond.DevelopmentToolKit {
			return fmt.Sprintf("user %s is not a CCB approver and tool kit %s is not in DEVELOPMENT", actor.Login, cr.ToolKitName)
		}
	case AuthorityCreatorOrSystem:
		if !strings.EqualFold(actor.Login, cr.CreatedBy) && !actor.SystemAccount {
			return fmt.Sprintf("only the creator (%s) or a system account may reactivate %s", cr.CreatedBy, cr.Name)
		}
	}
	return ""
}

// ActionForTarget maps an explicit target status onto the workflow action
// that reaches it from current. SUBMITTED is never a valid target.
func ActionForTarget(current, target Status) (Action, bool) {
	switch target {
	case StatusReviewed:
		return ActionReview, true
	case StatusApproved:
		if current == StatusComplete {
			return ActionReActivate, true
		}
		return ActionApprove, true
	case StatusComplete:
		return ActionComplete, true
	default:
		return "", false
	}
}

// EvaluateTarget decides a transition requested as a target status.
func EvaluateTarget(cr *ChangeRequest, target Status, actor Actor, cond Conditions) TransitionResult {
	action, ok := ActionForTarget(cr.Status, target)
	if !ok {
		return TransitionResult{
			ChangeRequest: cr.Name,
			From:          cr.Status,
			To:            cr.Status,
			Outcome:       OutcomeRejected,
			Reject:        RejectUnsupported,
			Reason:        fmt.Sprintf("status %s cannot be set explicitly", target),
		}
	}
	return Evaluate(cr, action, actor, cond)
}

func joinStatuses(statuses []Status) string {
	if len(statuses) == 0 {
		return "no status"
	}
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, " or ")
}
