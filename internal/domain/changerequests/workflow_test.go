//go:build unit
// +build unit

package changerequests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	approver = Actor{Login: "ccbchair", CCBApprover: true}
	engineer = Actor{Login: "jdoe"}
	system   = Actor{Login: "svcetree", SystemAccount: true}
)

func newRequest(name string, status Status) *ChangeRequest {
	return &ChangeRequest{
		Name:          name,
		Status:        status,
		Type:          TypeDefect,
		ToolKitName:   "14.1.6",
		ComponentName: "einstimer",
		CreatedBy:     "creator",
	}
}

func TestEvaluate_Approve(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		actor   Actor
		outcome Outcome
		reject  RejectKind
		to      Status
	}{
		{"submitted by approver", StatusSubmitted, approver, OutcomeApplied, RejectNone, StatusApproved},
		{"reviewed by approver", StatusReviewed, approver, OutcomeApplied, RejectNone, StatusApproved},
		{"submitted by engineer", StatusSubmitted, engineer, OutcomeRejected, RejectNotAllowed, StatusSubmitted},
		{"reviewed by engineer", StatusReviewed, engineer, OutcomeRejected, RejectNotAllowed, StatusReviewed},
		{"already approved", StatusApproved, engineer, OutcomeUnchanged, RejectNone, StatusApproved},
		{"complete", StatusComplete, approver, OutcomeRejected, RejectIllegal, StatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := newRequest("CR-100", tt.from)

			result := Evaluate(cr, ActionApprove, tt.actor, Conditions{})

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.reject, result.Reject)
			assert.Equal(t, tt.to, result.To)
			assert.Equal(t, tt.from, cr.Status, "Evaluate must not mutate the request")
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestEvaluate_ApproveAlreadyApprovedMessage(t *testing.T) {
	result := Evaluate(newRequest("CR-7", StatusApproved), ActionApprove, approver, Conditions{})
	assert.False(t, result.Changed())
	assert.Contains(t, result.Reason, "already APPROVED")
}

func TestEvaluate_ApproveIllegalMessageNamesAllowedStatuses(t *testing.T) {
	result := Evaluate(newRequest("CR-7", StatusComplete), ActionApprove, approver, Conditions{})
	assert.Contains(t, result.Reason, "SUBMITTED or REVIEWED or APPROVED")
}

func TestEvaluate_Activate(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		actor   Actor
		cond    Conditions
		outcome Outcome
	}{
		{"approver on production tool kit", StatusSubmitted, approver, Conditions{}, OutcomeApplied},
		{"engineer on production tool kit", StatusSubmitted, engineer, Conditions{}, OutcomeRejected},
		{"engineer on development tool kit", StatusReviewed, engineer, Conditions{DevelopmentToolKit: true}, OutcomeApplied},
		{"already approved", StatusApproved, engineer, Conditions{}, OutcomeUnchanged},
		{"complete", StatusComplete, approver, Conditions{DevelopmentToolKit: true}, OutcomeRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(newRequest("CR-200", tt.from), ActionActivate, tt.actor, tt.cond)
			assert.Equal(t, tt.outcome, result.Outcome)
		})
	}
}

func TestEvaluate_ReActivate(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		actor   Actor
		outcome Outcome
		reject  RejectKind
	}{
		{"creator", StatusComplete, Actor{Login: "creator"}, OutcomeApplied, RejectNone},
		{"creator different case", StatusComplete, Actor{Login: "CREATOR"}, OutcomeApplied, RejectNone},
		{"system account", StatusComplete, system, OutcomeApplied, RejectNone},
		{"approver who is not creator", StatusComplete, approver, OutcomeRejected, RejectNotAllowed},
		{"engineer", StatusComplete, engineer, OutcomeRejected, RejectNotAllowed},
		{"not complete", StatusSubmitted, Actor{Login: "creator"}, OutcomeRejected, RejectIllegal},
		{"approved", StatusApproved, system, OutcomeRejected, RejectIllegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(newRequest("CR-101", tt.from), ActionReActivate, tt.actor, Conditions{})
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.reject, result.Reject)
			if tt.outcome == OutcomeApplied {
				assert.Equal(t, StatusApproved, result.To)
			} else {
				assert.Equal(t, tt.from, result.To)
			}
		})
	}
}

func TestEvaluate_EveryUnlistedPairIsRejected(t *testing.T) {
	actions := []Action{ActionApprove, ActionActivate, ActionReActivate, ActionReview, ActionComplete}
	all := Actor{Login: "creator", CCBApprover: true, SystemAccount: true}

	for _, from := range Statuses() {
		for _, action := range actions {
			result := Evaluate(newRequest("CR-1", from), action, all, Conditions{DevelopmentToolKit: true})
			_, legal := Lookup(from, action)
			if legal {
				assert.NotEqual(t, OutcomeRejected, result.Outcome, "%s/%s", from, action)
			} else {
				assert.Equal(t, OutcomeRejected, result.Outcome, "%s/%s", from, action)
				assert.Equal(t, from, result.To)
			}
		}
	}
}

func TestActionForTarget(t *testing.T) {
	tests := []struct {
		current Status
		target  Status
		action  Action
		ok      bool
	}{
		{StatusSubmitted, StatusReviewed, ActionReview, true},
		{StatusReviewed, StatusApproved, ActionApprove, true},
		{StatusComplete, StatusApproved, ActionReActivate, true},
		{StatusApproved, StatusComplete, ActionComplete, true},
		{StatusReviewed, StatusSubmitted, "", false},
	}

	for _, tt := range tests {
		action, ok := ActionForTarget(tt.current, tt.target)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.action, action)
	}
}

func TestEvaluateTarget(t *testing.T) {
	result := EvaluateTarget(newRequest("CR-9", StatusApproved), StatusComplete, engineer, Conditions{})
	assert.Equal(t, OutcomeApplied, result.Outcome)
	assert.Equal(t, StatusComplete, result.To)

	result = EvaluateTarget(newRequest("CR-9", StatusComplete), StatusApproved, Actor{Login: "creator"}, Conditions{})
	assert.Equal(t, OutcomeApplied, result.Outcome)
	assert.Equal(t, ActionReActivate, result.Action)

	result = EvaluateTarget(newRequest("CR-9", StatusReviewed), StatusSubmitted, approver, Conditions{})
	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.Equal(t, RejectUnsupported, result.Reject)

	result = EvaluateTarget(newRequest("CR-9", StatusSubmitted), StatusComplete, approver, Conditions{})
	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.Equal(t, RejectIllegal, result.Reject)
}
