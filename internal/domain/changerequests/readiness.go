package changerequests

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
)

// Binding is one tool kit a branch/component pair is bound to.
type Binding struct {
	ToolKitName string
	Stage       toolkits.Stage
}

// Readiness is the verdict of a readiness check.
type Readiness struct {
	ChangeRequest string
	Branch        string
	Component     string
	Ready         bool
	Reason        string
}

// EvaluateReadiness decides whether cr may be committed to branchName of
// componentName, given the tool kits that branch/component is bound to.
//
// A development request is ready iff every bound tool kit is in DEVELOPMENT.
// Any other request is ready iff it is APPROVED and its own tool kit and
// component are among the bindings.
func EvaluateReadiness(cr *ChangeRequest, branchName, componentName string, bindings []Binding) Readiness {
	verdict := Readiness{
		ChangeRequest: cr.Name,
		Branch:        branchName,
		Component:     componentName,
	}

	if len(bindings) == 0 {
		verdict.Reason = fmt.Sprintf("branch %s is not bound to component %s in any tool kit", branchName, componentName)
		return verdict
	}

	if cr.IsDevelopment() {
		var blocking []string
		for _, b := range bindings {
			if b.Stage != toolkits.StageDevelopment {
				blocking = append(blocking, fmt.Sprintf("%s (%s)", b.ToolKitName, b.Stage))
			}
		}
		if len(blocking) > 0 {
			sort.Strings(blocking)
			verdict.Reason = fmt.Sprintf("development request needs every tool kit on %s/%s in DEVELOPMENT; not: %s",
				branchName, componentName, strings.Join(blocking, ", "))
			return verdict
		}
		verdict.Ready = true
		verdict.Reason = fmt.Sprintf("every tool kit on %s/%s is in DEVELOPMENT", branchName, componentName)
		return verdict
	}

	if cr.Status != StatusApproved {
		verdict.Reason = fmt.Sprintf("change request %s is %s, not APPROVED", cr.Name, cr.Status)
		return verdict
	}

	if cr.ComponentName != componentName {
		verdict.Reason = fmt.Sprintf("change request %s is for component %s, not %s", cr.Name, cr.ComponentName, componentName)
		return verdict
	}

	for _, b := range bindings {
		if b.ToolKitName == cr.ToolKitName {
			verdict.Ready = true
			verdict.Reason = fmt.Sprintf("change request %s is APPROVED for %s/%s", cr.Name, cr.ToolKitName, componentName)
			return verdict
		}
	}

	verdict.Reason = fmt.Sprintf("tool kit %s of change request %s is not bound to branch %s/%s",
		cr.ToolKitName, cr.Name, branchName, componentName)
	return verdict
}
