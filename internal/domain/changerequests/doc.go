// Package changerequests defines change requests and the rules that govern
// their status.
//
// Every status change goes through one transition table keyed by
// (current status, action). A pair missing from the table is rejected
// without touching the request. Entries carry the authority the actor must
// hold: anyone, a CCB approver, or the creator of the request or a system
// account. Readiness of a request for a branch is decided separately by
// EvaluateReadiness.
package changerequests
