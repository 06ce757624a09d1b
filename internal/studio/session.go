package studio

import (
	"strings"

	"github.com/abihisan/magicstudio/internal/i18n"
)

// Phase is the lifecycle of one panel request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

// Request tracks one panel's in-flight call. Panels each own one; a
// completed request returns to a submittable state, so the cycle re-enters.
type Request struct {
	Phase Phase
	Err   string
}

// Begin moves the request into Submitting. It refuses blank input and
// refuses re-entry while a call is already in flight. Entering Submitting
// clears the previous error; the caller clears its previous artifact.
func (r *Request) Begin(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if r.Phase == PhaseSubmitting {
		return false
	}
	r.Phase = PhaseSubmitting
	r.Err = ""
	return true
}

// Succeed records a completed call.
func (r *Request) Succeed() {
	r.Phase = PhaseSuccess
	r.Err = ""
}

// Fail records a failed call with its display message.
func (r *Request) Fail(msg string) {
	r.Phase = PhaseFailed
	r.Err = msg
}

// InFlight reports whether a call is outstanding.
func (r *Request) InFlight() bool {
	return r.Phase == PhaseSubmitting
}

// FailAction distinguishes which localized fallback a failure uses.
type FailAction int

const (
	ActionGenerate FailAction = iota
	ActionChat
	ActionRefine
	ActionExtract
	ActionSearch
)

// FailureMessage reduces an error to the string a panel shows. Quota
// exhaustion wins over everything and localizes fully, with a shorter
// variant for chat. Only generation surfaces the error's own message;
// every other action shows its fixed localized string.
func FailureMessage(txt *i18n.Table, err error, quota bool, action FailAction) string {
	if quota {
		if action == ActionChat {
			return txt.ErrQuotaChat
		}
		return txt.ErrQuota
	}
	switch action {
	case ActionChat:
		return txt.ErrChat
	case ActionRefine:
		return txt.ErrRefine
	case ActionExtract:
		return txt.ErrExtract
	case ActionSearch:
		return txt.ErrSearch
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return txt.ErrOperation
}
