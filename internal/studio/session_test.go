package studio

import (
	"errors"
	"testing"

	"github.com/abihisan/magicstudio/internal/i18n"
)

func TestBeginRejectsBlankText(t *testing.T) {
	var r Request
	for _, text := range []string{"", "   ", "\t\n"} {
		if r.Begin(text) {
			t.Errorf("Begin(%q) = true, want rejection", text)
		}
		if r.Phase != PhaseIdle {
			t.Errorf("rejected Begin moved phase to %v", r.Phase)
		}
	}
}

func TestBeginRejectsReentry(t *testing.T) {
	var r Request
	if !r.Begin("go") {
		t.Fatalf("first Begin rejected")
	}
	if r.Begin("again") {
		t.Errorf("Begin while submitting must be rejected")
	}
}

func TestRequestCycle(t *testing.T) {
	var r Request
	r.Begin("go")
	r.Fail("boom")
	if r.Phase != PhaseFailed || r.Err != "boom" {
		t.Fatalf("after Fail: phase=%v err=%q", r.Phase, r.Err)
	}

	// A failed request is re-submittable, and re-entering clears the error.
	if !r.Begin("retry") {
		t.Fatalf("Begin after failure rejected")
	}
	if r.Err != "" {
		t.Errorf("Begin should clear the previous error, got %q", r.Err)
	}
	r.Succeed()
	if r.Phase != PhaseSuccess || r.InFlight() {
		t.Errorf("after Succeed: phase=%v", r.Phase)
	}
	if !r.Begin("once more") {
		t.Errorf("Begin after success rejected")
	}
}

func TestFailureMessageQuota(t *testing.T) {
	err := errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")
	for _, lang := range []i18n.Lang{i18n.English, i18n.Indonesian} {
		txt := i18n.For(lang)
		if got := FailureMessage(txt, err, true, ActionGenerate); got != txt.ErrQuota {
			t.Errorf("[%s] quota message = %q, want %q", lang, got, txt.ErrQuota)
		}
		if got := FailureMessage(txt, err, true, ActionChat); got != txt.ErrQuotaChat {
			t.Errorf("[%s] chat quota message = %q, want %q", lang, got, txt.ErrQuotaChat)
		}
	}
}

func TestFailureMessagePassthrough(t *testing.T) {
	// Only generation shows the error's own message.
	txt := i18n.For(i18n.English)
	err := errors.New("connection reset")
	if got := FailureMessage(txt, err, false, ActionGenerate); got != "connection reset" {
		t.Errorf("FailureMessage = %q, want the raw error", got)
	}
}

func TestFailureMessageFixedPerAction(t *testing.T) {
	txt := i18n.For(i18n.English)
	tests := []struct {
		action FailAction
		err    error
		want   string
	}{
		{ActionChat, errors.New("chat: connection reset by peer"), txt.ErrChat},
		{ActionRefine, errors.New("refine prompt: timeout"), txt.ErrRefine},
		{ActionExtract, errors.New("extract recipe: bad json"), txt.ErrExtract},
		{ActionSearch, errors.New("live visuals: no candidates"), txt.ErrSearch},
	}
	for _, tt := range tests {
		if got := FailureMessage(txt, tt.err, false, tt.action); got != tt.want {
			t.Errorf("FailureMessage(%v, %v) = %q, want %q", tt.err, tt.action, got, tt.want)
		}
	}
}

func TestFailureMessageGenericFallbacks(t *testing.T) {
	txt := i18n.For(i18n.English)
	tests := []struct {
		action FailAction
		want   string
	}{
		{ActionGenerate, txt.ErrOperation},
		{ActionChat, txt.ErrChat},
		{ActionRefine, txt.ErrRefine},
		{ActionExtract, txt.ErrExtract},
		{ActionSearch, txt.ErrSearch},
	}
	for _, tt := range tests {
		if got := FailureMessage(txt, nil, false, tt.action); got != tt.want {
			t.Errorf("FailureMessage(nil, %v) = %q, want %q", tt.action, got, tt.want)
		}
	}
}
