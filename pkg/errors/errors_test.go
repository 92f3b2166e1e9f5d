package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStoreErrorString(t *testing.T) {
	err := &StoreError{
		Op:   "store.Dispatch",
		Kind: KindTransition,
		Err:  New("boom"),
	}
	got := err.Error()
	want := "store.Dispatch [transition]: boom"
	if got != want {
		t.Errorf("StoreError.Error() = %q, want %q", got, want)
	}
}

func TestStoreErrorWithStore(t *testing.T) {
	err := &StoreError{
		Op:    "store.Dispatch",
		Kind:  KindTransition,
		Store: "counter",
		Err:   New("boom"),
	}
	got := err.Error()
	want := "store=counter"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	err := &StoreError{Op: "binding.StoreOf", Kind: KindConfig, Err: ErrNoStore}
	if !Is(err, ErrNoStore) {
		t.Error("expected errors.Is(err, ErrNoStore) to be true")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindTransition, "transition"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindScript, "script"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "store.Dispatch",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in store.Dispatch: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrapsErrorValue(t *testing.T) {
	cause := New("reducer exploded")
	err := &PanicError{Value: cause}
	if !Is(err, cause) {
		t.Error("expected PanicError to unwrap an error panic value")
	}
	if (&PanicError{Value: 42}).Unwrap() != nil {
		t.Error("expected nil Unwrap for non-error panic value")
	}
}

func TestReport(t *testing.T) {
	var capturedErr *StoreError
	handler := &testHandler{
		onError: func(err *StoreError) {
			capturedErr = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&StoreError{
		Op:   "test.op",
		Kind: KindScript,
		Err:  New("bad script"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError:      func(*StoreError) { called = true },
		onPanic:      func(*PanicError) { called = true },
		onBuildError: func(*BuildError) { called = true },
	}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	ReportBuildError(nil)

	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if Handler() == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		Widget:    "*app.Counter",
		Element:   "*core.StatefulElement",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in *app.Counter.Build(): nil pointer dereference"
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	err2 := &BuildError{
		Widget:  "*app.Counter",
		Element: "*core.StatefulElement",
		Err:     New("failed"),
	}
	if got2 := err2.Error(); !strings.Contains(got2, "error in *app.Counter.Build()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", got2)
	}

	err3 := &BuildError{
		Widget:  "*app.Counter",
		Element: "*core.StatefulElement",
	}
	want3 := "unknown error in *app.Counter.Build()"
	if got3 := err3.Error(); got3 != want3 {
		t.Errorf("BuildError.Error() = %q, want %q", got3, want3)
	}
}

func TestBuildErrorUnwrapsRecoveredStoreError(t *testing.T) {
	cfg := &StoreError{Op: "binding.StoreOf", Kind: KindConfig, Err: ErrNoStore}
	err := &BuildError{Widget: "w", Recovered: cfg}
	if !Is(err, ErrNoStore) {
		t.Error("expected BuildError to expose a recovered configuration error")
	}
	var se *StoreError
	if !As(err, &se) || se.Kind != KindConfig {
		t.Errorf("As(*StoreError) = %v, want KindConfig", se)
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	handler := &testHandler{
		onBuildError: func(err *BuildError) {
			capturedErr = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportBuildError(&BuildError{
		Widget:    "*app.Test",
		Element:   "*core.StatelessElement",
		Recovered: "test panic",
	})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.Widget != "*app.Test" {
		t.Errorf("Widget = %q, want %q", capturedErr.Widget, "*app.Test")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestLogHandlerWritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	h := &LogHandler{Verbose: true, Logger: &l}

	h.HandleError(&StoreError{Op: "store.Dispatch", Kind: KindTransition, Store: "cart", Err: New("boom")})
	h.HandlePanic(&PanicError{Op: "store.Dispatch", Value: "bad"})
	h.HandleBuildError(&BuildError{Widget: "w", Element: "e", Recovered: "x"})

	out := buf.String()
	for _, want := range []string{`"store":"cart"`, `"kind":"transition"`, `"message":"recovered panic"`, `"widget":"w"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError      func(*StoreError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *StoreError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
