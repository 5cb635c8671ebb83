package script

import (
	"testing"

	"github.com/halvard/edittree/edit"
)

func TestPredicateConsidersByKind(t *testing.T) {
	p, err := NewPredicate(`
function considered(kind, offset, length)
  return kind == "Insert"
end
`)
	if err != nil {
		t.Fatalf("NewPredicate: %v", err)
	}
	defer p.Close()

	fn := p.Func()
	if !fn(edit.NewInsert(0, "x")) {
		t.Error("expected an Insert edit to be considered")
	}
	if fn(edit.NewDelete(0, 1)) {
		t.Error("expected a Delete edit not to be considered")
	}
}

func TestPredicateConsidersByOffsetAndLength(t *testing.T) {
	p, err := NewPredicate(`
function considered(kind, offset, length)
  return offset >= 10 and length > 0
end
`)
	if err != nil {
		t.Fatalf("NewPredicate: %v", err)
	}
	defer p.Close()

	fn := p.Func()
	if fn(edit.NewDelete(5, 2)) {
		t.Error("expected an edit before offset 10 not to be considered")
	}
	if !fn(edit.NewDelete(10, 2)) {
		t.Error("expected an edit at offset 10 with length>0 to be considered")
	}
}

func TestNewPredicateRejectsMissingConsideredFunction(t *testing.T) {
	_, err := NewPredicate(`x = 1`)
	if err == nil {
		t.Error("expected an error when the script doesn't define considered")
	}
}

func TestNewPredicateRejectsSandboxEscape(t *testing.T) {
	_, err := NewPredicate(`
dofile("/etc/passwd")
function considered(kind, offset, length) return true end
`)
	if err == nil {
		t.Error("expected dofile to be unavailable inside the sandbox")
	}
}

func TestPredicateFailsOpenOnRuntimeError(t *testing.T) {
	p, err := NewPredicate(`
function considered(kind, offset, length)
  error("boom")
end
`)
	if err != nil {
		t.Fatalf("NewPredicate: %v", err)
	}
	defer p.Close()

	if !p.Func()(edit.NewInsert(0, "x")) {
		t.Error("expected a runtime error inside considered() to fail open (true)")
	}
}
