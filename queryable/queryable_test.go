package queryable

import (
	"testing"

	"vsis-dpcore/errs"
)

func counterQueryable() *Queryable {
	count := 0
	return New(func(self *Queryable, q Query) (Answer, error) {
		switch q.Tag {
		case TagExternal:
			switch q.Payload.(string) {
			case "incr":
				count++
				return ExternalAnswer(count), nil
			case "get":
				return ExternalAnswer(count), nil
			}
			return Answer{}, errs.NewFailedFunction("unrecognized external query")
		case TagInternal:
			return InternalAnswer("internal-ack"), nil
		}
		return Answer{}, errs.NewFailedFunction("unreachable")
	})
}

func TestQueryable_EvalExternal(t *testing.T) {
	q := counterQueryable()
	if _, err := q.Eval("incr"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.Eval("incr"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := q.Eval("get")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(int) != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestQueryable_EvalInternal(t *testing.T) {
	q := counterQueryable()
	got, err := q.EvalInternal("probe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(string) != "internal-ack" {
		t.Fatalf("got %v, want internal-ack", got)
	}
}

func TestQueryable_SharedState(t *testing.T) {
	q := counterQueryable()
	clone := q.Share()
	if _, err := q.Eval("incr"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := clone.Eval("get")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(int) != 1 {
		t.Fatalf("clone sees %v, want 1 (shared state)", got)
	}
}

func TestEvalPoly_TypeMismatch(t *testing.T) {
	q := counterQueryable()
	q.Eval("incr")
	if _, err := EvalPoly[string](q, "get"); !errs.Is(err, errs.FailedCast) {
		t.Fatalf("expected FailedCast, got %v", err)
	}
}

func TestWrapIfChild_PassesThroughNonQueryable(t *testing.T) {
	out, err := WrapIfChild(nil, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.(int) != 42 {
		t.Fatalf("got %v, want 42", out)
	}
}
