package pipe

import (
	"errors"
	"strconv"
	"testing"
)

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	got, err := From(3).
		Then(func(v int) (int, error) { return v * 2, nil }).
		Then(func(v int) (int, error) { return v + 1, nil }).
		Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	called := false

	c := From(1).
		Then(func(v int) (int, error) { return 0, boom }).
		Then(func(v int) (int, error) {
			called = true
			return v, nil
		})

	if !errors.Is(c.Err(), boom) {
		t.Fatalf("expected boom, got %v", c.Err())
	}
	if called {
		t.Fatal("later step must not run after a failure")
	}
}

func TestMap_Method(t *testing.T) {
	t.Parallel()

	got, err := From(10).Map(func(v int) int { return v / 2 }).Value()
	if err != nil || got != 5 {
		t.Fatalf("expected 5, got %d (err %v)", got, err)
	}
}

func TestTap(t *testing.T) {
	t.Parallel()

	var seen int
	From(42).Tap(func(v int) { seen = v })
	if seen != 42 {
		t.Fatalf("expected tap to see 42, got %d", seen)
	}

	seen = 0
	From(42).
		Then(func(int) (int, error) { return 0, errors.New("nope") }).
		Tap(func(v int) { seen = v })
	if seen != 0 {
		t.Fatal("tap must be skipped on failed chains")
	}
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	c := From(7)
	s := Map(c, strconv.Itoa)

	got, err := s.Value()
	if err != nil || got != "7" {
		t.Fatalf(`expected "7", got %q (err %v)`, got, err)
	}
	if s.ID() != c.ID() {
		t.Fatal("run id must be preserved across type changes")
	}
}

func TestSwitch_ErrorPropagation(t *testing.T) {
	t.Parallel()

	c := From("not-a-number")
	n := Switch(c, strconv.Atoi)

	if n.Err() == nil {
		t.Fatal("expected conversion error")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(From(2).Map(func(v int) int { return v * 3 }),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return "error" },
	)
	if got != "6" {
		t.Fatalf("expected 6, got %s", got)
	}

	got = Finally(Switch(From("x"), strconv.Atoi),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return "error" },
	)
	if got != "error" {
		t.Fatalf("expected error branch, got %s", got)
	}
}
