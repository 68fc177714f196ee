package csvexport

import (
	"errors"
	"testing"
)

type sample struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
	Hidden string  `json:"-"`
	Plain  int
}

func TestToCSV(t *testing.T) {
	got, err := ToCSV([]sample{
		{ID: "p1", Amount: 500, Note: "cash", Hidden: "x", Plain: 1},
		{ID: "p2", Amount: 300, Note: `said "ok"`, Plain: 2},
	})
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	want := "id,amount,note,Plain\n" +
		"\"p1\",\"500\",\"cash\",\"1\"\n" +
		"\"p2\",\"300\",\"said \"\"ok\"\"\",\"2\"\n"
	if got != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, want)
	}
}

func TestToCSV_EmptySlice(t *testing.T) {
	got, err := ToCSV([]sample{})
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	if got != "id,amount,note,Plain\n" {
		t.Fatalf("expected header only, got %q", got)
	}
}

func TestToCSV_PointerElements(t *testing.T) {
	got, err := ToCSV([]*sample{{ID: "p1", Amount: 1}, nil})
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	want := "id,amount,note,Plain\n\"p1\",\"1\",\"\",\"0\"\n"
	if got != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, want)
	}
}

func TestToCSV_NotSlice(t *testing.T) {
	if _, err := ToCSV("nope"); !errors.Is(err, ErrNotSlice) {
		t.Fatalf("expected ErrNotSlice, got %v", err)
	}
	if _, err := ToCSV([]int{1, 2}); !errors.Is(err, ErrNotSlice) {
		t.Fatalf("expected ErrNotSlice for non-struct elements, got %v", err)
	}
}
