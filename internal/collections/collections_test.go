package collections

import (
	"reflect"
	"testing"
)

func TestDivideOnPreservesOrder(t *testing.T) {
	matching, rest := DivideOn([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(matching, []int{2, 4}) {
		t.Fatalf("unexpected matching: %v", matching)
	}
	if !reflect.DeepEqual(rest, []int{1, 3, 5}) {
		t.Fatalf("unexpected rest: %v", rest)
	}
}

func TestLast(t *testing.T) {
	if v, ok := Last([]string{"a", "b", "c"}); !ok || v != "c" {
		t.Fatalf("expected (c, true), got (%v, %v)", v, ok)
	}
	if v, ok := Last([]string{}); ok || v != "" {
		t.Fatalf("expected zero value and false on empty input, got (%v, %v)", v, ok)
	}
}

func TestMapOrdered(t *testing.T) {
	got := MapOrdered([]int{1, 2, 3}, func(n int) int { return n * n })
	if !reflect.DeepEqual(got, []int{1, 4, 9}) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestFlatMapOrdered(t *testing.T) {
	got := FlatMapOrdered([]int{1, 2, 3}, func(n int) []int { return []int{n, -n} })
	want := []int{1, -1, 2, -2, 3, -3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestGroupBy(t *testing.T) {
	got := GroupBy([]int{1, 2, 3, 4, 5, 6}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if !reflect.DeepEqual(got["even"], []int{2, 4, 6}) {
		t.Fatalf("unexpected even group: %v", got["even"])
	}
	if !reflect.DeepEqual(got["odd"], []int{1, 3, 5}) {
		t.Fatalf("unexpected odd group: %v", got["odd"])
	}
}
