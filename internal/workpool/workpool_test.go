package workpool

import (
	"fmt"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	out, err := Map(8, in, func(v int) (int, error) {
		return v * 2, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestMapEmptyInput(t *testing.T) {
	out, err := Map[int, int](4, nil, func(v int) (int, error) {
		t.Fatal("fn should not be called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestMapReportsLowestIndexError(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6, 7}

	_, err := Map(4, in, func(v int) (int, error) {
		if v >= 3 {
			return 0, fmt.Errorf("job %d failed", v)
		}
		return v, nil
	})
	if err == nil {
		t.Fatal("Map should propagate worker errors")
	}
	if err.Error() != "job 3 failed" {
		t.Errorf("err = %q, want the lowest failing index", err)
	}
}

func TestMapSingleWorker(t *testing.T) {
	out, err := Map(1, []string{"a", "b", "c"}, func(s string) (string, error) {
		return s + s, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	want := []string{"aa", "bb", "cc"}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestMapZeroWorkersDefaults(t *testing.T) {
	out, err := Map(0, []int{1, 2, 3}, func(v int) (int, error) {
		return v + 1, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if out[0] != 2 || out[1] != 3 || out[2] != 4 {
		t.Errorf("out = %v, want [2 3 4]", out)
	}
}
