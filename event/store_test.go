package event

import "testing"

func TestStoreClearInvokesOnce(t *testing.T) {
	s := NewStore()
	first, second := 0, 0

	s.Add(func() { first++ })
	s.Add(func() { second++ })
	s.Clear()
	s.Clear()

	if first != 1 {
		t.Errorf("Expected first disposer to run once, got %d", first)
	}
	if second != 1 {
		t.Errorf("Expected second disposer to run once, got %d", second)
	}
}

func TestStoreNilDisposer(t *testing.T) {
	s := NewStore()
	s.Add(nil)
	s.Clear()
}

func TestStoreReusableAfterClear(t *testing.T) {
	s := NewStore()
	calls := 0

	s.Add(func() { calls++ })
	s.Clear()
	s.Add(func() { calls += 10 })
	s.Clear()

	if calls != 11 {
		t.Errorf("Expected calls to be 11, got %d", calls)
	}
}
