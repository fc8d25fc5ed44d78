package event

import "testing"

func TestEmitterNotifiesInOrder(t *testing.T) {
	e := NewEmitter()
	var order []int

	e.On(Select, func(Type) { order = append(order, 1) })
	e.On(Select, func(Type) { order = append(order, 2) })
	e.On(Settle, func(Type) { order = append(order, 99) })

	e.Emit(Select)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected handlers 1 then 2, got %v", order)
	}
}

func TestEmitterDisposerIdempotent(t *testing.T) {
	e := NewEmitter()
	calls := 0

	dispose := e.On(Scroll, func(Type) { calls++ })
	e.Emit(Scroll)
	dispose()
	e.Emit(Scroll)
	dispose()
	e.Emit(Scroll)

	if calls != 1 {
		t.Errorf("Expected 1 call after disposal, got %d", calls)
	}
}

func TestEmitterDisposeDuringEmit(t *testing.T) {
	e := NewEmitter()
	first, second, third := 0, 0, 0

	var dispose func()
	dispose = e.On(Scroll, func(Type) {
		first++
		dispose()
	})
	e.On(Scroll, func(Type) { second++ })
	e.On(Scroll, func(Type) { third++ })

	// Every handler registered at emit time runs exactly once, even though the
	// first removes itself while the emit is in flight
	e.Emit(Scroll)
	if first != 1 || second != 1 || third != 1 {
		t.Errorf("Expected each handler to run once, got %d %d %d", first, second, third)
	}

	e.Emit(Scroll)
	if first != 1 {
		t.Errorf("Expected disposed handler to stay removed, got %d", first)
	}
	if second != 2 || third != 2 {
		t.Errorf("Expected surviving handlers to run twice, got %d and %d", second, third)
	}
}

func TestEmitterDisposeEarlierHandlerDuringEmit(t *testing.T) {
	e := NewEmitter()
	first, second, third := 0, 0, 0

	disposeFirst := e.On(Scroll, func(Type) { first++ })
	e.On(Scroll, func(Type) {
		second++
		disposeFirst()
	})
	e.On(Scroll, func(Type) { third++ })

	e.Emit(Scroll)
	if first != 1 || second != 1 || third != 1 {
		t.Errorf("Expected each handler to run once, got %d %d %d", first, second, third)
	}

	e.Emit(Scroll)
	if first != 1 || second != 2 || third != 2 {
		t.Errorf("Expected only the disposed handler to drop out, got %d %d %d", first, second, third)
	}
}

func TestEmitterNilHandler(t *testing.T) {
	e := NewEmitter()

	dispose := e.On(Init, nil)
	e.Emit(Init)
	dispose()
	dispose()
}

func TestEmitterClear(t *testing.T) {
	e := NewEmitter()
	calls := 0

	dispose := e.On(Destroy, func(Type) { calls++ })
	e.Clear()
	e.Emit(Destroy)
	// Disposing after a clear must not blow up
	dispose()

	if calls != 0 {
		t.Errorf("Expected no calls after clear, got %d", calls)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{Init, "init"},
		{Select, "select"},
		{Settle, "settle"},
		{PointerUp, "pointerUp"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("Expected String to be %q, got %q", tt.want, got)
		}
	}
}
