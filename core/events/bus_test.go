package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBus_EmitWithoutListeners(t *testing.T) {
	bus := NewBus(zap.NewNop())
	assert.NotPanics(t, func() {
		bus.Emit("nobody:listens", 42)
	})
}

func TestBus_RegistrationOrder(t *testing.T) {
	bus := NewBus(zap.NewNop())
	var calls []string

	bus.On("ping", func(p any) { calls = append(calls, "first:"+p.(string)) })
	bus.On("ping", func(p any) { calls = append(calls, "second:"+p.(string)) })
	bus.On("other", func(p any) { calls = append(calls, "other") })

	bus.Emit("ping", "x")

	assert.Equal(t, []string{"first:x", "second:x"}, calls)
}

func TestBus_DuplicatesAndOff(t *testing.T) {
	bus := NewBus(zap.NewNop())
	count := 0
	handler := func(any) { count++ }

	first := bus.On("tick", handler)
	second := bus.On("tick", handler)
	assert.Equal(t, 2, bus.Count("tick"))

	bus.Emit("tick", nil)
	assert.Equal(t, 2, count)

	assert.True(t, bus.Off(first))
	assert.False(t, bus.Off(first), "second removal of the same subscription is a no-op")

	bus.Emit("tick", nil)
	assert.Equal(t, 3, count)

	assert.True(t, bus.Off(second))
	assert.Equal(t, 0, bus.Count("tick"))
	assert.Equal(t, "tick", second.Event())
}

func TestBus_ListenerPanicIsContained(t *testing.T) {
	bus := NewBus(zap.NewNop())
	reached := false

	bus.On("boom", func(any) { panic("listener failed") })
	bus.On("boom", func(any) { reached = true })

	assert.NotPanics(t, func() { bus.Emit("boom", nil) })
	assert.True(t, reached)
}

func TestBus_SubscribeDuringEmit(t *testing.T) {
	bus := NewBus(zap.NewNop())
	late := 0

	bus.On("grow", func(any) {
		bus.On("grow", func(any) { late++ })
	})

	bus.Emit("grow", nil)
	assert.Equal(t, 0, late, "listeners added during emit wait for the next emit")

	bus.Emit("grow", nil)
	assert.Equal(t, 1, late)
}

func TestBus_Observe(t *testing.T) {
	bus := NewBus(nil)
	var seen []int
	bus.Observe(func(event string, listeners int) { seen = append(seen, listeners) })

	bus.Emit(ProfileUpdated, UserPayload{UserID: 1})
	bus.On(ProfileUpdated, func(any) {})
	bus.Emit(ProfileUpdated, UserPayload{UserID: 1})

	assert.Equal(t, []int{0, 1}, seen)
}
