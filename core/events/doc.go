// Package events provides the dashboard's publish/subscribe bus.
//
// A Bus is constructed once per application and handed to every feature, which
// keeps tests free of hidden global state. Delivery is synchronous: Emit calls the
// listeners registered at that moment, in registration order, before returning.
// Emitting an event nobody listens to is a no-op.
//
// Because Go funcs cannot be compared, On returns a Subscription handle and Off
// takes that handle back. Registering the same func twice creates two handles and
// both fire.
//
//	bus := events.NewBus(logger)
//	sub := bus.On(events.ProfileUpdated, func(p any) { ... })
//	bus.Emit(events.ProfileUpdated, events.UserPayload{UserID: 7})
//	bus.Off(sub)
package events
