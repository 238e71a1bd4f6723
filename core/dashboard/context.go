package dashboard

// Context is the per-request bundle handed to features.
// It is rebuilt for every request and never retained by a feature beyond a call.
type Context struct {
	UserID     uint
	Nonce      string
	APIBaseURL string
	Debug      bool
	// Dispatch publishes an event on the application bus.
	Dispatch func(event string, payload any)
}

// Emit forwards to Dispatch when one is set.
func (c Context) Emit(event string, payload any) {
	if c.Dispatch != nil {
		c.Dispatch(event, payload)
	}
}
