package dropkit

// Handler reacts to one normalized UI event. Handlers may call
// Event.StopPropagation to keep later handlers in a chain from
// running.
type Handler func(e *Event)

// HandlerChain invokes handlers in registration order with an
// early-exit: before each invocation the chain checks whether
// propagation was already stopped and, if so, invokes nothing further.
// Nil handlers are skipped. The chain itself holds no state beyond the
// handler list; it purely sequences caller-supplied side effects.
type HandlerChain struct {
	handlers []Handler
}

// NewHandlerChain creates a chain over the given handlers.
func NewHandlerChain(handlers ...Handler) *HandlerChain {
	return &HandlerChain{handlers: handlers}
}

// Append adds handlers to the end of the chain.
func (c *HandlerChain) Append(handlers ...Handler) *HandlerChain {
	c.handlers = append(c.handlers, handlers...)
	return c
}

// Len returns the number of registered handlers, including nil slots.
func (c *HandlerChain) Len() int {
	return len(c.handlers)
}

// Handle runs the chain against the event.
func (c *HandlerChain) Handle(e *Event) {
	for _, h := range c.handlers {
		if h == nil {
			continue
		}
		if e.PropagationStopped() {
			return
		}
		h(e)
	}
}

// ComposeHandlers combines handlers into a single handler with the
// chain's short-circuit semantics. It lets a caller-supplied handler
// and the widget's internal bookkeeping coexist on one event without
// the caller invoking the internal one explicitly.
func ComposeHandlers(handlers ...Handler) Handler {
	chain := NewHandlerChain(handlers...)
	return chain.Handle
}
