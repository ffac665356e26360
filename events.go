package deckui

// EventSink is the interface for optional external event consumers (an ECS
// world, a network relay, a recorder). When set on a Controller, every
// change event is forwarded to it after the OnChange subscribers ran.
type EventSink interface {
	EmitEvent(event ChangeEvent)
}

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type handlerRegistry struct {
	change []changeHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.change = removeChangeHandler(h.reg.change, h.id)
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnChange registers a callback fired after every successful mutation.
// This is the re-render signal: hosts redraw when it fires.
func (c *Controller) OnChange(fn func(ChangeEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.change = append(c.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers}
}

// SetEventSink sets the optional external event consumer. Pass nil to clear.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// emit notifies subscribers, then the sink.
func (c *Controller) emit(ev ChangeEvent) {
	for _, h := range c.handlers.change {
		h.fn(ev)
	}
	if c.sink != nil {
		c.sink.EmitEvent(ev)
	}
}
