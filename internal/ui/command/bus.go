package command

import (
	"fmt"

	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/pager"
)

// Dispatcher applies pager commands to sessions.
type Dispatcher interface {
	Dispatch(h pager.Handle, cmd pager.Command) bool
}

// Bus routes view commands to the pager store with trace logging. Commands
// run synchronously on the caller's goroutine.
type Bus struct {
	store Dispatcher
}

// New initialises a command bus over store.
func New(store Dispatcher) *Bus {
	return &Bus{store: store}
}

// Execute dispatches cmd for session h and reports whether the store accepted it.
func (b *Bus) Execute(h pager.Handle, cmd pager.Command) bool {
	name := commandName(cmd)
	events.Command.Queue(int(h), name)
	if cmd == nil || b.store == nil {
		events.Command.Skip(int(h), name)
		return false
	}
	accepted := b.store.Dispatch(h, cmd)
	events.Command.Result(int(h), name, accepted)
	return accepted
}

func commandName(cmd pager.Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", cmd)
}
