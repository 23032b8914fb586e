package events

import "github.com/atomicstack/listpager/internal/logging"

type UITracer struct{}

type QueryTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Query   = QueryTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) GotoPrompt(open bool) {
	logging.Trace("ui.goto", map[string]interface{}{"open": open})
}

func (QueryTracer) Cleared() {
	logging.Trace("query.clear", nil)
}

func (QueryTracer) Edit(query string, cursor int) {
	logging.Trace("query.edit", map[string]interface{}{"query": query, "cursor": cursor})
}

func (QueryTracer) Cursor(pos int) {
	logging.Trace("query.cursor", map[string]interface{}{"cursor": pos})
}

func (CommandTracer) Queue(handle int, name string) {
	logging.Trace("command.queue", map[string]interface{}{"handle": handle, "command": name})
}

func (CommandTracer) Skip(handle int, name string) {
	logging.Trace("command.skip", map[string]interface{}{"handle": handle, "command": name})
}

func (CommandTracer) Result(handle int, name string, accepted bool) {
	logging.Trace("command.result", map[string]interface{}{"handle": handle, "command": name, "accepted": accepted})
}
