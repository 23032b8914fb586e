package events

import "github.com/atomicstack/listpager/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Loaded(source string, items int) {
	logging.Trace("app.loaded", map[string]interface{}{"source": source, "items": items})
}

func (AppTracer) Reloaded(source string, items int) {
	logging.Trace("app.reload", map[string]interface{}{"source": source, "items": items})
}

func (AppTracer) ReloadFailed(source string, err error) {
	logging.Trace("app.reload.error", map[string]interface{}{"source": source, "error": err.Error()})
}
