package events

import "github.com/atomicstack/listpager/internal/logging"

type PagerTracer struct{}

type SearchTracer struct{}

var (
	Pager  = PagerTracer{}
	Search = SearchTracer{}
)

func (PagerTracer) Register(handle, items, pageSize int) {
	logging.Trace("pager.register", map[string]interface{}{"handle": handle, "items": items, "pageSize": pageSize})
}

func (PagerTracer) Paginate(handle, active, total int, filtered bool) {
	logging.Trace("pager.paginate", map[string]interface{}{
		"handle":   handle,
		"active":   active,
		"total":    total,
		"filtered": filtered,
	})
}

func (PagerTracer) BuildPager(handle, total int) {
	logging.Trace("pager.build", map[string]interface{}{"handle": handle, "total": total})
}

func (PagerTracer) DestroyPager(handle int) {
	logging.Trace("pager.destroy", map[string]interface{}{"handle": handle})
}

func (PagerTracer) Page(handle, page, total int) {
	logging.Trace("pager.page", map[string]interface{}{"handle": handle, "page": page, "total": total})
}

func (PagerTracer) Ignored(handle int, request string) {
	logging.Trace("pager.ignored", map[string]interface{}{"handle": handle, "request": request})
}

func (SearchTracer) Attach(handle int) {
	logging.Trace("search.attach", map[string]interface{}{"handle": handle})
}

func (SearchTracer) Query(handle int, query string, matched int) {
	logging.Trace("search.query", map[string]interface{}{"handle": handle, "query": query, "matched": matched})
}

func (SearchTracer) Clear(handle int) {
	logging.Trace("search.clear", map[string]interface{}{"handle": handle})
}
