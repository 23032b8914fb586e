package pager

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// rows builds n labelled rows where every seventh row contains "match".
func rows(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		label := fmt.Sprintf("row %02d", i)
		if i%7 == 0 {
			label += " match"
		}
		items[i] = row{id: i, label: label}
	}
	return items
}

func TestSearchNarrowsToSinglePage(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := rows(45)
	list := NewSliceList(nil, items...)
	store.Paginate(list, Config{PageSize: 20})
	filter := store.Attach(list)

	filter.Search("match")
	st, _ := store.State(filter.Handle())
	if !st.FilterActive || st.ActiveCount != 7 {
		t.Fatalf("expected 7 active matches, got %+v", st)
	}
	if st.HasPager || st.TotalPages != 1 {
		t.Fatalf("expected single page without pager, got %+v", st)
	}
	if view.live() != nil {
		t.Fatal("expected previous pager destroyed")
	}
	visible := view.visible(items)
	if len(visible) != 7 {
		t.Fatalf("expected 7 shown, got %d", len(visible))
	}
	for _, item := range visible {
		if !strings.Contains(item.(row).label, "match") {
			t.Fatalf("unexpected visible item %v", item)
		}
	}
	if hidden := len(items) - len(visible); hidden != 38 {
		t.Fatalf("expected 38 hidden, got %d", hidden)
	}
}

func TestSearchThenClearRestoresView(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := makeItems(45)
	list := NewSliceList(nil, items...)
	filter := store.Attach(list)
	h := filter.Handle()
	store.ChangePage(h, 2)
	store.SetSession(h, Config{})

	before := view.visible(items)
	beforeState, _ := store.State(h)
	beforeControls := view.live().state

	filter.Search("item-1")
	if st, _ := store.State(h); st.ActiveCount != 10 {
		t.Fatalf("expected 10 matches for item-1, got %d", st.ActiveCount)
	}
	filter.Clear()

	if got := view.visible(items); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected visibility restored, got %v", got)
	}
	if st, _ := store.State(h); st != beforeState {
		t.Fatalf("expected state %+v restored, got %+v", beforeState, st)
	}
	if view.live().state != beforeControls {
		t.Fatalf("expected pager controls restored, got %+v", view.live().state)
	}
}

func TestBlankSearchClears(t *testing.T) {
	for _, query := range []string{"", "   ", "\t"} {
		view := newFakeView()
		store := NewStore(view)
		items := makeItems(45)
		h := store.Register(Config{Items: items})
		filter, ok := store.AttachHandle(h)
		if !ok {
			t.Fatal("expected attach to known handle")
		}
		filter.Search("item-4")
		filter.Search(query)

		st, _ := store.State(h)
		if st.FilterActive || st.ActiveCount != 45 || st.CurrentPage != 1 {
			t.Fatalf("query %q: expected cleared search, got %+v", query, st)
		}
		if got := view.visible(items); !reflect.DeepEqual(got, items[:20]) {
			t.Fatalf("query %q: expected first page restored, got %v", query, got)
		}
	}
}

func TestSearchIsLiteralAndCaseSensitive(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := makeItems(30)
	h := store.Register(Config{Items: items, PageSize: 10})

	store.Search(h, "ITEM")
	st, _ := store.State(h)
	if !st.FilterActive || st.ActiveCount != 0 {
		t.Fatalf("expected no case-insensitive matches, got %+v", st)
	}
	if len(view.visible(items)) != 0 || st.HasPager {
		t.Fatal("expected nothing shown and no pager")
	}

	store.Search(h, " item")
	if st, _ := store.State(h); st.ActiveCount != 0 {
		t.Fatalf("expected untrimmed query to be matched literally, got %d", st.ActiveCount)
	}

	store.Search(h, "m-2")
	if st, _ := store.State(h); st.ActiveCount != 10 {
		t.Fatalf("expected 10 matches for m-2, got %d", st.ActiveCount)
	}
}

func TestSearchResetsToFirstPageAndPagesMatches(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := makeItems(45)
	h := store.Register(Config{Items: items, PageSize: 5})
	store.ChangePage(h, 4)

	store.Search(h, "item-2")
	st, _ := store.State(h)
	if st.CurrentPage != 1 || st.TotalPages != 2 {
		t.Fatalf("expected page 1 of 2, got %d of %d", st.CurrentPage, st.TotalPages)
	}
	if got := view.visible(items); !reflect.DeepEqual(got, items[20:25]) {
		t.Fatalf("expected first five matches, got %v", got)
	}
	store.NextPage(h)
	if got := view.visible(items); !reflect.DeepEqual(got, items[25:30]) {
		t.Fatalf("expected remaining matches on page 2, got %v", got)
	}
}

func TestReconfigureKeepsSearchActive(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := makeItems(45)
	h := store.Register(Config{Items: items})
	store.Search(h, "item-3")
	store.SetSession(h, Config{PageSize: 4})
	st, _ := store.State(h)
	if !st.FilterActive || st.ActiveCount != 10 || st.TotalPages != 3 {
		t.Fatalf("expected filtered repagination over 10 matches, got %+v", st)
	}
}

func TestAttachCreatesSessionForUnregisteredList(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := makeItems(25)
	list := NewSliceList("parent", items...)

	filter := store.Attach(list)
	h, ok := list.Handle(store)
	if !ok || h != filter.Handle() {
		t.Fatalf("expected list registered with handle %d", filter.Handle())
	}
	if got := len(view.visible(items)); got != DefaultPageSize {
		t.Fatalf("expected default pagination applied, got %d visible", got)
	}

	store.Attach(list)
	if store.Len() != 1 {
		t.Fatalf("expected re-attach to reuse the session, got %d sessions", store.Len())
	}
	if _, ok := store.AttachHandle(99); ok {
		t.Fatal("expected attach to unknown handle to fail")
	}
}

func TestCustomMatchFuncAndMatcher(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	items := rows(14)
	list := NewSliceList(nil, items...)
	filter := store.Attach(list, WithMatchFunc(func(item Item) string {
		return fmt.Sprintf("#%d", item.(row).id)
	}))

	filter.Search("#1")
	if st, _ := store.State(filter.Handle()); st.ActiveCount != 5 {
		t.Fatalf("expected #1,#10..#13 to match, got %d", st.ActiveCount)
	}

	store.Attach(list, WithMatchFunc(ItemText), WithMatcher(FuzzyMatcher))
	filter.Search("r03")
	if st, _ := store.State(filter.Handle()); st.ActiveCount != 1 {
		t.Fatalf("expected fuzzy match on \"row 03\" only, got %d", st.ActiveCount)
	}
}

func TestItemText(t *testing.T) {
	if got := ItemText(row{label: "hello"}); got != "hello" {
		t.Fatalf("expected label text, got %q", got)
	}
	if got := ItemText(42); got != "42" {
		t.Fatalf("expected formatted value, got %q", got)
	}
}

func TestMatchFuncPanicPropagates(t *testing.T) {
	view := newFakeView()
	store := NewStore(view)
	list := NewSliceList(nil, makeItems(3)...)
	filter := store.Attach(list, WithMatchFunc(func(Item) string { panic("bad item") }))

	func() {
		defer func() {
			if r := recover(); r != "bad item" {
				t.Fatalf("expected panic to propagate, got %v", r)
			}
		}()
		filter.Search("x")
	}()

	if !store.ChangePage(filter.Handle(), 1) {
		t.Fatal("expected store usable after a panicking match function")
	}
}
