// Package pager holds the pagination and search state machine for lists of
// rendered items.
//
// A Store owns every session. Sessions are keyed by a Handle that the caller
// persists on its own backing list (see List). A session tracks:
//   - the full ordered item set and the page size,
//   - the display value restored when an item is shown,
//   - an optional search overlay made of per-item match flags,
//   - the pager, which exists only while the active set spans more than one page.
//
// Rendering is pushed to a View. After every state change the store works out
// which items belong to the current page and hides or shows each one. It also
// pushes the pager control state (previous/next enablement, boundary pages, the
// movable page token and the two ellipses). The view never has to work out
// paging itself.
//
// Invalid requests are ignored, not reported. That covers unparsable or
// out-of-range pages and next/previous at a boundary. The bool results say
// whether a request was accepted and rendered, not whether the screen changed:
// asking for the current page again re-renders it and reports true.
package pager
