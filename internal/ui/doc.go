// Package ui contains the Bubble Tea program that renders a paginated,
// searchable list. The Model is the pager.View for its session: the pager
// store decides which rows are visible and what the pager bar looks like, and
// the Model only records those instructions and draws them.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Page navigation keys press the pager controls the store bound when it
//     built the pager (previous, next, jump to first/last page).
//   - Query edits (internal/ui/input.go) update the uistate.Query and dispatch
//     a pager.Search command through the internal/ui/command bus after every
//     change, so the list re-renders from page 1 of the matches.
//   - The go-to-page prompt (ctrl+g) collects a page label and dispatches it as
//     a pager.GoToLabel command; labels that are not valid pages are ignored.
//   - When a reload channel is configured, each backend.Event replaces the
//     rows, reconfigures the session and reapplies the query.
//
// Every store call happens inside Update, so the store is only ever touched
// from the Bubble Tea event goroutine.
package ui
