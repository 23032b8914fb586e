package pager

// frame is one render instruction for the view: per-item visibility plus the
// pager control state when a pager exists.
type frame struct {
	shown    []Item
	hidden   []Item
	display  Display
	pager    PagerRef
	controls *ControlState
}

// pageFrame builds the frame showing page of the session's active set.
func pageFrame(sess *Session, active []int, page int) frame {
	start, end := pageWindow(page, sess.pageSize, len(active))
	onPage := make(map[int]struct{}, end-start)
	f := frame{display: sess.display}
	for _, idx := range active[start:end] {
		onPage[idx] = struct{}{}
		f.shown = append(f.shown, sess.items[idx])
	}
	for i, item := range sess.items {
		if _, ok := onPage[i]; !ok {
			f.hidden = append(f.hidden, item)
		}
	}
	if sess.pager != nil {
		state := controlStateFor(page, sess.pager.total)
		f.pager = sess.pager.ref
		f.controls = &state
	}
	return f
}

func (f frame) apply(v View) {
	for _, item := range f.hidden {
		v.HideItem(item)
	}
	for _, item := range f.shown {
		v.ShowItem(item, f.display)
	}
	if f.controls != nil {
		v.SetPagerControlState(f.pager, *f.controls)
	}
}

// controlStateFor computes pager control state for page out of total. The
// first and last pages are fixed controls; the movable token covers the pages
// between them, with an ellipsis on each side whenever pages are skipped.
func controlStateFor(page, total int) ControlState {
	return ControlState{
		CurrentPage:          page,
		TotalPages:           total,
		PreviousDisabled:     page == 1,
		NextDisabled:         page == total,
		FirstActive:          page == 1,
		LastActive:           page == total,
		MovableLabel:         itoa(page),
		MovableVisible:       page != 1 && page != total,
		LeftEllipsisVisible:  page > 2,
		RightEllipsisVisible: page < total-1,
	}
}
