package command

import (
	"testing"

	"github.com/atomicstack/listpager/internal/pager"
)

type recordingStore struct {
	handles  []pager.Handle
	commands []pager.Command
	result   bool
}

func (r *recordingStore) Dispatch(h pager.Handle, cmd pager.Command) bool {
	r.handles = append(r.handles, h)
	r.commands = append(r.commands, cmd)
	return r.result
}

func TestExecuteDispatchesCommand(t *testing.T) {
	store := &recordingStore{result: true}
	bus := New(store)
	if !bus.Execute(3, pager.Search{Query: "abc"}) {
		t.Fatal("expected dispatch result propagated")
	}
	if len(store.commands) != 1 || store.handles[0] != 3 {
		t.Fatalf("expected one dispatch for handle 3, got %v", store.handles)
	}
	if got, ok := store.commands[0].(pager.Search); !ok || got.Query != "abc" {
		t.Fatalf("unexpected command %#v", store.commands[0])
	}
}

func TestExecuteSkipsNilCommand(t *testing.T) {
	store := &recordingStore{result: true}
	bus := New(store)
	if bus.Execute(0, nil) {
		t.Fatal("expected nil command skipped")
	}
	if len(store.commands) != 0 {
		t.Fatalf("expected no dispatch, got %d", len(store.commands))
	}
	if New(nil).Execute(0, pager.Next{}) {
		t.Fatal("expected bus without store to skip")
	}
}

func TestCommandName(t *testing.T) {
	if got := commandName(pager.Next{}); got != "pager.Next" {
		t.Fatalf("expected pager.Next, got %q", got)
	}
	if got := commandName(nil); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
}
