// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

func TestToggleIsInvolutive(t *testing.T) {
	selection := NewSelectionState()
	if !selection.Toggle("quadriceps") {
		t.Fatalf("first toggle should select")
	}
	if selection.Toggle("quadriceps") {
		t.Fatalf("second toggle should deselect")
	}
	if selection.Len() != 0 {
		t.Fatalf("selection should be empty: %d", selection.Len())
	}
}

func TestToggleIgnoresEmptyKey(t *testing.T) {
	selection := NewSelectionState()
	if selection.Toggle("") {
		t.Fatalf("empty key should not select")
	}
	if selection.Len() != 0 {
		t.Fatalf("selection should stay empty")
	}
}

func TestClearRemovesAllKeys(t *testing.T) {
	selection := NewSelectionState()
	selection.Toggle("a")
	selection.Toggle("b")
	selection.Clear()
	if selection.Len() != 0 {
		t.Fatalf("selection not cleared: %d", selection.Len())
	}
}

func TestExpandUnionsMemberSets(t *testing.T) {
	groups := map[model.CanonicalKey]*model.Group{
		"a": newTestGroup("a", "m1", "m2"),
		"b": newTestGroup("b", "m2", "m3"),
	}
	selection := NewSelectionState()
	selection.Toggle("a")
	selection.Toggle("b")

	expanded := selection.Expand(groups)
	if len(expanded) != 3 {
		t.Fatalf("unexpected expansion size: %d", len(expanded))
	}
	for _, key := range []model.CanonicalKey{"m1", "m2", "m3"} {
		if _, ok := expanded[key]; !ok {
			t.Fatalf("missing member: %s", key)
		}
	}
}

func TestExpandTreatsUnresolvedKeyAsSingleton(t *testing.T) {
	selection := NewSelectionState()
	selection.Toggle("patella")
	expanded := selection.Expand(map[model.CanonicalKey]*model.Group{})
	if len(expanded) != 1 {
		t.Fatalf("unexpected expansion size: %d", len(expanded))
	}
	if _, ok := expanded["patella"]; !ok {
		t.Fatalf("singleton member missing")
	}
}

func TestExpandRecomputesFromCurrentIndex(t *testing.T) {
	selection := NewSelectionState()
	selection.Toggle("a")

	first := selection.Expand(map[model.CanonicalKey]*model.Group{
		"a": newTestGroup("a", "old"),
	})
	if _, ok := first["old"]; !ok {
		t.Fatalf("first expansion missing member")
	}

	// 索引の差し替え後は同じ選択でも新しいメンバーへ展開される。
	second := selection.Expand(map[model.CanonicalKey]*model.Group{
		"a": newTestGroup("a", "new"),
	})
	if _, ok := second["new"]; !ok {
		t.Fatalf("second expansion missing member")
	}
	if _, ok := second["old"]; ok {
		t.Fatalf("stale member leaked into expansion")
	}
}

// newTestGroup はテスト用グループを生成する。
func newTestGroup(key model.CanonicalKey, members ...model.CanonicalKey) *model.Group {
	group := model.NewGroup(key, string(key))
	for _, member := range members {
		group.AddMember(member)
	}
	return group
}
