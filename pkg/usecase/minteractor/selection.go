// 指示: miu200521358
package minteractor

import (
	"sort"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

// SelectionState は現在選択中のグループキー集合を表す。系統切替のたびに空へ戻る。
type SelectionState struct {
	selected map[model.CanonicalKey]struct{}
}

// NewSelectionState は空の選択状態を生成する。
func NewSelectionState() *SelectionState {
	return &SelectionState{selected: map[model.CanonicalKey]struct{}{}}
}

// Toggle はキーの選択を反転し、反転後に選択中かどうかを返す。
// 追加/削除を別口にせずトグル1本とすることで、再クリックでの解除を保証する。
func (s *SelectionState) Toggle(key model.CanonicalKey) bool {
	if s == nil || key == "" {
		return false
	}
	if _, ok := s.selected[key]; ok {
		delete(s.selected, key)
		return false
	}
	s.selected[key] = struct{}{}
	return true
}

// Clear は選択をすべて解除する。
func (s *SelectionState) Clear() {
	if s == nil {
		return
	}
	s.selected = map[model.CanonicalKey]struct{}{}
}

// Has はキーが選択中かどうかを返す。
func (s *SelectionState) Has(key model.CanonicalKey) bool {
	if s == nil {
		return false
	}
	_, ok := s.selected[key]
	return ok
}

// Len は選択中キー数を返す。
func (s *SelectionState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.selected)
}

// Keys は選択中キーを辞書順で返す。
func (s *SelectionState) Keys() []model.CanonicalKey {
	if s == nil {
		return nil
	}
	keys := make([]model.CanonicalKey, 0, len(s.selected))
	for key := range s.selected {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Expand は選択中グループのメンバーキー和集合を現在のグループ索引から都度計算する。
// 索引にないキーは単独メンバーのグループとして扱う。結果はキャッシュしない。
func (s *SelectionState) Expand(groups map[model.CanonicalKey]*model.Group) map[model.CanonicalKey]struct{} {
	expanded := map[model.CanonicalKey]struct{}{}
	if s == nil {
		return expanded
	}
	for key := range s.selected {
		group, ok := groups[key]
		if !ok || group == nil {
			expanded[key] = struct{}{}
			continue
		}
		for member := range group.MemberMeshKeys {
			expanded[member] = struct{}{}
		}
	}
	return expanded
}
