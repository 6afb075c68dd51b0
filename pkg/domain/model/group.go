// 指示: miu200521358
package model

import "sort"

// Group は選択可能な解剖構造1件を表す。
type Group struct {
	Key            CanonicalKey
	DisplayName    string
	MemberMeshKeys map[CanonicalKey]struct{}
}

// NewGroup はメンバー未登録のグループを生成する。
func NewGroup(key CanonicalKey, displayName string) *Group {
	return &Group{
		Key:            key,
		DisplayName:    displayName,
		MemberMeshKeys: map[CanonicalKey]struct{}{},
	}
}

// AddMember はメンバーキーを追加する。空キーは登録しない。
func (g *Group) AddMember(key CanonicalKey) {
	if g == nil || key == "" {
		return
	}
	g.MemberMeshKeys[key] = struct{}{}
}

// HasMember はメンバーキーの有無を返す。
func (g *Group) HasMember(key CanonicalKey) bool {
	if g == nil {
		return false
	}
	_, ok := g.MemberMeshKeys[key]
	return ok
}

// SortedMembers はメンバーキーを辞書順で返す。
func (g *Group) SortedMembers() []CanonicalKey {
	if g == nil {
		return nil
	}
	members := make([]CanonicalKey, 0, len(g.MemberMeshKeys))
	for key := range g.MemberMeshKeys {
		members = append(members, key)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}
