// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tiendc/go-deepcopy"
)

// MeshState はメッシュの描画状態を表す。常にいずれか1つだけが成立する。
type MeshState int

const (
	// MeshStateBase は読込時の外観そのままの状態を表す。
	MeshStateBase MeshState = iota
	// MeshStateDimmed は選択外として減衰表示する状態を表す。
	MeshStateDimmed
	// MeshStateSelected は選択部位として強調表示する状態を表す。
	MeshStateSelected
)

// String はMeshStateの表示名を返す。
func (s MeshState) String() string {
	switch s {
	case MeshStateBase:
		return "base"
	case MeshStateDimmed:
		return "dimmed"
	case MeshStateSelected:
		return "selected"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Appearance はメッシュの外観を表す。
type Appearance struct {
	Color       mgl64.Vec4
	Emissive    mgl64.Vec3
	Opacity     float64
	Transparent bool
	DepthWrite  bool
	DepthTest   bool
	DrawOrder   int
}

// Ray はヒット判定に使う視線レイを表す。
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// MeshEntity は読込済みモデルが所有する描画プリミティブ1件を表す。
type MeshEntity struct {
	RawName      string
	PartKey      CanonicalKey
	OwnerSystem  string
	CurrentState MeshState
	Appearance   Appearance
	Vertices     []mgl64.Vec3
	Indices      []int

	base     *Appearance
	released bool
}

// CaptureBaseAppearance は現在の外観を基準スナップショットとして1度だけ記録する。
// 2回目以降の呼び出しは何もしない。
func (m *MeshEntity) CaptureBaseAppearance() error {
	if m == nil || m.base != nil {
		return nil
	}
	snapshot := &Appearance{}
	if err := deepcopy.Copy(snapshot, &m.Appearance); err != nil {
		return fmt.Errorf("基準外観の複製に失敗しました: %w", err)
	}
	m.base = snapshot
	return nil
}

// HasBaseAppearance は基準スナップショットの有無を返す。
func (m *MeshEntity) HasBaseAppearance() bool {
	return m != nil && m.base != nil
}

// BaseAppearance は基準スナップショットの複製を返す。
// 未記録の場合は現在の外観を返す。
func (m *MeshEntity) BaseAppearance() Appearance {
	if m == nil {
		return Appearance{}
	}
	if m.base == nil {
		return m.Appearance
	}
	return *m.base
}

// Release は所有する形状リソースを解放する。解放後の再利用は不可。
func (m *MeshEntity) Release() {
	if m == nil || m.released {
		return
	}
	m.Vertices = nil
	m.Indices = nil
	m.released = true
}

// Released は解放済みかどうかを返す。
func (m *MeshEntity) Released() bool {
	return m != nil && m.released
}

// TriangleCount は保持する三角形数を返す。インデックスなしは頂点列を3個組とみなす。
func (m *MeshEntity) TriangleCount() int {
	if m == nil || m.released {
		return 0
	}
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}
