// 指示: miu200521358
package minteractor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

const (
	// dimmedOpacity は選択外メッシュの不透明度。
	dimmedOpacity = 0.08
	// selectedDrawOrderBoost は選択メッシュへ加算する描画優先度。
	// 同深度の減衰メッシュに選択メッシュが隠れないようにする。
	selectedDrawOrderBoost = 10
)

var (
	// dimmedColor は選択外メッシュへ適用する低コントラスト色。
	dimmedColor = mgl64.Vec4{0.55, 0.55, 0.58, 1.0}
	// selectedEmissive は選択メッシュへ適用する強調発光色。
	selectedEmissive = mgl64.Vec3{0.30, 0.24, 0.08}
)

// RepaintMeshes は展開済みメンバーキー集合に従って全メッシュの描画状態を再計算する。
// 次状態は常に基準スナップショットから求め、直前の描画状態には依存しない。
func RepaintMeshes(meshes []*model.MeshEntity, expandedKeys map[model.CanonicalKey]struct{}) {
	for _, mesh := range meshes {
		if mesh == nil || mesh.Released() {
			continue
		}
		if len(expandedKeys) == 0 {
			applyBaseState(mesh)
			continue
		}
		if _, ok := expandedKeys[mesh.PartKey]; ok && mesh.PartKey != "" {
			applySelectedState(mesh)
			continue
		}
		applyDimmedState(mesh)
	}
}

// applyBaseState は基準スナップショットを厳密に復元する。
func applyBaseState(mesh *model.MeshEntity) {
	mesh.Appearance = mesh.BaseAppearance()
	mesh.CurrentState = model.MeshStateBase
}

// applySelectedState は基準色を保ったまま発光と不透明化で強調する。
func applySelectedState(mesh *model.MeshEntity) {
	appearance := mesh.BaseAppearance()
	appearance.Emissive = selectedEmissive
	appearance.Opacity = 1.0
	appearance.Transparent = false
	appearance.DepthWrite = true
	appearance.DepthTest = true
	appearance.DrawOrder += selectedDrawOrderBoost
	mesh.Appearance = appearance
	mesh.CurrentState = model.MeshStateSelected
}

// applyDimmedState は中立色の半透明へ減衰させる。
// 深度書き込みを止めて選択メッシュとのZファイトを避ける。深度テストは維持する。
func applyDimmedState(mesh *model.MeshEntity) {
	appearance := mesh.BaseAppearance()
	appearance.Color = dimmedColor
	appearance.Emissive = mgl64.Vec3{}
	appearance.Opacity = dimmedOpacity
	appearance.Transparent = true
	appearance.DepthWrite = false
	appearance.DepthTest = true
	mesh.Appearance = appearance
	mesh.CurrentState = model.MeshStateDimmed
}
