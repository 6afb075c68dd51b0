// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/port/moutput"
)

// ResolvePick はヒット判定結果を選択状態へ反映する。
// ヒットなし(nil)は何もしない。既存の選択は保持される(背景クリックでの全解除はしない)。
// 選択の反転はグループではなくメッシュキー単位で行う。
func (uc *AnatomyViewerUsecase) ResolvePick(hit *model.MeshEntity) {
	key := pickKey(hit)
	if key == "" {
		return
	}
	uc.call(func() {
		uc.toggleAndRepaint(key)
	})
}

// PickAndResolve は視線レイでヒット判定を行い、結果を選択へ反映する。
// 交差計算自体は供給された判定器に委ねる。
func (uc *AnatomyViewerUsecase) PickAndResolve(ray model.Ray, hitTester moutput.IHitTester) {
	if hitTester == nil {
		return
	}
	uc.call(func() {
		key := pickKey(hitTester.Nearest(ray, uc.meshes))
		if key == "" {
			return
		}
		uc.toggleAndRepaint(key)
	})
}

// pickKey はヒットしたプリミティブから部位キーを導出する。
func pickKey(hit *model.MeshEntity) model.CanonicalKey {
	if hit == nil {
		return ""
	}
	if hit.PartKey != "" {
		return hit.PartKey
	}
	// 索引構築前に取得されたプリミティブは生名から再正規化する。
	return model.Normalize(hit.RawName)
}
