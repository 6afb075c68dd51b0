// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"

// BuildMeshIndex は読込済みプリミティブ列からメッシュ一覧とキー索引を構築する。
// 外観の基準スナップショットはここで、いかなる状態変更よりも先に記録する。
// 1つのキーが複数プリミティブ(左右の実体など)へ対応するため、索引値はリストとなる。
func BuildMeshIndex(systemKey string, primitives []*model.MeshEntity) ([]*model.MeshEntity, map[model.CanonicalKey][]*model.MeshEntity) {
	meshes := make([]*model.MeshEntity, 0, len(primitives))
	index := make(map[model.CanonicalKey][]*model.MeshEntity, len(primitives))
	for _, primitive := range primitives {
		if primitive == nil {
			continue
		}
		primitive.OwnerSystem = systemKey
		primitive.PartKey = model.Normalize(primitive.RawName)
		primitive.CurrentState = model.MeshStateBase
		_ = primitive.CaptureBaseAppearance()

		meshes = append(meshes, primitive)
		if primitive.PartKey == "" {
			// 名前なしプリミティブは一覧には残すが索引からは除外する。
			continue
		}
		index[primitive.PartKey] = append(index[primitive.PartKey], primitive)
	}
	return meshes, index
}
