// 指示: miu200521358
package moutput

import "github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"

// IMetadataReader は系統メタデータの読み込み契約を表す。
type IMetadataReader interface {
	CanLoad(path string) bool
	Load(path string) (model.SystemMetadata, error)
}

// IModelReader はモデルアセットの読み込み契約を表す。
type IModelReader interface {
	CanLoad(path string) bool
	InferName(path string) string
	Load(path string) ([]*model.MeshEntity, error)
}

// IHitTester は視線レイと読込済みプリミティブ群のヒット判定契約を表す。
// ヒットなしはnilを返す。
type IHitTester interface {
	Nearest(ray model.Ray, meshes []*model.MeshEntity) *model.MeshEntity
}
