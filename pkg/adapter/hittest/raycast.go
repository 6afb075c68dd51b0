// 指示: miu200521358
// Package hittest は視線レイと読込済みメッシュの交差判定アダプタを提供する。
package hittest

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

// defaultEpsilon は交差判定の数値許容誤差。
const defaultEpsilon = 1e-9

// RaycastHitTester は三角形交差による最近傍ヒット判定を表す。
type RaycastHitTester struct {
	epsilon float64
}

// NewRaycastHitTester はRaycastHitTesterを生成する。
func NewRaycastHitTester() *RaycastHitTester {
	return &RaycastHitTester{epsilon: defaultEpsilon}
}

// Nearest はレイに最も近い交差メッシュを返す。交差なしはnil。
// 解放済みメッシュは判定対象から外す。
func (h *RaycastHitTester) Nearest(ray model.Ray, meshes []*model.MeshEntity) *model.MeshEntity {
	origin := toR3(ray.Origin)
	direction := toR3(ray.Direction)
	if r3.Norm(direction) == 0 {
		return nil
	}

	var nearest *model.MeshEntity
	nearestDistance := 0.0
	for _, mesh := range meshes {
		if mesh == nil || mesh.Released() {
			continue
		}
		distance, hit := h.nearestTriangleHit(origin, direction, mesh)
		if !hit {
			continue
		}
		if nearest == nil || distance < nearestDistance {
			nearest = mesh
			nearestDistance = distance
		}
	}
	return nearest
}

// nearestTriangleHit はメッシュ内の全三角形との最近傍交差距離を返す。
func (h *RaycastHitTester) nearestTriangleHit(origin, direction r3.Vec, mesh *model.MeshEntity) (float64, bool) {
	nearestDistance := 0.0
	found := false
	triangleCount := mesh.TriangleCount()
	for i := 0; i < triangleCount; i++ {
		v0, v1, v2, ok := triangleVertices(mesh, i)
		if !ok {
			continue
		}
		distance, hit := h.intersectTriangle(origin, direction, toR3(v0), toR3(v1), toR3(v2))
		if !hit {
			continue
		}
		if !found || distance < nearestDistance {
			nearestDistance = distance
			found = true
		}
	}
	return nearestDistance, found
}

// intersectTriangle はMöller–Trumbore法でレイ・三角形交差距離を求める。
func (h *RaycastHitTester) intersectTriangle(origin, direction, v0, v1, v2 r3.Vec) (float64, bool) {
	edge1 := r3.Sub(v1, v0)
	edge2 := r3.Sub(v2, v0)
	pvec := r3.Cross(direction, edge2)
	det := r3.Dot(edge1, pvec)
	if det > -h.epsilon && det < h.epsilon {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := r3.Sub(origin, v0)
	u := r3.Dot(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := r3.Cross(tvec, edge1)
	v := r3.Dot(direction, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := r3.Dot(edge2, qvec) * invDet
	if t <= h.epsilon {
		return 0, false
	}
	return t, true
}

// triangleVertices はi番目の三角形の3頂点を返す。
// 頂点範囲外のインデックスを含む三角形はfalseで弾き、判定対象から外す。
func triangleVertices(mesh *model.MeshEntity, i int) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3, bool) {
	if len(mesh.Indices) > 0 {
		i0, i1, i2 := mesh.Indices[i*3], mesh.Indices[i*3+1], mesh.Indices[i*3+2]
		count := len(mesh.Vertices)
		if i0 < 0 || i0 >= count || i1 < 0 || i1 >= count || i2 < 0 || i2 >= count {
			return mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, false
		}
		return mesh.Vertices[i0], mesh.Vertices[i1], mesh.Vertices[i2], true
	}
	return mesh.Vertices[i*3], mesh.Vertices[i*3+1], mesh.Vertices[i*3+2], true
}

// toR3 はmathglベクトルをgonumベクトルへ変換する。
func toR3(v mgl64.Vec3) r3.Vec {
	return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}
}
