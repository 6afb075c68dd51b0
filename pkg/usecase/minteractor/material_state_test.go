// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

const appearanceTolerance = 1e-12

func TestRepaintEmptySetRestoresBaseExactly(t *testing.T) {
	mesh := newPaintedMesh("Femur")
	captured := mesh.BaseAppearance()

	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{"femur": {}})
	if mesh.CurrentState != model.MeshStateSelected {
		t.Fatalf("unexpected state: %s", mesh.CurrentState)
	}
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{})
	if mesh.CurrentState != model.MeshStateBase {
		t.Fatalf("unexpected state: %s", mesh.CurrentState)
	}
	assertAppearanceEqual(t, captured, mesh.Appearance)
}

func TestRepaintAssignsExactlyOneState(t *testing.T) {
	selected := newPaintedMesh("Femur")
	dimmed := newPaintedMesh("Tibia")
	meshes := []*model.MeshEntity{selected, dimmed}

	RepaintMeshes(meshes, map[model.CanonicalKey]struct{}{"femur": {}})
	if selected.CurrentState != model.MeshStateSelected {
		t.Fatalf("unexpected state: %s", selected.CurrentState)
	}
	if dimmed.CurrentState != model.MeshStateDimmed {
		t.Fatalf("unexpected state: %s", dimmed.CurrentState)
	}
}

func TestSelectedStateProperties(t *testing.T) {
	mesh := newPaintedMesh("Femur")
	base := mesh.BaseAppearance()
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{"femur": {}})

	if mesh.Appearance.Color != base.Color {
		t.Fatalf("selected should keep base color: %v", mesh.Appearance.Color)
	}
	if mesh.Appearance.Emissive == (mgl64.Vec3{}) {
		t.Fatalf("selected should have highlight emissive")
	}
	if mesh.Appearance.Opacity != 1 || mesh.Appearance.Transparent {
		t.Fatalf("selected should be fully opaque")
	}
	if !mesh.Appearance.DepthWrite || !mesh.Appearance.DepthTest {
		t.Fatalf("selected should write and test depth")
	}
	if mesh.Appearance.DrawOrder <= base.DrawOrder {
		t.Fatalf("selected should raise draw order: %d", mesh.Appearance.DrawOrder)
	}
}

func TestDimmedStateProperties(t *testing.T) {
	mesh := newPaintedMesh("Tibia")
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{"femur": {}})

	if mesh.Appearance.Emissive != (mgl64.Vec3{}) {
		t.Fatalf("dimmed should zero emissive")
	}
	if !mesh.Appearance.Transparent || mesh.Appearance.Opacity >= 0.5 {
		t.Fatalf("dimmed should be near-transparent: %v", mesh.Appearance.Opacity)
	}
	if mesh.Appearance.DepthWrite {
		t.Fatalf("dimmed should not write depth")
	}
	if !mesh.Appearance.DepthTest {
		t.Fatalf("dimmed should keep depth test")
	}
}

func TestRepaintComputesFromBaseNotPreviousState(t *testing.T) {
	mesh := newPaintedMesh("Femur")
	captured := mesh.BaseAppearance()

	// Dimmed → Selected → Base の往復でも基準値へ厳密に戻る。
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{"tibia": {}})
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{"femur": {}})
	RepaintMeshes([]*model.MeshEntity{mesh}, map[model.CanonicalKey]struct{}{})
	assertAppearanceEqual(t, captured, mesh.Appearance)
}

func TestRepaintSkipsReleasedAndUnkeyedSelection(t *testing.T) {
	released := newPaintedMesh("Femur")
	released.Release()
	unnamed := newPaintedMesh("")
	RepaintMeshes([]*model.MeshEntity{released, unnamed}, map[model.CanonicalKey]struct{}{"femur": {}, "": {}})
	// 名前なしメッシュは選択集合が空キーを含んでも選択扱いにならない。
	if unnamed.CurrentState != model.MeshStateDimmed {
		t.Fatalf("unnamed mesh should dim: %s", unnamed.CurrentState)
	}
}

// newPaintedMesh は基準スナップショット記録済みのテスト用メッシュを生成する。
func newPaintedMesh(rawName string) *model.MeshEntity {
	mesh := &model.MeshEntity{
		RawName: rawName,
		PartKey: model.Normalize(rawName),
		Appearance: model.Appearance{
			Color:      mgl64.Vec4{0.82, 0.76, 0.68, 1},
			Emissive:   mgl64.Vec3{0.01, 0.01, 0.01},
			Opacity:    0.97,
			DepthWrite: true,
			DepthTest:  true,
			DrawOrder:  1,
		},
	}
	_ = mesh.CaptureBaseAppearance()
	return mesh
}

// assertAppearanceEqual は外観が許容誤差内で一致することを検証する。
func assertAppearanceEqual(t *testing.T, want, got model.Appearance) {
	t.Helper()
	for i := 0; i < 4; i++ {
		if math.Abs(want.Color[i]-got.Color[i]) > appearanceTolerance {
			t.Fatalf("color mismatch: want=%v got=%v", want.Color, got.Color)
		}
	}
	for i := 0; i < 3; i++ {
		if math.Abs(want.Emissive[i]-got.Emissive[i]) > appearanceTolerance {
			t.Fatalf("emissive mismatch: want=%v got=%v", want.Emissive, got.Emissive)
		}
	}
	if math.Abs(want.Opacity-got.Opacity) > appearanceTolerance {
		t.Fatalf("opacity mismatch: want=%v got=%v", want.Opacity, got.Opacity)
	}
	if want.Transparent != got.Transparent || want.DepthWrite != got.DepthWrite || want.DepthTest != got.DepthTest {
		t.Fatalf("flags mismatch: want=%+v got=%+v", want, got)
	}
	if want.DrawOrder != got.DrawOrder {
		t.Fatalf("draw order mismatch: want=%d got=%d", want.DrawOrder, got.DrawOrder)
	}
}
