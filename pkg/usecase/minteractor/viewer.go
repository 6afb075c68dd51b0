// 指示: miu200521358
package minteractor

import (
	"context"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/port/moutput"
)

// DefaultFilterLimit はグループ検索結果の既定上限件数。
const DefaultFilterLimit = 50

// commandQueueCapacity は単一オーナーループへ積むコマンドの既定容量。
const commandQueueCapacity = 64

// AnatomyViewerUsecaseDeps は解剖ビューアユースケースの依存を表す。
type AnatomyViewerUsecaseDeps struct {
	Catalog         *model.SystemCatalog
	MetadataReader  moutput.IMetadataReader
	ModelReader     moutput.IModelReader
	Logger          logging.ILogger
	FilterLimit     int
	OnGroupsRebuilt func(groups []GroupSummary)
}

// AnatomyViewerUsecase は選択索引・材質状態・読込調停をまとめたビューア中核を表す。
// 可変状態はすべてRunループのゴルーチンだけが触れる。
type AnatomyViewerUsecase struct {
	catalog         *model.SystemCatalog
	metadataReader  moutput.IMetadataReader
	modelReader     moutput.IModelReader
	logger          logging.ILogger
	filterLimit     int
	onGroupsRebuilt func(groups []GroupSummary)

	commands chan func()

	// 以下はRunループ占有の可変状態。
	loadToken    uint64
	activeSystem string
	groupIndex   map[model.CanonicalKey]*model.Group
	meshes       []*model.MeshEntity
	meshIndex    map[model.CanonicalKey][]*model.MeshEntity
	selection    *SelectionState
}

// ViewerSnapshot は現在状態の読み取り専用ビューを表す。
type ViewerSnapshot struct {
	ActiveSystem string
	SelectedKeys []model.CanonicalKey
	GroupCount   int
	MeshCount    int
	StateCounts  map[model.MeshState]int
}

// NewAnatomyViewerUsecase は解剖ビューアユースケースを生成する。
func NewAnatomyViewerUsecase(deps AnatomyViewerUsecaseDeps) *AnatomyViewerUsecase {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = model.NewDefaultSystemCatalog("assets")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	filterLimit := deps.FilterLimit
	if filterLimit <= 0 {
		filterLimit = DefaultFilterLimit
	}
	return &AnatomyViewerUsecase{
		catalog:         catalog,
		metadataReader:  deps.MetadataReader,
		modelReader:     deps.ModelReader,
		logger:          logger,
		filterLimit:     filterLimit,
		onGroupsRebuilt: deps.OnGroupsRebuilt,
		commands:        make(chan func(), commandQueueCapacity),
		groupIndex:      map[model.CanonicalKey]*model.Group{},
		meshIndex:       map[model.CanonicalKey][]*model.MeshEntity{},
		selection:       NewSelectionState(),
	}
}

// Run はコマンドループを実行する。全状態変更はこのループ上でのみ行われる。
// ctxの取り消しで停止し、保持中のモデルリソースを解放する。
func (uc *AnatomyViewerUsecase) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			uc.releaseActiveModel()
			return
		case command := <-uc.commands:
			command()
		}
	}
}

// post はコマンドをループへ積む。Run実行中であることが前提。
func (uc *AnatomyViewerUsecase) post(command func()) {
	uc.commands <- command
}

// call はコマンドをループ上で実行し、完了まで待つ。
func (uc *AnatomyViewerUsecase) call(command func()) {
	done := make(chan struct{})
	uc.post(func() {
		defer close(done)
		command()
	})
	<-done
}

// Catalog は系統カタログを返す。
func (uc *AnatomyViewerUsecase) Catalog() *model.SystemCatalog {
	return uc.catalog
}

// ToggleSelection はグループキーの選択を反転し、再描画する。
func (uc *AnatomyViewerUsecase) ToggleSelection(key model.CanonicalKey) {
	if key == "" {
		return
	}
	uc.call(func() {
		uc.toggleAndRepaint(key)
	})
}

// ClearSelection は選択を全解除し、再描画する。
func (uc *AnatomyViewerUsecase) ClearSelection() {
	uc.call(func() {
		uc.selection.Clear()
		uc.repaint()
	})
}

// Snapshot は現在状態の読み取りビューを返す。
func (uc *AnatomyViewerUsecase) Snapshot() ViewerSnapshot {
	var snapshot ViewerSnapshot
	uc.call(func() {
		snapshot = ViewerSnapshot{
			ActiveSystem: uc.activeSystem,
			SelectedKeys: uc.selection.Keys(),
			GroupCount:   len(uc.groupIndex),
			MeshCount:    len(uc.meshes),
			StateCounts:  map[model.MeshState]int{},
		}
		for _, mesh := range uc.meshes {
			if mesh == nil {
				continue
			}
			snapshot.StateCounts[mesh.CurrentState]++
		}
	})
	return snapshot
}

// toggleAndRepaint はループ上で選択反転と再描画を行う。
func (uc *AnatomyViewerUsecase) toggleAndRepaint(key model.CanonicalKey) {
	selected := uc.selection.Toggle(key)
	uc.logger.Debug("選択トグル: key=%s selected=%t", key, selected)
	uc.repaint()
}

// repaint は現在の選択を展開し、全メッシュの描画状態を再計算する。
func (uc *AnatomyViewerUsecase) repaint() {
	expanded := uc.selection.Expand(uc.groupIndex)
	RepaintMeshes(uc.meshes, expanded)
}

// releaseActiveModel は現在モデルの全リソースを解放する。
func (uc *AnatomyViewerUsecase) releaseActiveModel() {
	for _, mesh := range uc.meshes {
		mesh.Release()
	}
	uc.meshes = nil
	uc.meshIndex = map[model.CanonicalKey][]*model.MeshEntity{}
}
