// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

// SwitchResult は系統切替1回分の完了結果を表す。
// 切替中に新しい切替が発行された場合はSupersededが真となり、状態へは一切反映されない。
type SwitchResult struct {
	SystemKey   string
	Superseded  bool
	MetadataErr error
	ModelErr    error
}

// Failed はユーザーへ提示すべき失敗を含むかどうかを返す。
func (r SwitchResult) Failed() bool {
	return r.MetadataErr != nil || r.ModelErr != nil
}

// switchState は進行中の系統切替1回分の進捗を表す。
type switchState struct {
	token       uint64
	system      model.AnatomicalSystem
	result      chan<- SwitchResult
	pending     int
	superseded  bool
	metadataErr error
	modelErr    error
}

// SwitchSystem は表示系統を切り替える。カタログ未登録キーは入出力前に同期エラーとする。
// メタデータ取得とモデル読込は並行に発行され、完了時のトークン照合で古い結果を破棄する。
func (uc *AnatomyViewerUsecase) SwitchSystem(key string) (<-chan SwitchResult, error) {
	system, ok := uc.catalog.Find(key)
	if !ok {
		return nil, fmt.Errorf("未知の系統キーです: %s", key)
	}
	result := make(chan SwitchResult, 1)
	uc.post(func() {
		uc.beginSwitch(system, result)
	})
	return result, nil
}

// beginSwitch はループ上で切替を開始する。
func (uc *AnatomyViewerUsecase) beginSwitch(system model.AnatomicalSystem, result chan<- SwitchResult) {
	uc.loadToken++
	state := &switchState{
		token:   uc.loadToken,
		system:  system,
		result:  result,
		pending: 2,
	}
	uc.logger.Info("系統切替開始: system=%s token=%d", system.Key, state.token)

	// 選択は系統スコープのため、読込を待たず即時に解除する。
	uc.selection.Clear()
	uc.repaint()

	go uc.fetchMetadata(state)
	go uc.loadModel(state)
}

// fetchMetadata はメタデータを取得し、結果をループへ戻す。
func (uc *AnatomyViewerUsecase) fetchMetadata(state *switchState) {
	if uc.metadataReader == nil {
		uc.post(func() {
			uc.applyMetadata(state, nil, fmt.Errorf("メタデータ読み込みリポジトリが設定されていません"))
		})
		return
	}
	metadata, err := uc.metadataReader.Load(state.system.MetadataPath)
	uc.post(func() {
		uc.applyMetadata(state, metadata, err)
	})
}

// loadModel はモデルアセットを読み込み、結果をループへ戻す。
func (uc *AnatomyViewerUsecase) loadModel(state *switchState) {
	if uc.modelReader == nil {
		uc.post(func() {
			uc.applyModel(state, nil, fmt.Errorf("モデル読み込みリポジトリが設定されていません"))
		})
		return
	}
	primitives, err := uc.modelReader.Load(state.system.ModelAssetPath)
	uc.post(func() {
		uc.applyModel(state, primitives, err)
	})
}

// applyMetadata はループ上でメタデータ取得結果を反映する。
// トークンが古い場合は正常な結果として黙って破棄する。
func (uc *AnatomyViewerUsecase) applyMetadata(state *switchState, metadata model.SystemMetadata, err error) {
	state.pending--
	if uc.loadToken != state.token {
		state.superseded = true
		uc.logger.Debug("系統切替破棄(メタデータ): system=%s token=%d", state.system.Key, state.token)
		uc.finishSwitch(state)
		return
	}
	if err != nil {
		state.metadataErr = err
		uc.logger.Error("メタデータ取得失敗: system=%s: %s", state.system.Key, err.Error())
		uc.finishSwitch(state)
		return
	}

	uc.groupIndex = BuildGroupIndex(metadata)
	uc.logger.Info("グループ索引再構築: system=%s groups=%d", state.system.Key, len(uc.groupIndex))
	if uc.onGroupsRebuilt != nil {
		uc.onGroupsRebuilt(uc.filterGroupsLocked(""))
	}
	uc.finishSwitch(state)
}

// applyModel はループ上でモデル読込結果を反映する。
// トークンが古い場合は読み込んだリソースを解放した上で破棄する。
func (uc *AnatomyViewerUsecase) applyModel(state *switchState, primitives []*model.MeshEntity, err error) {
	state.pending--
	if uc.loadToken != state.token {
		state.superseded = true
		for _, primitive := range primitives {
			primitive.Release()
		}
		uc.logger.Debug("系統切替破棄(モデル): system=%s token=%d released=%d", state.system.Key, state.token, len(primitives))
		uc.finishSwitch(state)
		return
	}
	if err != nil {
		state.modelErr = err
		uc.logger.Error("モデル読込失敗: system=%s: %s", state.system.Key, err.Error())
		uc.finishSwitch(state)
		return
	}

	uc.releaseActiveModel()
	uc.meshes, uc.meshIndex = BuildMeshIndex(state.system.Key, primitives)
	uc.activeSystem = state.system.Key
	uc.repaint()
	uc.logger.Info("モデル読込完了: system=%s meshes=%d keys=%d", state.system.Key, len(uc.meshes), len(uc.meshIndex))
	uc.finishSwitch(state)
}

// finishSwitch は両方の非同期結果が処理された時点で完了を通知する。
func (uc *AnatomyViewerUsecase) finishSwitch(state *switchState) {
	if state.pending > 0 {
		return
	}
	result := SwitchResult{
		SystemKey:   state.system.Key,
		Superseded:  state.superseded,
		MetadataErr: state.metadataErr,
		ModelErr:    state.modelErr,
	}
	state.result <- result
	close(state.result)
	uc.logger.Info(
		"系統切替完了: system=%s token=%d superseded=%t failed=%t",
		state.system.Key, state.token, result.Superseded, result.Failed(),
	)
}
