// 指示: miu200521358
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_meta"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_model/anatomy"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/minteractor"
)

// batchConfig はバッチ検証の実行設定を表す。
type batchConfig struct {
	AssetRoot string
	DryRun    bool
	FailFast  bool
}

// main は全系統に対する読込・選択シナリオを一括検証する。
func main() {
	config := parseBatchConfig()
	if err := runBatch(config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseBatchConfig はCLI引数からバッチ設定を構築する。
func parseBatchConfig() batchConfig {
	config := batchConfig{}
	flag.StringVar(&config.AssetRoot, "assets", "assets", "アセットルートディレクトリ")
	flag.BoolVar(&config.DryRun, "dry-run", false, "対象系統の列挙のみ行う")
	flag.BoolVar(&config.FailFast, "fail-fast", false, "最初の失敗で打ち切る")
	flag.Parse()
	return config
}

// runBatch は系統ごとのシナリオを順に実行する。
func runBatch(config batchConfig) error {
	catalog := model.NewDefaultSystemCatalog(config.AssetRoot)
	usecase := minteractor.NewAnatomyViewerUsecase(minteractor.AnatomyViewerUsecaseDeps{
		Catalog:        catalog,
		MetadataReader: io_meta.NewMetadataRepository(),
		ModelReader:    anatomy.NewAnatomyModelRepository(),
		Logger:         logging.DefaultLogger(),
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go usecase.Run(ctx)

	failures := make([]string, 0)
	for _, system := range catalog.Systems() {
		fmt.Printf("[batch] 系統: %s (%s)\n", system.Key, system.DisplayLabel)
		if config.DryRun {
			continue
		}
		if err := runSystemScenario(usecase, system); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", system.Key, err.Error()))
			fmt.Printf("[batch]   失敗: %s\n", err.Error())
			if config.FailFast {
				break
			}
			continue
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("バッチ検証に失敗した系統があります:\n  %s", strings.Join(failures, "\n  "))
	}
	return nil
}

// runSystemScenario は1系統分の読込→選択→解除シナリオを実行する。
func runSystemScenario(usecase *minteractor.AnatomyViewerUsecase, system model.AnatomicalSystem) error {
	started := time.Now()
	result, err := usecase.SwitchSystem(system.Key)
	if err != nil {
		return err
	}
	switchResult := <-result
	if switchResult.Superseded {
		return fmt.Errorf("系統切替が追い越されました")
	}
	if switchResult.MetadataErr != nil {
		return fmt.Errorf("メタデータ取得に失敗しました: %w", switchResult.MetadataErr)
	}
	if switchResult.ModelErr != nil {
		return fmt.Errorf("モデル読込に失敗しました: %w", switchResult.ModelErr)
	}
	loadElapsed := time.Since(started)

	groups := usecase.FilterGroups("")
	snapshot := usecase.Snapshot()
	fmt.Printf(
		"[batch]   読込完了: groups=%d meshes=%d elapsed=%s\n",
		snapshot.GroupCount, snapshot.MeshCount, loadElapsed,
	)

	if len(groups) > 0 {
		usecase.ToggleSelection(groups[0].Key)
		selected := usecase.Snapshot()
		fmt.Printf(
			"[batch]   選択確認: key=%s selected_mesh=%d dimmed=%d\n",
			groups[0].Key,
			selected.StateCounts[model.MeshStateSelected],
			selected.StateCounts[model.MeshStateDimmed],
		)
		if selected.StateCounts[model.MeshStateSelected] == 0 && snapshot.MeshCount > 0 {
			return fmt.Errorf("選択状態のメッシュがありません: key=%s", groups[0].Key)
		}
	}

	usecase.ClearSelection()
	cleared := usecase.Snapshot()
	if cleared.MeshCount > 0 && cleared.StateCounts[model.MeshStateBase] != cleared.MeshCount {
		return fmt.Errorf(
			"選択解除後に基準状態へ戻っていません: base=%d total=%d",
			cleared.StateCounts[model.MeshStateBase], cleared.MeshCount,
		)
	}
	return nil
}
