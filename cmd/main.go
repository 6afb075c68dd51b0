//go:build !windows
// +build !windows

// 指示: miu200521358
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_meta"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_model/anatomy"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/infra/userconfig"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/minteractor"
)

// options はCLI引数を保持する。
type options struct {
	assetRoot  string
	configPath string
	systemKey  string
	selectKeys string
	filterText string
	debug      bool
}

// main は解剖ビューアのコンソール実行を行う。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}
	config, err := userconfig.Load(opts.configPath)
	if err != nil {
		return err
	}
	assetRoot, debug := resolveRuntimeOptions(opts, config)
	logging.SetDefaultLogger(logging.NewStdLogger(debug))

	usecase := minteractor.NewAnatomyViewerUsecase(minteractor.AnatomyViewerUsecaseDeps{
		Catalog:        model.NewDefaultSystemCatalog(assetRoot),
		MetadataReader: io_meta.NewMetadataRepository(),
		ModelReader:    anatomy.NewAnatomyModelRepository(),
		FilterLimit:    config.FilterLimit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go usecase.Run(ctx)

	fmt.Fprintf(out, "[mu_anatomy_viewer] 系統切替開始: %s\n", opts.systemKey)
	result, err := usecase.SwitchSystem(opts.systemKey)
	if err != nil {
		return err
	}
	switchResult := <-result
	if switchResult.MetadataErr != nil {
		return fmt.Errorf("メタデータ取得に失敗しました: %w", switchResult.MetadataErr)
	}
	if switchResult.ModelErr != nil {
		return fmt.Errorf("モデル読込に失敗しました: %w", switchResult.ModelErr)
	}
	fmt.Fprintf(out, "[mu_anatomy_viewer] 系統切替完了: %s\n", switchResult.SystemKey)

	for _, rawKey := range splitSelectKeys(opts.selectKeys) {
		usecase.ToggleSelection(model.Normalize(rawKey))
	}

	if opts.filterText != "" {
		for _, group := range usecase.FilterGroups(opts.filterText) {
			fmt.Fprintf(out, "  %s\t%s\n", group.Key, group.DisplayName)
		}
	}

	snapshot := usecase.Snapshot()
	fmt.Fprintf(
		out,
		"[mu_anatomy_viewer] groups=%d meshes=%d selected=%d base=%d dimmed=%d selected_mesh=%d\n",
		snapshot.GroupCount,
		snapshot.MeshCount,
		len(snapshot.SelectedKeys),
		snapshot.StateCounts[model.MeshStateBase],
		snapshot.StateCounts[model.MeshStateDimmed],
		snapshot.StateCounts[model.MeshStateSelected],
	)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	flags := flag.NewFlagSet("mu_anatomy_viewer", flag.ContinueOnError)
	flags.SetOutput(errOut)

	opts := options{}
	flags.StringVar(&opts.assetRoot, "assets", "", "アセットルートディレクトリ(未指定時は設定ファイルに従う)")
	flags.StringVar(&opts.configPath, "config", "mu_anatomy_viewer.toml", "利用者設定TOMLのパス")
	flags.StringVar(&opts.systemKey, "system", "bones", "表示する系統キー")
	flags.StringVar(&opts.selectKeys, "select", "", "カンマ区切りの選択グループキー")
	flags.StringVar(&opts.filterText, "filter", "", "グループ検索文字列")
	flags.BoolVar(&opts.debug, "debug", false, "デバッグログを有効にする")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}

	if rest := flags.Args(); len(rest) > 0 && opts.systemKey == "bones" {
		opts.systemKey = rest[0]
	}
	if strings.TrimSpace(opts.systemKey) == "" {
		return options{}, fmt.Errorf("系統キーが未指定です")
	}
	return opts, nil
}

// resolveRuntimeOptions はCLI引数と設定ファイルから実効値を決定する。
// アセットルートは引数指定が優先、デバッグは引数と設定のいずれかが真なら有効。
func resolveRuntimeOptions(opts options, config userconfig.UserConfig) (assetRoot string, debug bool) {
	assetRoot = opts.assetRoot
	if assetRoot == "" {
		assetRoot = config.AssetRoot
	}
	return assetRoot, opts.debug || config.Debug
}

// splitSelectKeys はカンマ区切りの選択キー指定を分解する。
func splitSelectKeys(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}
