//go:build windows
// +build windows

// 指示: miu200521358
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_meta"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_model/anatomy"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/infra/controller/ui"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/infra/userconfig"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/minteractor"
)

// main は解剖ビューアのコントロールウィンドウを起動する。
func main() {
	if err := runWindow(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runWindow はウィンドウ実行全体を行う。
func runWindow(args []string) error {
	flags := flag.NewFlagSet("mu_anatomy_viewer", flag.ContinueOnError)
	configPath := flags.String("config", "mu_anatomy_viewer.toml", "利用者設定TOMLのパス")
	assetRoot := flags.String("assets", "", "アセットルートディレクトリ(未指定時は設定ファイルに従う)")
	debug := flags.Bool("debug", false, "デバッグログを有効にする")
	if err := flags.Parse(args); err != nil {
		return err
	}
	config, err := userconfig.Load(*configPath)
	if err != nil {
		return err
	}
	root := *assetRoot
	if root == "" {
		root = config.AssetRoot
	}
	logging.SetDefaultLogger(logging.NewStdLogger(*debug || config.Debug))

	usecase := minteractor.NewAnatomyViewerUsecase(minteractor.AnatomyViewerUsecaseDeps{
		Catalog:        model.NewDefaultSystemCatalog(root),
		MetadataReader: io_meta.NewMetadataRepository(),
		ModelReader:    anatomy.NewAnatomyModelRepository(),
		FilterLimit:    config.FilterLimit,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go usecase.Run(ctx)

	window := ui.NewControlWindow(ui.ControlWindowDeps{
		Usecase:        usecase,
		Logger:         logging.DefaultLogger(),
		UserConfig:     config,
		UserConfigPath: *configPath,
	})
	return window.Run()
}
