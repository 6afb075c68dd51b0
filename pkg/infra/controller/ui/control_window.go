//go:build windows
// +build windows

// 指示: miu200521358
package ui

import (
	"fmt"

	"github.com/miu200521358/walk/pkg/declarative"
	"github.com/miu200521358/walk/pkg/walk"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/infra/userconfig"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/i18n"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/usecase/minteractor"
)

const (
	windowMinWidth  = 480
	windowMinHeight = 640
)

// ControlWindowDeps はコントロールウィンドウの依存を表す。
type ControlWindowDeps struct {
	Usecase        *minteractor.AnatomyViewerUsecase
	Translator     i18n.II18n
	Logger         logging.ILogger
	UserConfig     userconfig.UserConfig
	UserConfigPath string
}

// ControlWindow は系統選択・検索・グループ選択のコントロールウィンドウを表す。
type ControlWindow struct {
	deps ControlWindowDeps

	mainWindow *walk.MainWindow
	systemBox  *walk.ComboBox
	searchEdit *walk.LineEdit
	groupList  *walk.ListBox
	statusText *walk.TextLabel

	listedGroups []minteractor.GroupSummary
}

// NewControlWindow はコントロールウィンドウを生成する。
func NewControlWindow(deps ControlWindowDeps) *ControlWindow {
	if deps.Logger == nil {
		deps.Logger = logging.DefaultLogger()
	}
	return &ControlWindow{deps: deps}
}

// Run はウィンドウを表示し、閉じられるまで実行する。
func (w *ControlWindow) Run() error {
	usecase := w.deps.Usecase
	if usecase == nil {
		return fmt.Errorf("ビューアユースケースが設定されていません")
	}
	translator := w.deps.Translator

	systems := usecase.Catalog().Systems()
	systemLabels := make([]string, 0, len(systems))
	for _, system := range systems {
		systemLabels = append(systemLabels, system.DisplayLabel)
	}

	window := declarative.MainWindow{
		AssignTo: &w.mainWindow,
		Title:    "mu_anatomy_viewer",
		MinSize:  declarative.Size{Width: windowMinWidth, Height: windowMinHeight},
		Layout:   declarative.VBox{},
		MenuItems: NewMenuItems(translator, w.deps.Logger, func() *walk.MainWindow {
			return w.mainWindow
		}),
		Children: []declarative.Widget{
			declarative.TextLabel{Text: i18n.TranslateOrMark(translator, messages.LabelSystem)},
			declarative.ComboBox{
				AssignTo: &w.systemBox,
				Model:    systemLabels,
				OnCurrentIndexChanged: func() {
					index := w.systemBox.CurrentIndex()
					if index < 0 || index >= len(systems) {
						return
					}
					w.switchSystem(systems[index])
				},
			},
			declarative.TextLabel{Text: i18n.TranslateOrMark(translator, messages.LabelSearch)},
			declarative.LineEdit{
				AssignTo: &w.searchEdit,
				OnTextChanged: func() {
					w.refreshGroupList(w.searchEdit.Text())
				},
			},
			declarative.TextLabel{Text: i18n.TranslateOrMark(translator, messages.LabelGroupList)},
			declarative.ListBox{
				AssignTo: &w.groupList,
				OnItemActivated: func() {
					index := w.groupList.CurrentIndex()
					if index < 0 || index >= len(w.listedGroups) {
						return
					}
					usecase.ToggleSelection(w.listedGroups[index].Key)
					w.updateStatus()
				},
			},
			declarative.PushButton{
				Text: i18n.TranslateOrMark(translator, messages.LabelClear),
				OnClicked: func() {
					usecase.ClearSelection()
					w.updateStatus()
				},
			},
			declarative.VSeparator{},
			declarative.TextLabel{AssignTo: &w.statusText, Text: ""},
		},
	}

	if _, err := window.Run(); err != nil {
		return fmt.Errorf("コントロールウィンドウの実行に失敗しました: %w", err)
	}
	return nil
}

// switchSystem は系統切替を発行し、完了をUIスレッドへ反映する。
func (w *ControlWindow) switchSystem(system model.AnatomicalSystem) {
	usecase := w.deps.Usecase
	translator := w.deps.Translator

	result, err := usecase.SwitchSystem(system.Key)
	if err != nil {
		w.deps.Logger.Error("%s: %s", i18n.TranslateOrMark(translator, messages.MessageSwitchFailed), err.Error())
		return
	}
	go func() {
		switchResult := <-result
		w.mainWindow.Synchronize(func() {
			if switchResult.Superseded {
				return
			}
			if switchResult.Failed() {
				w.deps.Logger.Error(
					"%s: metadata=%v model=%v",
					i18n.TranslateOrMark(translator, messages.MessageLoadFailed),
					switchResult.MetadataErr, switchResult.ModelErr,
				)
				return
			}
			w.deps.Logger.Info(i18n.TranslateOrMark(translator, messages.LogSwitchSuccess), system.Key)
			w.saveRecentSystem(system.Key)
			w.refreshGroupList(w.searchEdit.Text())
			w.updateStatus()
		})
	}()
}

// refreshGroupList は検索文字列でグループ一覧を更新する。
func (w *ControlWindow) refreshGroupList(query string) {
	w.listedGroups = w.deps.Usecase.FilterGroups(query)
	labels := make([]string, 0, len(w.listedGroups))
	for _, group := range w.listedGroups {
		labels = append(labels, group.DisplayName)
	}
	if err := w.groupList.SetModel(labels); err != nil {
		w.deps.Logger.Warn("グループ一覧の更新に失敗しました: %s", err.Error())
	}
}

// updateStatus は現在状態をステータス行へ反映する。
func (w *ControlWindow) updateStatus() {
	snapshot := w.deps.Usecase.Snapshot()
	w.statusText.SetText(fmt.Sprintf(
		"system=%s groups=%d meshes=%d selected=%d",
		snapshot.ActiveSystem, snapshot.GroupCount, snapshot.MeshCount, len(snapshot.SelectedKeys),
	))
}

// saveRecentSystem は系統履歴を設定ファイルへ保存する。
func (w *ControlWindow) saveRecentSystem(key string) {
	if w.deps.UserConfigPath == "" {
		return
	}
	w.deps.UserConfig.PushRecentSystem(key, userconfig.DefaultRecentSystemLimit)
	if err := userconfig.Save(w.deps.UserConfigPath, w.deps.UserConfig); err != nil {
		w.deps.Logger.Warn("設定保存に失敗しました: %s", err.Error())
	}
}
