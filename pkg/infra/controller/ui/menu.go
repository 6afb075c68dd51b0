//go:build windows
// +build windows

// 指示: miu200521358
package ui

import (
	"github.com/miu200521358/walk/pkg/declarative"
	"github.com/miu200521358/walk/pkg/walk"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/i18n"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
)

// menuMessageItem はメニュー1項目のタイトルと本文のキー対を表す。
type menuMessageItem struct {
	TitleKey   string
	MessageKey string
}

// NewMenuItems はヘルプメニュー項目を生成する。
func NewMenuItems(translator i18n.II18n, logger logging.ILogger, owner func() *walk.MainWindow) []declarative.MenuItem {
	items := []menuMessageItem{
		{TitleKey: messages.HelpUsageTitle, MessageKey: messages.HelpUsage},
		{TitleKey: messages.LabelSystem, MessageKey: messages.LabelSystemTip},
		{TitleKey: messages.LabelSearch, MessageKey: messages.LabelSearchTip},
		{TitleKey: messages.LabelGroupList, MessageKey: messages.LabelGroupListTip},
		{TitleKey: messages.LabelClear, MessageKey: messages.LabelClearTip},
	}

	actions := make([]declarative.MenuItem, 0, len(items))
	for _, item := range items {
		title := i18n.TranslateOrMark(translator, item.TitleKey)
		message := i18n.TranslateOrMark(translator, item.MessageKey)
		actions = append(actions, declarative.Action{
			Text: title,
			OnTriggered: func() {
				if owner == nil || owner() == nil {
					if logger != nil {
						logger.Info("%s: %s", title, message)
					}
					return
				}
				walk.MsgBox(owner(), title, message, walk.MsgBoxIconInformation)
			},
		})
	}

	return []declarative.MenuItem{
		declarative.Menu{
			Text:  i18n.TranslateOrMark(translator, messages.HelpUsageTitle),
			Items: actions,
		},
	}
}
