// 指示: miu200521358
// Package messages はUI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	HelpUsageTitle = "使い方"
	HelpUsage      = "使い方説明"

	LabelSystem       = "系統"
	LabelSystemTip    = "系統説明"
	LabelSearch       = "部位検索"
	LabelSearchTip    = "部位検索説明"
	LabelGroupList    = "グループ一覧"
	LabelGroupListTip = "グループ一覧説明"
	LabelClear        = "選択解除"
	LabelClearTip     = "選択解除説明"

	MessageSwitchFailed   = "系統切替失敗"
	MessageLoadFailed     = "読み込み失敗"
	MessageUnknownSystem  = "未知の系統キーです"
	MessageSystemRequired = "系統を選択してください"

	LogSwitchSuccess = "系統切替成功: %s"
	LogSelectToggled = "選択切替: %s"
)
