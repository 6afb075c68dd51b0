// 指示: miu200521358
package messages

import "testing"

func TestMessageKeysAreUnique(t *testing.T) {
	keys := []string{
		HelpUsageTitle,
		HelpUsage,
		LabelSystem,
		LabelSystemTip,
		LabelSearch,
		LabelSearchTip,
		LabelGroupList,
		LabelGroupListTip,
		LabelClear,
		LabelClearTip,
		MessageSwitchFailed,
		MessageLoadFailed,
		MessageUnknownSystem,
		MessageSystemRequired,
		LogSwitchSuccess,
		LogSelectToggled,
	}

	seen := map[string]bool{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("empty message key")
		}
		if seen[key] {
			t.Fatalf("duplicated message key: %s", key)
		}
		seen[key] = true
	}
}
