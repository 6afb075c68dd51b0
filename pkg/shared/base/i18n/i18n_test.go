// 指示: miu200521358
package i18n

import "testing"

func TestMapI18nTranslate(t *testing.T) {
	translator := NewMapI18n(map[string]string{"系統": "System"})
	if value, ok := translator.Translate("系統"); !ok || value != "System" {
		t.Fatalf("unexpected translation: %s (%v)", value, ok)
	}
	if _, ok := translator.Translate("未登録"); ok {
		t.Fatalf("unknown key should not translate")
	}
}

func TestMapI18nCopiesEntries(t *testing.T) {
	source := map[string]string{"系統": "System"}
	translator := NewMapI18n(source)
	source["系統"] = "changed"
	if value, _ := translator.Translate("系統"); value != "System" {
		t.Fatalf("entries should be copied at construction: %s", value)
	}
}

func TestTranslateOrMark(t *testing.T) {
	translator := NewMapI18n(map[string]string{"系統": "System"})
	if got := TranslateOrMark(translator, "系統"); got != "System" {
		t.Fatalf("unexpected value: %s", got)
	}
	if got := TranslateOrMark(translator, "未登録"); got != "未登録" {
		t.Fatalf("unknown key should fall through: %s", got)
	}
	if got := TranslateOrMark(nil, "系統"); got != "系統" {
		t.Fatalf("nil translator should fall through: %s", got)
	}
}
