// 指示: miu200521358
// Package i18n はUI文言の翻訳契約を提供する。
package i18n

// II18n は翻訳契約を表す。
type II18n interface {
	Translate(key string) (string, bool)
}

// MapI18n はメモリ上の対訳表によるII18n実装を表す。
type MapI18n struct {
	entries map[string]string
}

// NewMapI18n は対訳表からMapI18nを生成する。
func NewMapI18n(entries map[string]string) *MapI18n {
	copied := make(map[string]string, len(entries))
	for key, value := range entries {
		copied[key] = value
	}
	return &MapI18n{entries: copied}
}

// Translate はキーに対応する訳文を返す。
func (m *MapI18n) Translate(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	value, ok := m.entries[key]
	return value, ok
}

// TranslateOrMark は訳文を返し、未定義ならキーをそのまま返す。
func TranslateOrMark(translator II18n, key string) string {
	if translator != nil {
		if value, ok := translator.Translate(key); ok {
			return value
		}
	}
	return key
}
