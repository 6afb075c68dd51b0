// 指示: miu200521358
package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CanonicalKey は正規化済みの部位識別キーを表す。
type CanonicalKey string

// keySeparator は非英数字の連続を置き換える区切り文字。
const keySeparator = '_'

// exporterSuffixes はエクスポータが付与する末尾サフィックス一覧。
var exporterSuffixes = []string{"model", "geometry"}

// Normalize は素材名やメタデータ名を正規化キーへ変換する。
// 正規化不能な入力は空キーを返し、呼び出し側は索引から除外する。
func Normalize(raw string) CanonicalKey {
	s := normalizeOnce(raw)
	// 末尾サフィックスが区切り文字越しに残るケースがあるため、不動点まで繰り返す。
	for {
		next := normalizeOnce(s)
		if next == s {
			return CanonicalKey(s)
		}
		s = next
	}
}

// normalizeOnce は正規化手順を1回適用する。
func normalizeOnce(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.Map(dropControl, s)
	s = strings.TrimSpace(s)
	s = stripExporterSuffix(s)
	s = stripSideSuffix(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	return collapseNonAlnum(s)
}

// dropControl は制御文字を除去する。
func dropControl(r rune) rune {
	if unicode.IsControl(r) {
		return -1
	}
	return r
}

// stripExporterSuffix は末尾のエクスポータサフィックスを取り除く。
func stripExporterSuffix(s string) string {
	for _, suffix := range exporterSuffixes {
		if len(s) > len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
			return strings.TrimSpace(s[:len(s)-len(suffix)])
		}
	}
	return s
}

// stripSideSuffix は末尾の左右・関節サフィックス(.l/.r/.j)を取り除く。
func stripSideSuffix(s string) string {
	if len(s) < 2 {
		return s
	}
	tail := strings.ToLower(s[len(s)-2:])
	switch tail {
	case ".l", ".r", ".j":
		return strings.TrimSpace(s[:len(s)-2])
	}
	return s
}

// collapseNonAlnum は非英数字の連続を単一区切り文字へ畳み込み、両端の区切りを除く。
func collapseNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSeparator := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte(keySeparator)
			}
			pendingSeparator = false
			b.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}
	return b.String()
}
