// 指示: miu200521358
package model

// SystemMetadataEntry は系統メタデータの1エントリを表す。
// Name欠落時は生キーへ、Variants欠落時は自己メンバーのみへフォールバックする。
type SystemMetadataEntry struct {
	Name     string
	Variants map[string][]string
}

// SystemMetadata は生グループキーからエントリへの対応を表す。
type SystemMetadata map[string]SystemMetadataEntry
