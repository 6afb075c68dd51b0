// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

// BuildGroupIndex は系統メタデータから正規化キー→グループの索引を構築する。
// 同一キーへ正規化されるエントリはメンバー集合を合成し、後続エントリで置き換えない。
func BuildGroupIndex(metadata model.SystemMetadata) map[model.CanonicalKey]*model.Group {
	index := make(map[model.CanonicalKey]*model.Group, len(metadata))
	for rawKey, entry := range metadata {
		displayName := strings.TrimSpace(entry.Name)
		if displayName == "" {
			displayName = strings.TrimSpace(rawKey)
		}
		groupKey := model.Normalize(displayName)
		if groupKey == "" {
			continue
		}

		group, exists := index[groupKey]
		if !exists {
			group = model.NewGroup(groupKey, displayName)
			index[groupKey] = group
		}
		for _, rawNames := range entry.Variants {
			for _, rawName := range rawNames {
				group.AddMember(model.Normalize(rawName))
			}
		}
		// グループ名そのものと同名のメッシュを常に解決できるよう、自キーをメンバーへ含める。
		group.AddMember(groupKey)
	}
	return index
}
