// 指示: miu200521358
package minteractor

import (
	"sort"
	"strings"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
)

// GroupSummary はグループ検索結果の1件を表す。
type GroupSummary struct {
	Key         model.CanonicalKey
	DisplayName string
}

// FilterGroups は正規化した問い合わせ文字列でグループを部分一致検索する。
// 結果は表示名の短い順、同長は辞書順で整列し、上限件数で打ち切る。
func (uc *AnatomyViewerUsecase) FilterGroups(query string) []GroupSummary {
	var results []GroupSummary
	uc.call(func() {
		results = uc.filterGroupsLocked(query)
	})
	return results
}

// filterGroupsLocked はループ上で検索本体を実行する。
func (uc *AnatomyViewerUsecase) filterGroupsLocked(query string) []GroupSummary {
	// グループキーは表示名の正規化結果そのものなので、キー文字列へ部分一致させる。
	normalizedQuery := string(model.Normalize(query))

	matched := make([]GroupSummary, 0, len(uc.groupIndex))
	for key, group := range uc.groupIndex {
		if group == nil {
			continue
		}
		if normalizedQuery != "" && !strings.Contains(string(key), normalizedQuery) {
			continue
		}
		matched = append(matched, GroupSummary{Key: key, DisplayName: group.DisplayName})
	}

	sort.Slice(matched, func(i, j int) bool {
		li, lj := len(matched[i].DisplayName), len(matched[j].DisplayName)
		if li != lj {
			return li < lj
		}
		return matched[i].DisplayName < matched[j].DisplayName
	})
	if len(matched) > uc.filterLimit {
		matched = matched[:uc.filterLimit]
	}
	return matched
}
