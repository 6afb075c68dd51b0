// 指示: miu200521358
// Package io_meta は系統メタデータJSONの読み込みアダプタを提供する。
package io_meta

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_common"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
)

// MetadataRepository は系統メタデータの読み込み契約を表す。
type MetadataRepository struct{}

// NewMetadataRepository はMetadataRepositoryを生成する。
func NewMetadataRepository() *MetadataRepository {
	return &MetadataRepository{}
}

// metadataFileEntry はメタデータJSONの1エントリを表す。
// name/variantsはいずれも省略可能で、欠落はフォールバックで吸収する。
type metadataFileEntry struct {
	Name     string              `json:"name"`
	Variants map[string][]string `json:"variants"`
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *MetadataRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load は系統メタデータを読み込む。
func (r *MetadataRepository) Load(path string) (model.SystemMetadata, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	logMetaInfo("メタデータ読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("メタデータファイルの読み取りに失敗しました", err)
	}

	entries := map[string]metadataFileEntry{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, io_common.NewIoParseFailed("メタデータJSONの解析に失敗しました", err)
	}

	metadata := make(model.SystemMetadata, len(entries))
	for rawKey, entry := range entries {
		metadata[rawKey] = model.SystemMetadataEntry{
			Name:     entry.Name,
			Variants: entry.Variants,
		}
	}
	logMetaInfo("メタデータ読込完了: file=%s entries=%d", filepath.Base(path), len(metadata))
	return metadata, nil
}

// logMetaInfo はメタデータ読込のINFOログを出力する。
func logMetaInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
