// 指示: miu200521358
// Package userconfig はビューア利用者設定のTOML入出力を提供する。
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultRecentSystemLimit は系統履歴の既定保持件数。
	DefaultRecentSystemLimit = 5
	configFileMode           = 0o644
	configDirMode            = 0o755
)

// UserConfig はビューア利用者設定を表す。
type UserConfig struct {
	AssetRoot     string   `toml:"asset_root"`
	RecentSystems []string `toml:"recent_systems"`
	FilterLimit   int      `toml:"filter_limit"`
	Debug         bool     `toml:"debug"`
}

// DefaultUserConfig は既定設定を返す。
func DefaultUserConfig() UserConfig {
	return UserConfig{
		AssetRoot:   "assets",
		FilterLimit: 0,
	}
}

// Load は設定ファイルを読み込む。ファイル不存在は既定設定を返し、エラーとしない。
func Load(path string) (UserConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultUserConfig(), nil
		}
		return DefaultUserConfig(), fmt.Errorf("設定ファイルの読み取りに失敗しました: %w", err)
	}

	config := DefaultUserConfig()
	if err := toml.Unmarshal(b, &config); err != nil {
		return DefaultUserConfig(), fmt.Errorf("設定TOMLの解析に失敗しました: %w", err)
	}
	if config.AssetRoot == "" {
		config.AssetRoot = DefaultUserConfig().AssetRoot
	}
	return config, nil
}

// Save は設定ファイルを書き込む。親ディレクトリは必要なら作成する。
func Save(path string, config UserConfig) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("設定TOMLの生成に失敗しました: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, configDirMode); err != nil {
			return fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, b, configFileMode); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}

// PushRecentSystem は系統キーを履歴先頭へ積む。重複は除去し、上限で切り詰める。
func (c *UserConfig) PushRecentSystem(key string, limit int) {
	if c == nil || key == "" {
		return
	}
	if limit <= 0 {
		limit = DefaultRecentSystemLimit
	}
	recent := make([]string, 0, limit)
	recent = append(recent, key)
	for _, existing := range c.RecentSystems {
		if existing == key {
			continue
		}
		recent = append(recent, existing)
		if len(recent) >= limit {
			break
		}
	}
	c.RecentSystems = recent
}
