// 指示: miu200521358
package model

import "path/filepath"

// AnatomicalSystem は表示対象の解剖系統を表す。起動後は不変。
type AnatomicalSystem struct {
	Key            string
	DisplayLabel   string
	ModelAssetPath string
	MetadataPath   string
}

// SystemCatalog は解剖系統の固定カタログを表す。
type SystemCatalog struct {
	systems []AnatomicalSystem
	byKey   map[string]AnatomicalSystem
}

// defaultSystemDefinitions は既定カタログの系統定義を表す。
var defaultSystemDefinitions = []struct {
	Key   string
	Label string
}{
	{Key: "bones", Label: "骨格"},
	{Key: "muscles", Label: "筋"},
	{Key: "nerves", Label: "神経"},
	{Key: "vessels", Label: "脈管"},
	{Key: "organs", Label: "臓器"},
}

// NewSystemCatalog は系統カタログを生成する。キー重複は後勝ちにせず先勝ちで無視する。
func NewSystemCatalog(systems []AnatomicalSystem) *SystemCatalog {
	catalog := &SystemCatalog{
		systems: make([]AnatomicalSystem, 0, len(systems)),
		byKey:   make(map[string]AnatomicalSystem, len(systems)),
	}
	for _, system := range systems {
		if system.Key == "" {
			continue
		}
		if _, exists := catalog.byKey[system.Key]; exists {
			continue
		}
		catalog.systems = append(catalog.systems, system)
		catalog.byKey[system.Key] = system
	}
	return catalog
}

// NewDefaultSystemCatalog はアセットルート配下を指す既定カタログを生成する。
func NewDefaultSystemCatalog(assetRoot string) *SystemCatalog {
	systems := make([]AnatomicalSystem, 0, len(defaultSystemDefinitions))
	for _, def := range defaultSystemDefinitions {
		systems = append(systems, AnatomicalSystem{
			Key:            def.Key,
			DisplayLabel:   def.Label,
			ModelAssetPath: filepath.Join(assetRoot, "models", def.Key+".glb"),
			MetadataPath:   filepath.Join(assetRoot, "metadata", def.Key+".json"),
		})
	}
	return NewSystemCatalog(systems)
}

// Find はキーに対応する系統を返す。
func (c *SystemCatalog) Find(key string) (AnatomicalSystem, bool) {
	if c == nil {
		return AnatomicalSystem{}, false
	}
	system, ok := c.byKey[key]
	return system, ok
}

// Systems は登録順の系統一覧の複製を返す。
func (c *SystemCatalog) Systems() []AnatomicalSystem {
	if c == nil {
		return nil
	}
	out := make([]AnatomicalSystem, len(c.systems))
	copy(out, c.systems)
	return out
}

// Len は登録系統数を返す。
func (c *SystemCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.systems)
}
