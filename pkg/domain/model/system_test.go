// 指示: miu200521358
package model

import (
	"path/filepath"
	"testing"
)

func TestDefaultSystemCatalogContainsFixedSystems(t *testing.T) {
	catalog := NewDefaultSystemCatalog("assets")
	if catalog.Len() != 5 {
		t.Fatalf("unexpected catalog size: %d", catalog.Len())
	}
	for _, key := range []string{"bones", "muscles", "nerves", "vessels", "organs"} {
		system, ok := catalog.Find(key)
		if !ok {
			t.Fatalf("system not found: %s", key)
		}
		if system.ModelAssetPath != filepath.Join("assets", "models", key+".glb") {
			t.Fatalf("unexpected model path: %s", system.ModelAssetPath)
		}
		if system.MetadataPath != filepath.Join("assets", "metadata", key+".json") {
			t.Fatalf("unexpected metadata path: %s", system.MetadataPath)
		}
	}
}

func TestSystemCatalogFindUnknown(t *testing.T) {
	catalog := NewDefaultSystemCatalog("assets")
	if _, ok := catalog.Find("skin"); ok {
		t.Fatalf("unexpected system found")
	}
}

func TestNewSystemCatalogIgnoresDuplicatesAndEmptyKeys(t *testing.T) {
	catalog := NewSystemCatalog([]AnatomicalSystem{
		{Key: "bones", DisplayLabel: "first"},
		{Key: "bones", DisplayLabel: "second"},
		{Key: ""},
	})
	if catalog.Len() != 1 {
		t.Fatalf("unexpected catalog size: %d", catalog.Len())
	}
	system, _ := catalog.Find("bones")
	if system.DisplayLabel != "first" {
		t.Fatalf("duplicate should not overwrite: %s", system.DisplayLabel)
	}
}

func TestSystemsReturnsCopy(t *testing.T) {
	catalog := NewDefaultSystemCatalog("assets")
	systems := catalog.Systems()
	systems[0].Key = "mutated"
	if _, ok := catalog.Find("mutated"); ok {
		t.Fatalf("catalog should not observe caller mutation")
	}
}
