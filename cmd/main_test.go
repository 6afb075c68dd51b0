//go:build !windows
// +build !windows

// 指示: miu200521358
package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/infra/userconfig"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.systemKey != "bones" {
		t.Fatalf("unexpected default system: %s", opts.systemKey)
	}
	if opts.configPath != "mu_anatomy_viewer.toml" {
		t.Fatalf("unexpected default config path: %s", opts.configPath)
	}
	if opts.debug {
		t.Fatalf("debug should default to false")
	}
}

func TestParseOptionsReadsFlags(t *testing.T) {
	args := []string{
		"-assets", "data/anatomy",
		"-system", "muscles",
		"-select", "quadriceps,biceps_brachii",
		"-filter", "quad",
		"-debug",
	}
	opts, err := parseOptions(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.assetRoot != "data/anatomy" || opts.systemKey != "muscles" || !opts.debug {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.selectKeys != "quadriceps,biceps_brachii" || opts.filterText != "quad" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestParseOptionsPositionalSystemKey(t *testing.T) {
	opts, err := parseOptions([]string{"nerves"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.systemKey != "nerves" {
		t.Fatalf("positional system key not applied: %s", opts.systemKey)
	}
}

func TestParseOptionsRejectsBlankSystemKey(t *testing.T) {
	if _, err := parseOptions([]string{"-system", "  "}, &bytes.Buffer{}); err == nil {
		t.Fatalf("blank system key should error")
	}
}

func TestParseOptionsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseOptions([]string{"-nope"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("unknown flag should error")
	}
}

func TestResolveRuntimeOptions(t *testing.T) {
	config := userconfig.UserConfig{AssetRoot: "data/anatomy", Debug: true}

	// 引数未指定時は設定ファイルの値が効く。
	assetRoot, debug := resolveRuntimeOptions(options{}, config)
	if assetRoot != "data/anatomy" {
		t.Fatalf("config asset root not applied: %s", assetRoot)
	}
	if !debug {
		t.Fatalf("config debug not applied")
	}

	// アセットルートは引数指定が優先される。
	assetRoot, _ = resolveRuntimeOptions(options{assetRoot: "override"}, config)
	if assetRoot != "override" {
		t.Fatalf("flag asset root should win: %s", assetRoot)
	}

	// デバッグは引数だけでも有効化できる。
	if _, debug := resolveRuntimeOptions(options{debug: true}, userconfig.UserConfig{}); !debug {
		t.Fatalf("flag debug not applied")
	}
	if _, debug := resolveRuntimeOptions(options{}, userconfig.UserConfig{}); debug {
		t.Fatalf("debug should default to false")
	}
}

func TestSplitSelectKeys(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"quadriceps", []string{"quadriceps"}},
		{"quadriceps, biceps_brachii", []string{"quadriceps", "biceps_brachii"}},
		{"a,,b, ,c", []string{"a", "b", "c"}},
	}
	for _, c := range cases {
		if got := splitSelectKeys(c.raw); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitSelectKeys(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
