package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	be.Equal(t, cfg.Build.Mode, "script")
	be.Equal(t, cfg.Build.CC, "cc")
	be.Equal(t, cfg.Build.Python, "python3")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mylang.toml")
	content := `
[project]
name = "demo"

[build]
mode = "native"
emit = "out/gen.c"
cc = "gcc"
`
	be.Err(t, os.WriteFile(path, []byte(content), 0644), nil)

	cfg, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Project.Name, "demo")
	be.Equal(t, cfg.Build.Mode, "native")
	be.Equal(t, cfg.Build.Emit, "out/gen.c")
	be.Equal(t, cfg.Build.CC, "gcc")
	// 未设置的字段保留默认值
	be.Equal(t, cfg.Build.Python, "python3")
}

func TestLoadBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mylang.toml")
	be.Err(t, os.WriteFile(path, []byte("not [valid toml"), 0644), nil)

	_, err := Load(path)
	be.Equal(t, err != nil, true)
}

// 从子目录向上查找配置文件
func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	be.Err(t, os.MkdirAll(sub, 0755), nil)

	path := filepath.Join(root, "mylang.toml")
	be.Err(t, os.WriteFile(path, []byte("[build]\nmode = \"script\"\n"), 0644), nil)

	be.Equal(t, FindConfigFile(sub), path)
	be.Equal(t, FindConfigFile(root), path)
}

// 找不到配置文件时返回默认配置
func TestFindAndLoadMissing(t *testing.T) {
	dir := t.TempDir()

	cfg, configPath, err := FindAndLoad(dir)
	be.Err(t, err, nil)
	be.Equal(t, configPath, "")
	be.Equal(t, cfg.Build.Mode, "script")
}
