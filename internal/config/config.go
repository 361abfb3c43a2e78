package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mylang 项目配置
type Config struct {
	Project ProjectConfig `toml:"project"`
	Build   BuildConfig   `toml:"build"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Name string `toml:"name"` // 项目名，用作默认输出名
}

// BuildConfig 构建配置
type BuildConfig struct {
	Mode   string `toml:"mode"`   // 编译模式: script 或 native
	Output string `toml:"output"` // 默认输出路径
	Emit   string `toml:"emit"`   // 生成的目标语言源代码保存路径
	CC     string `toml:"cc"`     // native 模式使用的 C 编译器
	Python string `toml:"python"` // script 模式使用的解释器
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Mode:   "script",
			CC:     "cc",
			Python: "python3",
		},
	}
}

// FindAndLoad 从指定目录向上查找 mylang.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 mylang.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "mylang.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，缺失的字段填入默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	if config.Build.Mode == "" {
		config.Build.Mode = "script"
	}
	if config.Build.CC == "" {
		config.Build.CC = "cc"
	}
	if config.Build.Python == "" {
		config.Build.Python = "python3"
	}

	return config, nil
}
