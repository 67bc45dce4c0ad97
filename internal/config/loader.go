package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// configType 是配置文件格式；.tokeirc 没有扩展名，需要显式指定。
const configType = "toml"

// envPrefix 是环境变量前缀，例如 TOKEI_HIDDEN=true。
const envPrefix = "TOKEI"

// configFileNames 是每个目录下依次查找的文件名，后者覆盖前者。
var configFileNames = []string{".tokeirc", "tokei.toml"}

// keys 是全部可识别的配置键。
var keys = []string{
	"columns",
	"hidden",
	"no_ignore",
	"no_ignore_parent",
	"no_ignore_dot",
	"no_ignore_vcs",
	"treat_doc_strings_as_comments",
	"sort",
	"types",
}

// Load 读取一个显式指定的配置文件。文件不存在视为错误。
func Load(path string) (Config, error) {
	viperCfg := newViper()
	viperCfg.SetConfigFile(path)

	if err := viperCfg.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(viperCfg, path)
}

// FromConfigFiles 依次合并用户配置目录、home 目录与当前工作目录中的配置文件，
// 最后叠加 TOKEI_* 环境变量。找不到任何文件不是错误。
func FromConfigFiles() (Config, error) {
	dirs := make([]string, 0, 3)
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}

	cfg, err := LoadFromDirs(dirs...)
	if err != nil {
		return Config{}, err
	}

	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	return cfg.Override(env), nil
}

// LoadFromDirs 按目录顺序合并配置文件，后出现的目录优先。
func LoadFromDirs(dirs ...string) (Config, error) {
	cfg := Default()
	seen := make(map[string]struct{})

	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}

			loaded, err := loadIfExists(path)
			if err != nil {
				return Config{}, err
			}
			cfg = cfg.Override(loaded)
		}
	}
	return cfg, nil
}

// FromEnv 只读取 TOKEI_* 环境变量。
func FromEnv() (Config, error) {
	viperCfg := newViper()
	for _, key := range keys {
		if err := viperCfg.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return decode(viperCfg, "environment")
}

func loadIfExists(path string) (Config, error) {
	viperCfg := newViper()
	viperCfg.SetConfigFile(path)

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(readErr, &notFound) || errors.Is(readErr, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, readErr)
	}
	return decode(viperCfg, path)
}

func newViper() *viper.Viper {
	viperCfg := viper.New()
	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return viperCfg
}

func decode(viperCfg *viper.Viper, source string) (Config, error) {
	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", source, err)
	}
	return cfg, nil
}
