package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultConfigFile 默认配置文件，不存在时仅使用默认值
const DefaultConfigFile = "styleguide.yaml"

var (
	config *viper.Viper
	once   sync.Once
)

// Init 初始化配置
// 未显式指定配置文件且默认文件不存在时，只使用默认值与环境变量
func Init(configFiles ...string) error {
	var err error
	once.Do(func() {
		config = viper.New()
		configFile := DefaultConfigFile
		explicit := len(configFiles) > 0 && configFiles[0] != ""
		if explicit {
			configFile = configFiles[0]
		}

		// 设置默认值
		setDefaults()

		// 环境变量覆盖，例如 STYLEGUIDE_OUTPUT_PATH
		config.SetEnvPrefix("STYLEGUIDE")
		config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		config.AutomaticEnv()

		if _, statErr := os.Stat(configFile); statErr != nil {
			if explicit {
				err = fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
			}
			return
		}

		// 读取配置文件
		config.SetConfigFile(configFile)
		if readErr := config.ReadInConfig(); readErr != nil {
			err = fmt.Errorf("%w: read config file failed: %v", ErrInvalidConfig, readErr)
		}
	})
	return err
}

// Reset 丢弃已加载的配置，仅供测试使用
func Reset() {
	config = nil
	once = sync.Once{}
}

// setDefaults 设置默认值
func setDefaults() {
	config.SetDefault("app.node_id", 1)

	config.SetDefault("output.path", "HotStreak_Comprehensive_Style_Guide.docx")
	config.SetDefault("output.reproducible", false)

	config.SetDefault("document.title", "HotStreak Comprehensive Style Guide")
	config.SetDefault("document.creator", "HotStreak Design")

	// 页面尺寸，单位 twip（1/20 磅）
	config.SetDefault("page.width", 12240)
	config.SetDefault("page.height", 15840)
	config.SetDefault("page.margin", 1080)
	config.SetDefault("table.width", 9360)

	config.SetDefault("log.filename", "logs/styleguide.log")
	config.SetDefault("log.level", "info")
	config.SetDefault("log.console", true)
	config.SetDefault("log.max_size", 100)
	config.SetDefault("log.max_backups", 3)
	config.SetDefault("log.max_age", 28)
	config.SetDefault("log.compress", true)
}

// GetString 获取字符串配置值
func GetString(key string) string {
	return config.GetString(key)
}

// GetInt 获取整数配置值
func GetInt(key string) int {
	return config.GetInt(key)
}

// GetUint64 获取64位无符号整数配置值
func GetUint64(key string) uint64 {
	return config.GetUint64(key)
}

// GetBool 获取布尔配置值
func GetBool(key string) bool {
	return config.GetBool(key)
}

// GetStringMapString 获取字符串映射配置值
func GetStringMapString(key string) map[string]string {
	return config.GetStringMapString(key)
}

// GetFloat64Map 获取数值映射配置值，任一值无法转换为数字时返回错误
func GetFloat64Map(key string) (map[string]float64, error) {
	raw := config.GetStringMap(key)
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidConfig, key, k, err)
		}
		out[k] = f
	}
	return out, nil
}

// Set 设置配置值，优先级高于配置文件与环境变量
func Set(key string, value interface{}) {
	config.Set(key, value)
}
