package configuration

import (
	"fmt"
	"os"
	"strconv"

	"trending-board/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	RedisClient RedisClient `json:"redisClient"`
	YouTube     YouTube     `json:"youtube"`
	Auth        Auth        `json:"auth"`
	Cache       Cache       `json:"cache"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type YouTube struct {
	APIKey    string `json:"apiKey"`
	TimeoutMS int    `json:"timeoutMs"`
}

// Auth holds the placeholder credential pair for the login gate. Both values
// come from secrets or environment only; there are no hardcoded defaults.
type Auth struct {
	TempUsername string `json:"tempUsername"`
	TempPassword string `json:"tempPassword"`
}

// Cache holds TTL overrides in seconds; zero means the built-in default.
type Cache struct {
	VideoTTLSeconds    int `json:"videoTtlSeconds"`
	CategoryTTLSeconds int `json:"categoryTtlSeconds"`
}

var C Config

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}

	initApp(&C)
	initRedis(&C)
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initRedis(C *Config) {
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		if v := os.Getenv("REDIS_PORT"); v != "" {
			C.RedisClient.Port = v
		} else if C.RedisClient.Host != "" {
			C.RedisClient.Port = "6379"
		}
	}
	if C.RedisClient.Username == "" {
		C.RedisClient.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
}
