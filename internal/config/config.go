package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Admin   AdminConfig
	Pincode PincodeConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type AdminConfig struct {
	Username    string
	Password    string
	MaxSessions int
}

type PincodeConfig struct {
	APIBase string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "karsamrit")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "changeme")
	viper.SetDefault("MAX_ADMIN_SESSIONS", 2)
	viper.SetDefault("PINCODE_API_BASE", "https://api.postalpincode.in")
	viper.SetDefault("LOG_LEVEL", "info")

	connectTimeout, err := time.ParseDuration(viper.GetString("MONGO_CONNECT_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DATABASE"),
			ConnectTimeout: connectTimeout,
		},
		Admin: AdminConfig{
			Username:    viper.GetString("ADMIN_USERNAME"),
			Password:    viper.GetString("ADMIN_PASSWORD"),
			MaxSessions: viper.GetInt("MAX_ADMIN_SESSIONS"),
		},
		Pincode: PincodeConfig{
			APIBase: viper.GetString("PINCODE_API_BASE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
