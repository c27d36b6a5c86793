package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig reads the optional .env file in path and makes every variable
// available through viper and the process environment.
func LoadConfig(path string) {
	_ = godotenv.Load(filepath.Join(path, ".env"))

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()
	viper.AutomaticEnv()
}
