package app

import (
	"github.com/spf13/viper"

	"github.com/nowakemc/reporting-project/models"
)

func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("catalog.db_path", "data/catalog.db")
	v.SetDefault("report.default_depth", 0)
	v.SetDefault("report.max_levels", 5)
	v.SetDefault("report.top_folders", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
