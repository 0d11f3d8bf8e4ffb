package models

type SourceConfig struct {
	Name    string `mapstructure:"name"`
	CSVPath string `mapstructure:"csv_path"`
}

type CatalogConfig struct {
	DBPath  string         `mapstructure:"db_path"`
	Sources []SourceConfig `mapstructure:"sources"`
}

type ReportConfig struct {
	DefaultDepth int `mapstructure:"default_depth"` // 0 = full detected depth
	MaxLevels    int `mapstructure:"max_levels"`
	TopFolders   int `mapstructure:"top_folders"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Report  ReportConfig  `mapstructure:"report"`
}
