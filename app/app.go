package app

import "log"

func Run(configPath string, force bool) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := EnsureCatalog(cfg.Catalog.DBPath); err != nil {
		return err
	}
	if err := ImportSources(cfg, force); err != nil {
		return err
	}

	log.Println("Catalog initialized successfully")
	return nil
}
