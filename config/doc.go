// Package config loads pandora service configuration.
//
// LoadConfig searches for config.yml (./cmd/<service>/, ./config/, then the
// working directory) and a .env file, reads them with Viper and godotenv,
// then applies PANDORA_* environment overrides:
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("orders", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// PANDORA_CONTAINER_STRICT=true, for example, sets container.strict.
package config
