// Package config populates configuration structs from environment variables.
//
// Fields are described with caarlos0/env struct tags. Before the first parse
// the package loads a .env file from the working directory (if present) via
// godotenv; real environment variables always win over .env values.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
