package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	embedded "github.com/goserg/wettkampfwert"
	"github.com/goserg/wettkampfwert/internal/rating"
)

const (
	serverFile = "server.toml"
	ratingFile = "rating.toml"
)

type Server struct {
	Host           string  `toml:"host"`
	Port           int     `toml:"port"`
	Debug          bool    `toml:"debug_mode"`
	StartingRating float64 `toml:"starting_rating"`
}

type Config struct {
	Server Server
	Rating rating.Config
}

// New loads the embedded defaults and lets files in dir override them.
func New(dir string) (Config, error) {
	var cfg Config
	if err := decode(dir, serverFile, &cfg.Server); err != nil {
		return Config{}, err
	}
	if port := os.Getenv("WW_SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("env WW_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = p
	}

	if err := decode(dir, ratingFile, &cfg.Rating); err != nil {
		return Config{}, err
	}
	if err := cfg.Rating.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", ratingFile, err)
	}
	return cfg, nil
}

func decode(dir string, name string, v any) error {
	_, err := toml.DecodeFS(embedded.Configs, "configs/"+name, v)
	if err != nil {
		return fmt.Errorf("default %s: %w", name, err)
	}
	if dir == "" {
		return nil
	}
	_, err = toml.DecodeFile(filepath.Join(dir, name), v)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
