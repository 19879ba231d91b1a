package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/bookshop/internal/flagx"
	"github.com/dmitrijs2005/bookshop/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file decoding. RequestTimeout
// relies on timex.Duration, so "10s" and integer nanoseconds both work.
type FileConfig struct {
	ServerURL      string         `json:"server_url" yaml:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ISBN           string         `json:"isbn" yaml:"isbn"`
	Title          string         `json:"title" yaml:"title"`
	Author         string         `json:"author" yaml:"author"`
	Review         *bool          `json:"review" yaml:"review"`
	Username       string         `json:"username" yaml:"username"`
	Password       string         `json:"password" yaml:"password"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. YAML is used for .yaml/.yml, JSON otherwise. Panics on read or
// decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ISBN != "" {
		cfg.ISBN = fc.ISBN
	}
	if fc.Title != "" {
		cfg.Title = fc.Title
	}
	if fc.Author != "" {
		cfg.Author = fc.Author
	}
	if fc.Review != nil {
		cfg.Review = *fc.Review
	}
	if fc.Username != "" {
		cfg.Username = fc.Username
	}
	if fc.Password != "" {
		cfg.Password = fc.Password
	}
}
