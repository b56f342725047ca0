package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/repository"
	"github.com/nocmx/netops-finops-dashboard-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// defaultConfigNames are probed in the working directory when no
// explicit config file is given.
var defaultConfigNames = []string{"netops.yaml", "netops.yml", "netops.toml", "netops.json"}

// LoadDefault resolves the effective configuration: an explicit path (or
// the NETOPS_CONFIG variable), falling back to conventional file names,
// then environment overrides, then defaults. A missing file is not an
// error; a broken one is.
func LoadDefault(r repository.ConfigRepository, explicitPath string) (*types.Config, error) {
	cfg := &types.Config{}

	path := explicitPath
	if path == "" {
		path = os.Getenv("NETOPS_CONFIG")
	}
	if path == "" {
		for _, name := range defaultConfigNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		loaded, err := r.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Las variables de entorno ganan sobre el archivo.
	if v := os.Getenv("NETOPS_UPSTREAM_URL"); v != "" {
		cfg.UpstreamURL = v
	}
	if v := os.Getenv("NETOPS_UPSTREAM_TOKEN"); v != "" {
		cfg.UpstreamToken = v
	}
	if v := os.Getenv("NETOPS_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.Currency == "" {
		cfg.Currency = "MXN"
	}
	if cfg.Period == "" {
		cfg.Period = "1m"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	return cfg, nil
}
