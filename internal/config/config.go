package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config armazena a configuração da aplicação
type Config struct {
	// StorageDriver escolhe a implementação de persistência:
	// "arquivo" (padrão), "memoria" ou "postgres"
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"arquivo"`

	// DataDir é a pasta dos arquivos de dados do driver "arquivo"
	DataDir string `envconfig:"DATA_DIR" default:"./dados"`

	// DatabaseURL só é exigida pelo driver "postgres"
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// Load carrega a configuração das variáveis de ambiente
func Load(cfg *Config) error {
	return envconfig.Process("", cfg)
}
