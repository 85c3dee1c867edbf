package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuración de la aplicación
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	API       APIConfig       `mapstructure:"api"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig configuración de MySQL
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// CORSConfig orígenes permitidos para CORS
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// RateLimitConfig límite de peticiones por IP
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxRequests   int           `mapstructure:"max_requests"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Window        time.Duration `mapstructure:"-"`
}

// APIConfig banderas de comportamiento del API
type APIConfig struct {
	// ExpandirTipoBalance responde el tipo de balance en formato largo
	// (Débito/Inversión) en lugar del código corto almacenado.
	ExpandirTipoBalance bool `mapstructure:"expandir_tipo_balance"`
}

var (
	// GlobalConfig instancia global de configuración
	GlobalConfig *Config
)

// LoadConfig carga la configuración.
// Prioridad: variables de entorno > archivo externo > configuración embebida.
// configPath: ruta opcional a un archivo de configuración externo
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Configuración embebida por defecto
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("error al leer la configuración embebida: %w", err)
	}

	// 2. Archivo externo opcional que sobreescribe los valores por defecto
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("advertencia: no se pudo leer el archivo de configuración %s: %v", configPath, err)
		} else {
			log.Printf("configuración externa combinada: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/money-monitor")
		externalViper.AddConfigPath("$HOME/.money-monitor")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("advertencia: error al combinar configuración externa: %v", err)
			} else {
				log.Printf("configuración externa combinada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Variables de entorno MONITOR_* (p. ej. MONITOR_DATABASE_PASSWORD)
	v.SetEnvPrefix("MONITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error al interpretar la configuración: %w", err)
	}

	if cfg.RateLimit.WindowSeconds <= 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
	cfg.RateLimit.Window = time.Duration(cfg.RateLimit.WindowSeconds) * time.Second

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carga la configuración o hace panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("error al cargar la configuración: %v", err))
	}
	return cfg
}

// IsRelease indica si el servidor corre en modo release
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}

// SafeErrorMessage devuelve el detalle del error solo fuera de modo release.
// En release devuelve el mensaje genérico para no filtrar información interna.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.IsRelease() {
		return fallback
	}
	return err.Error()
}

// PrintConfig imprime la configuración actual (sin credenciales)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuración actual:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  base de datos: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  rate limit: %v", GlobalConfig.RateLimit.Enabled)
}
