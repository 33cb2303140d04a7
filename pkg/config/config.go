package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StorageConfig configuración de la persistencia.
//
// Backend selecciona el adaptador: "legacy" (archivos planos delimitados por
// '|', compatible con los datos existentes), "jsonl" (un objeto JSON por
// línea) o "sqlite" (base embebida).
type StorageConfig struct {
	Backend          string
	Dir              string // directorio de datos, se crea si no existe
	CustomersFile    string
	InteractionsFile string
	JSONLFile        string
	SQLiteFile       string
}

// CustomersPath devuelve la ruta completa del archivo de clientes.
func (c StorageConfig) CustomersPath() string {
	return filepath.Join(c.Dir, c.CustomersFile)
}

// InteractionsPath devuelve la ruta completa del archivo de interacciones.
func (c StorageConfig) InteractionsPath() string {
	return filepath.Join(c.Dir, c.InteractionsFile)
}

// JSONLPath devuelve la ruta completa del archivo JSONL.
func (c StorageConfig) JSONLPath() string {
	return filepath.Join(c.Dir, c.JSONLFile)
}

// SQLitePath devuelve la ruta completa de la base SQLite.
func (c StorageConfig) SQLitePath() string {
	return filepath.Join(c.Dir, c.SQLiteFile)
}

// LogConfig configuración del logging estructurado.
type LogConfig struct {
	Level string
	File  string // vacío = stdout
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// STORAGE_BACKEND, STORAGE_DIR, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "insurapro-crm"),
		},
		Storage: StorageConfig{
			Backend:          getString(v, "STORAGE_BACKEND", "legacy"),
			Dir:              getString(v, "STORAGE_DIR", "data"),
			CustomersFile:    getString(v, "STORAGE_CUSTOMERS_FILE", "clienti.txt"),
			InteractionsFile: getString(v, "STORAGE_INTERACTIONS_FILE", "interazioni.txt"),
			JSONLFile:        getString(v, "STORAGE_JSONL_FILE", "crm.jsonl"),
			SQLiteFile:       getString(v, "STORAGE_SQLITE_FILE", "crm.db"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", filepath.Join("data", "crm.log")),
		},
	}
	return cfg, nil
}

// getString lee una clave con valor por defecto.
func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}
