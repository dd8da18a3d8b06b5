package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Log      LogConfig
	Admin    AdminConfig
	Business BusinessConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// StoreConfig rutas del almacén embebido y del archivo de comprobantes.
type StoreConfig struct {
	DataDir    string // directorio del archivo de datos y la clave local
	ArchiveDir string // directorio de las copias PDF de los documentos
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// AdminConfig credenciales del administrador inicial, usadas solo cuando el
// almacén arranca vacío.
type AdminConfig struct {
	FullName string
	Username string
	Password string
}

// BusinessConfig identidad del local que encabeza los PDF.
type BusinessConfig struct {
	Name    string
	RUC     string
	Address string
	Phone   string
	Email   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// RIOSTORE_DATA_DIR, ADMIN_USERNAME, BUSINESS_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	dataDir := getString(v, "RIOSTORE_DATA_DIR", "./data")

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "riostore"),
		},
		Store: StoreConfig{
			DataDir:    dataDir,
			ArchiveDir: getString(v, "RIOSTORE_ARCHIVE_DIR", filepath.Join(dataDir, "comprobantes")),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Admin: AdminConfig{
			FullName: getString(v, "ADMIN_FULL_NAME", "Administrador"),
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
		Business: BusinessConfig{
			Name:    getString(v, "BUSINESS_NAME", "Tech RioStore"),
			RUC:     getString(v, "BUSINESS_RUC", ""),
			Address: getString(v, "BUSINESS_ADDRESS", ""),
			Phone:   getString(v, "BUSINESS_PHONE", ""),
			Email:   getString(v, "BUSINESS_EMAIL", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
