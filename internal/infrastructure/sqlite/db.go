package sqlite

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	gsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lreinoso/riostore/internal/domain/entity"
)

const (
	// StoreFileName nombre del archivo único que contiene todo el almacén.
	StoreFileName = "riostore.db"

	keyFileName = "key.key"
	keySize     = 32
)

// Store encapsula la base embebida: el handle gorm, la ruta del archivo y la
// clave local generada en el primer arranque.
type Store struct {
	DB   *gorm.DB
	Path string
	Key  []byte
}

// Open abre (o crea) el almacén embebido bajo dataDir, asegura la clave local
// y migra el esquema. Idempotente: arrancar sobre un almacén existente no lo
// altera.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	key, err := loadOrCreateKey(filepath.Join(dataDir, keyFileName))
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, StoreFileName)
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db, Path: path, Key: key}, nil
}

// OpenMemory abre un almacén efímero en memoria (para tests).
func OpenMemory() (*Store, error) {
	db, err := openDB(":memory:")
	if err != nil {
		return nil, err
	}
	return &Store{DB: db, Path: ":memory:"}, nil
}

func openDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(gsqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if path == ":memory:" {
		// Cada conexión del pool vería una base en memoria distinta; se fija
		// una sola conexión para que todas las consultas hablen con la misma.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Client{},
		&entity.Document{},
		&entity.DocumentItem{},
		&entity.DocumentCounter{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// Close cierra la conexión subyacente al archivo.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// loadOrCreateKey lee la clave local del directorio de datos; si no existe la
// genera una única vez y la persiste con permisos restrictivos.
func loadOrCreateKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	raw := make([]byte, keySize)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	encoded := []byte(base64.URLEncoding.EncodeToString(raw))
	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return encoded, nil
}
