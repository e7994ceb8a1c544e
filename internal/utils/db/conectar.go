package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão com o banco. Em produção usa Postgres via
// DATABASE_DSN ou pelas variáveis DB_HOST/DB_USER/DB_PASSWORD/DB_NAME/DB_PORT;
// sem nada configurado cai para um arquivo SQLite local, suficiente para
// desenvolvimento.
func Conectar() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		sslMode := ""
		if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
			sslMode = " sslmode=disable"
		}
		porta := os.Getenv("DB_PORT")
		if porta == "" {
			porta = "5432"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			porta,
			sslMode,
		)
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	arquivo := os.Getenv("SQLITE_PATH")
	if arquivo == "" {
		arquivo = "locadora.db"
	}
	return gorm.Open(sqlite.Open(arquivo), cfg)
}
