package database

import (
	"fmt"
	"log"

	"github.com/JFRG28/money-monitor-vWeb/config"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init inicializa la conexión a la base de datos
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	logLevel := logger.Info
	if cfg.IsRelease() {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("error al conectar a la base de datos: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Límites del pool de conexiones
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Migración automática de las tres tablas
	if err := DB.AutoMigrate(
		&models.Gasto{},
		&models.Balance{},
		&models.Deuda{},
	); err != nil {
		return err
	}

	log.Println("base de datos inicializada")
	return nil
}

// GetDB devuelve la conexión a la base de datos
func GetDB() *gorm.DB {
	return DB
}
