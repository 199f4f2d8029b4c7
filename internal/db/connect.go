// Package db opens and provisions the hosted relational backend.
package db

import (
	"fmt"

	"github.com/avandyck/daypack/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a MySQL-compatible DSN for the hosted backend.
func DSN(b config.BackendConfig) string {
	cred := b.User
	if b.Password != "" {
		cred += ":" + b.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cred, b.Host, b.Port, b.Database)
}

// Connect opens a GORM connection to the hosted backend.
func Connect(b config.BackendConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(DSN(b)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: connect to %s:%d/%s: %w", b.Host, b.Port, b.Database, err)
	}
	return db, nil
}

// ConnectAdmin opens a GORM connection without selecting a database, used
// for CREATE DATABASE during provisioning.
func ConnectAdmin(b config.BackendConfig) (*gorm.DB, error) {
	admin := b
	admin.Database = ""
	db, err := gorm.Open(mysql.Open(DSN(admin)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: admin connect to %s:%d: %w", b.Host, b.Port, err)
	}
	return db, nil
}

// CreateDatabase creates the named database if it doesn't already exist.
func CreateDatabase(adminDB *gorm.DB, name string) error {
	sql := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)
	if err := adminDB.Exec(sql).Error; err != nil {
		return fmt.Errorf("db: create database %s: %w", name, err)
	}
	return nil
}
