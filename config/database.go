package config

import (
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global server-level GORM handle. It is opened without a default
// schema so that SHOW DATABASES and cross-database probes can run against the
// whole store. Per-tenant handles are managed by the tenant registry, not here.
var DB *gorm.DB

// PrimaryDSN builds the DSN for a connection to the given logical database.
// An empty name yields a server-level connection with no default schema.
func PrimaryDSN(databaseName string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		Cfg.DBUser,
		Cfg.DBPass,
		Cfg.DBHost,
		Cfg.DBPort,
		databaseName,
	)
}

// ConnectDB establishes the primary store connection using GORM.
func ConnectDB() error {
	logger.Infof("Connecting to primary store %s@%s:%d", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort)

	db, err := gorm.Open(mysql.Open(PrimaryDSN("")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to primary store")

	DB = db
	return nil
}
