package database

import (
	"errors"
	"fmt"

	"careerhub/config"
	"careerhub/logger"
	"careerhub/models"
	"careerhub/models/certification"
	"careerhub/models/course"
	"careerhub/models/english"
	"careerhub/models/university"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database, runs migrations and stores the handle globally
func ConnectDb() {
	cfg := config.AppConfig

	db, err := Open(cfg.DBDriver, BuildDSN(cfg))
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("failed to get database instance", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	if err := RunMigrations(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}

	Database = DbInstance{Db: db}
}

// BuildDSN returns DB_DSN when set, otherwise assembles one for the configured driver
func BuildDSN(cfg *config.Config) string {
	if cfg.DBDsn != "" {
		return cfg.DBDsn
	}

	switch cfg.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	case "sqlite":
		return cfg.DBName + ".db"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}
}

// Open connects with the given driver name. Supabase is plain Postgres.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "supabase", "":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	logger.Log.Info("running migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.LoginHistory{},
		&course.Course{},
		&course.Chapter{},
		&course.Question{},
		&course.ChapterProgress{},
		&certification.Certification{},
		&certification.Question{},
		&certification.Answer{},
		&english.News{},
		&english.Movie{},
		&university.University{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("migrations completed")
	return nil
}

// IsNotFound reports whether err is gorm's record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
