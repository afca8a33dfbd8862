package main

import (
	"os"

	"careerhub/config"
	"careerhub/database"
	"careerhub/logger"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	AdminEmail      string `long:"admin-email" env:"SEED_ADMIN_EMAIL" required:"true" description:"email of the admin account to create or promote"`
	AdminPassword   string `long:"admin-password" env:"SEED_ADMIN_PASSWORD" required:"true" description:"password for a newly created admin"`
	AdminName       string `long:"admin-name" default:"Administrator" description:"display name for a newly created admin"`
	Sample          bool   `long:"sample" description:"insert sample courses, certifications, movies and universities"`
	UniversitiesCSV string `long:"universities-csv" description:"CSV of universities: name,country,city,website,ranking,tuitionFee,currency"`
	Verbose         bool   `long:"verbose" description:"use verbose mode"`
}

var opts Options

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	config.LoadConfig()
	level := config.AppConfig.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger.Init(level)
	defer logger.Log.Sync()

	database.ConnectDb()
	db := database.Database.Db

	admin, err := EnsureAdmin(db, opts.AdminName, opts.AdminEmail, opts.AdminPassword)
	if err != nil {
		logger.Log.Fatal("failed to seed admin", zap.Error(err))
	}
	logger.Log.Info("admin ready", zap.String("id", admin.ID), zap.String("email", admin.Email))

	if opts.Sample {
		if err := SeedSamples(db); err != nil {
			logger.Log.Fatal("failed to seed sample data", zap.Error(err))
		}
		logger.Log.Info("sample data inserted")
	}

	if opts.UniversitiesCSV != "" {
		file, err := os.Open(opts.UniversitiesCSV)
		if err != nil {
			logger.Log.Fatal("failed to open CSV file", zap.Error(err))
		}
		defer file.Close()

		count, err := ImportUniversities(db, file)
		if err != nil {
			logger.Log.Fatal("failed to import universities", zap.Error(err))
		}
		logger.Log.Info("universities imported", zap.Int("count", count))
	}
}
