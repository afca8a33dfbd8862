package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"careerhub/models"
	"careerhub/models/certification"
	"careerhub/models/course"
	"careerhub/models/english"
	"careerhub/models/university"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureAdmin creates the admin account, or promotes an existing user with that email
func EnsureAdmin(db *gorm.DB, name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		err = db.Model(&user).Updates(map[string]interface{}{"role": models.RoleAdmin, "is_deleted": false}).Error
		user.Role = models.RoleAdmin
		return user, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, err
	}
	user = models.User{Name: name, Email: email, Password: string(hash), Role: models.RoleAdmin}
	return user, db.Create(&user).Error
}

// SeedSamples inserts one published item of each content type. Running it twice is a no-op.
func SeedSamples(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		tx.Model(&course.Course{}).Where("slug = ?", "go-basics").Count(&existing)
		if existing > 0 {
			return nil
		}

		goCourse := course.Course{
			Title:       "Go Basics",
			Slug:        "go-basics",
			Description: "Variables, functions and packages.",
			Language:    "go",
			Level:       course.LevelBeginner,
			IsPublished: true,
		}
		if err := tx.Create(&goCourse).Error; err != nil {
			return err
		}

		chapter := course.Chapter{
			CourseID:    goCourse.ID,
			Title:       "Hello, World",
			Content:     "<p>Every Go program starts in package <code>main</code>.</p>",
			IsPublished: true,
		}
		if err := tx.Create(&chapter).Error; err != nil {
			return err
		}

		questions := []course.Question{
			{
				ChapterID:    chapter.ID,
				Type:         course.QuestionChoice,
				Prompt:       "Which package holds the program entry point?",
				Options:      datatypes.NewJSONSlice([]string{"fmt", "main", "os"}),
				CorrectIndex: 1,
			},
			{
				ChapterID:  chapter.ID,
				Type:       course.QuestionText,
				Prompt:     "Name the function that runs first.",
				Answer:     "main",
				OrderIndex: 1,
			},
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}

		cert := certification.Certification{
			Name:         "Azure Fundamentals",
			Code:         "AZ-900",
			Vendor:       "Microsoft",
			PassingScore: 70,
			IsPublished:  true,
		}
		if err := tx.Create(&cert).Error; err != nil {
			return err
		}
		if err := tx.Create(&certification.Question{
			CertificationID: cert.ID,
			Category:        "Cloud Concepts",
			Prompt:          "Which model lets you pay only for what you use?",
			Options:         datatypes.NewJSONSlice([]string{"CapEx", "Consumption-based", "Reserved"}),
			CorrectIndex:    1,
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&english.Movie{
			Title:       "How to order coffee",
			YoutubeID:   "dQw4w9WgXcQ",
			Level:       "BEGINNER",
			IsPublished: true,
		}).Error; err != nil {
			return err
		}

		return tx.Create(&university.University{
			Name:        "University of Tokyo",
			Country:     "Japan",
			City:        "Tokyo",
			Ranking:     28,
			TuitionFee:  decimal.RequireFromString("535800"),
			Currency:    "JPY",
			IsPublished: true,
		}).Error
	})
}

// ImportUniversities reads a CSV with a header row and upserts universities by name and country
func ImportUniversities(db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return 0, fmt.Errorf("CSV file is empty or has only headers")
	}

	// Map header names to column indexes so column order does not matter
	header := map[string]int{}
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"name", "country"} {
		if _, ok := header[required]; !ok {
			return 0, fmt.Errorf("CSV is missing the %q column", required)
		}
	}
	get := func(row []string, col string) string {
		if i, ok := header[col]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	count := 0
	for line, row := range records[1:] {
		uni := university.University{
			Name:        get(row, "name"),
			Country:     get(row, "country"),
			City:        get(row, "city"),
			Website:     get(row, "website"),
			Currency:    strings.ToUpper(get(row, "currency")),
			IsPublished: true,
		}
		if uni.Name == "" || uni.Country == "" {
			continue
		}
		if uni.Currency == "" {
			uni.Currency = "USD"
		}
		if v := get(row, "ranking"); v != "" {
			if uni.Ranking, err = strconv.Atoi(v); err != nil {
				return count, fmt.Errorf("line %d: bad ranking %q", line+2, v)
			}
		}
		if v := get(row, "tuitionfee"); v != "" {
			if uni.TuitionFee, err = decimal.NewFromString(v); err != nil {
				return count, fmt.Errorf("line %d: bad tuitionFee %q", line+2, v)
			}
		}

		var existing university.University
		err := db.Where("name = ? AND country = ? AND is_deleted = ?", uni.Name, uni.Country, false).First(&existing).Error
		switch {
		case err == nil:
			uni.ID = existing.ID
			err = db.Model(&existing).Updates(map[string]interface{}{
				"city":        uni.City,
				"website":     uni.Website,
				"ranking":     uni.Ranking,
				"tuition_fee": uni.TuitionFee,
				"currency":    uni.Currency,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = db.Create(&uni).Error
		}
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line+2, err)
		}
		count++
	}
	return count, nil
}
