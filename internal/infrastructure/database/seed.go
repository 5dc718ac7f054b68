package database

import (
	"context"
	"fmt"
	"time"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/infrastructure/auth"
	"apptracker/internal/pkg/logger"

	"gorm.io/gorm"
)

const (
	SeedAdminEmail      = "admin@example.com"
	SeedAdminPassword   = "admin123"
	SeedStudentEmail    = "student@example.com"
	SeedStudentPassword = "student123"
)

// Seed fills an empty database with demo accounts and universities.
// Tables that already hold rows are left alone.
func Seed(ctx context.Context, db *gorm.DB, bcryptCost int, log logger.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users int64
		if err := tx.Model(&entity.User{}).Count(&users).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if users == 0 {
			if err := seedUsers(tx, bcryptCost); err != nil {
				return err
			}
			log.Info("Seeded demo users.")
		}

		var universities int64
		if err := tx.Model(&entity.University{}).Count(&universities).Error; err != nil {
			return fmt.Errorf("failed to count universities: %w", err)
		}
		if universities == 0 {
			if err := seedUniversities(tx); err != nil {
				return err
			}
			log.Info("Seeded sample universities.")
		}
		return nil
	})
}

func seedUsers(tx *gorm.DB, cost int) error {
	accounts := []struct {
		email, password, name string
		role                  constant.Role
		lang                  string
	}{
		{SeedAdminEmail, SeedAdminPassword, "Administrator", constant.RoleAdmin, "zh"},
		{SeedStudentEmail, SeedStudentPassword, "Zhang San", constant.RoleStudent, "zh"},
	}
	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password, cost)
		if err != nil {
			return err
		}
		user := &entity.User{
			Email:        a.email,
			PasswordHash: hash,
			Name:         a.name,
			Role:         a.role,
			Language:     a.lang,
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", a.email, err)
		}
		if a.role == constant.RoleStudent {
			welcome := &entity.Notification{
				UserID:  user.ID,
				Type:    constant.NotificationSystemAlert,
				Title:   "欢迎使用大学申请跟踪系统",
				Message: "现在您可以开始管理您的大学申请了。",
			}
			if err := tx.Create(welcome).Error; err != nil {
				return fmt.Errorf("failed to seed welcome notification: %w", err)
			}
		}
	}
	return nil
}

func seedUniversities(tx *gorm.DB) error {
	type seedProgram struct {
		name   string
		degree constant.DegreeType
		months int
		toefl  int
	}
	samples := []struct {
		name, country, state, city, website, description string
		ranking                                          int
		acceptance, domestic, international              float64
		deadline                                         string
		programs                                         []seedProgram
	}{
		{"Harvard University", "United States", "Massachusetts", "Cambridge", "https://www.harvard.edu",
			"Private research university", 1, 4.6, 54768, 54768, "2025-01-01",
			[]seedProgram{{"Computer Science", constant.DegreeBachelor, 48, 100}, {"Economics", constant.DegreePhD, 60, 100}}},
		{"Stanford University", "United States", "California", "Stanford", "https://www.stanford.edu",
			"Private research university", 2, 4.3, 56169, 56169, "2025-01-02",
			[]seedProgram{{"Computer Science", constant.DegreeMaster, 24, 100}}},
		{"Massachusetts Institute of Technology", "United States", "Massachusetts", "Cambridge", "https://www.mit.edu",
			"Science and engineering university", 3, 6.7, 55878, 55878, "2025-01-03",
			[]seedProgram{{"Electrical Engineering", constant.DegreeBachelor, 48, 90}}},
		{"University of Oxford", "United Kingdom", "England", "Oxford", "https://www.ox.ac.uk",
			"Oldest university in the English-speaking world", 4, 17.5, 9250, 39000, "2025-01-10",
			[]seedProgram{{"Mathematics", constant.DegreeBachelor, 36, 110}}},
		{"University of Toronto", "Canada", "Ontario", "Toronto", "https://www.utoronto.ca",
			"Public research university", 18, 43.0, 6100, 45000, "2025-01-30",
			[]seedProgram{{"Data Science", constant.DegreeMaster, 16, 93}}},
		{"The University of Tokyo", "Japan", "Tokyo", "Tokyo", "https://www.u-tokyo.ac.jp",
			"National research university", 23, 35.2, 535800, 535800, "2025-01-15",
			[]seedProgram{{"Information Science", constant.DegreeMaster, 24, 80}}},
	}

	for _, s := range samples {
		deadline, err := time.Parse("2006-01-02", s.deadline)
		if err != nil {
			return fmt.Errorf("bad seed deadline %s: %w", s.deadline, err)
		}
		university := &entity.University{
			Name:                 s.name,
			Country:              s.country,
			State:                ptr(s.state),
			City:                 ptr(s.city),
			Website:              ptr(s.website),
			Description:          ptr(s.description),
			Ranking:              ptr(s.ranking),
			AcceptanceRate:       ptr(s.acceptance),
			TuitionDomestic:      ptr(s.domestic),
			TuitionInternational: ptr(s.international),
			ApplicationDeadline:  &deadline,
		}
		if err := tx.Create(university).Error; err != nil {
			return fmt.Errorf("failed to seed university %s: %w", s.name, err)
		}
		for _, p := range s.programs {
			program := &entity.Program{
				UniversityID:      university.ID,
				Name:              p.name,
				DegreeType:        p.degree,
				Duration:          ptr(p.months),
				MinTOEFL:          ptr(p.toefl),
				RequiredDocuments: "transcript,personal_statement,recommendation_letters",
			}
			if err := tx.Create(program).Error; err != nil {
				return fmt.Errorf("failed to seed program %s: %w", p.name, err)
			}
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
