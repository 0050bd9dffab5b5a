package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"noticeboard/internal/config"
	"noticeboard/internal/db"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
)

const (
	adminName     = "Admin"
	adminEmail    = "admin@noticeboard.local"
	adminPassword = "changeme"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Notice{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	noticeRepo := repository.NewNoticeRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedNotices(ctx, gormDB, noticeRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed notices: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Admin account: %s", adminEmail)
	log.Printf("  - New notices created: %d", created)
}

// seedAdmin provisions the bootstrap admin account, reusing it when present.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin user already present, skipping")
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Printf("Created admin user %s (change the password after first login)", adminEmail)
	return admin, nil
}

// seedNotices inserts a small sample set, skipping ones already present by
// title and event date so the script stays idempotent.
func seedNotices(ctx context.Context, gormDB *gorm.DB, repo repository.NoticeRepository, createdBy uint) (int, error) {
	now := time.Now()
	samples := []model.Notice{
		{Title: "Winter break", Date: time.Date(now.Year(), 12, 25, 0, 0, 0, 0, time.UTC), Type: model.TypeLeave},
		{Title: "Semester registration opens", Date: now.AddDate(0, 0, 7), Type: model.TypeCollege},
		{Title: "Campus maintenance day", Date: now.AddDate(0, 0, 14), Type: model.TypeCollege},
	}

	created := 0
	for _, sample := range samples {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Notice{}).
			Where("title = ? AND date = ?", sample.Title, sample.Date).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		sample.CreatedBy = createdBy
		if err := repo.Create(ctx, &sample); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
