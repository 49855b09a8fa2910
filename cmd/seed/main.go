package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// demoJob is a static seed posting owned by the admin user.
type demoJob struct {
	Title       string
	Company     string
	CompanyURL  string
	Location    string
	Description string
}

var demoJobs = []demoJob{
	{
		Title:       "Backend Engineer",
		Company:     "Acme",
		CompanyURL:  "https://acme.example.com",
		Location:    "Remote",
		Description: "Build and operate the job board API.",
	},
	{
		Title:       "Data Engineer",
		Company:     "Initech",
		CompanyURL:  "https://initech.example.com",
		Location:    "Berlin",
		Description: "Own the reporting pipeline end to end.",
	},
	{
		Title:       "SRE",
		Company:     "Globex",
		Location:    "Remote",
		Description: "Keep the lights on and the pagers quiet.",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	ctx := context.Background()

	admin, created, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if created {
		log.Printf("Created superuser %s", admin.Email)
	} else {
		log.Printf("Superuser %s already exists, skipping", admin.Email)
	}

	seeded, err := seedJobs(ctx, jobRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo jobs created: %d", seeded)
}

// seedAdmin creates the superuser account if it does not exist yet.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, bool, error) {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@jobboard.local")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, false, err
	}

	admin := &model.User{
		Username:     getEnv("SEED_ADMIN_USERNAME", "admin"),
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
		IsSuperuser:  true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

// seedJobs creates the demo postings, skipping any the owner already has.
func seedJobs(ctx context.Context, repo repository.JobRepository, ownerID uint) (int, error) {
	existing, err := repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, job := range existing {
		if job.OwnerID == ownerID {
			have[job.Title] = true
		}
	}

	now := time.Now().UTC()
	datePosted := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	seeded := 0
	for _, dj := range demoJobs {
		if have[dj.Title] {
			continue
		}
		job := &model.Job{
			Title:       dj.Title,
			Company:     dj.Company,
			CompanyURL:  dj.CompanyURL,
			Location:    dj.Location,
			Description: dj.Description,
			DatePosted:  datePosted,
			IsActive:    true,
			OwnerID:     ownerID,
		}
		if err := repo.Create(ctx, job); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
