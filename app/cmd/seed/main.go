// Command seed bootstraps super admin accounts from a YAML file so a fresh
// deployment has at least one caller allowed to provision everyone else.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"school-admin-service/app/config"
	"school-admin-service/app/domain"
	"school-admin-service/app/driver/kratos"
	"school-admin-service/app/driver/postgres"
	"school-admin-service/app/gateway"
	"school-admin-service/app/port"
	"school-admin-service/app/utils/logger"
)

// SeedFile is the YAML document the tool consumes
type SeedFile struct {
	Admins []SeedAdmin `yaml:"admins"`
}

// SeedAdmin is one super admin account to bootstrap
type SeedAdmin struct {
	Email             string `yaml:"email"`
	FullName          string `yaml:"full_name"`
	Phone             string `yaml:"phone"`
	Address           string `yaml:"address"`
	TemporaryPassword string `yaml:"temporary_password"`
}

func main() {
	var (
		seedPath = flag.String("file", "seed.yaml", "Path to the seed YAML file")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	seed, err := loadSeedFile(*seedPath)
	if err != nil {
		appLogger.Error("Failed to load seed file", "path", *seedPath, "error", err)
		os.Exit(1)
	}

	if len(seed.Admins) == 0 {
		appLogger.Info("Seed file lists no admins, nothing to do", "path", *seedPath)
		return
	}

	db, err := postgres.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	kratosClient, err := kratos.NewClient(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize Kratos client", "error", err)
		os.Exit(1)
	}

	identityGateway := gateway.NewIdentityGateway(
		kratos.NewIdentityAdapter(kratosClient, appLogger), appLogger)
	profileRepo := postgres.NewProfileRepository(db.Pool(), appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var failed int
	for _, admin := range seed.Admins {
		if err := seedAdmin(ctx, identityGateway, profileRepo, admin, appLogger); err != nil {
			appLogger.Error("Failed to seed admin", "email", admin.Email, "error", err)
			failed++
		}
	}

	if failed > 0 {
		appLogger.Error("Seeding finished with failures",
			"failed", failed,
			"total", len(seed.Admins))
		os.Exit(1)
	}

	appLogger.Info("Seeding finished", "admins", len(seed.Admins))
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}

	return &seed, nil
}

// seedAdmin creates the identity and super admin profile for one entry,
// skipping entries whose email already has an identity. A profile failure
// deletes the just-created identity so reruns start clean.
func seedAdmin(
	ctx context.Context,
	identityGateway port.IdentityGateway,
	profileRepo port.ProfileRepository,
	admin SeedAdmin,
	log *slog.Logger,
) error {
	existing, err := identityGateway.FindIdentityByEmail(ctx, admin.Email)
	if err != nil && !errors.Is(err, domain.ErrIdentityNotFound) {
		return err
	}
	if existing != nil {
		log.Info("Admin identity already exists, skipping", "email", admin.Email)
		return nil
	}

	identity, err := identityGateway.CreateIdentity(ctx, domain.NewIdentityInput{
		Email:             admin.Email,
		FullName:          admin.FullName,
		TemporaryPassword: admin.TemporaryPassword,
	})
	if err != nil {
		return err
	}

	profile, err := domain.NewProfile(identity.ID, domain.RoleSuperAdmin,
		admin.FullName, admin.Phone, admin.Address)
	if err != nil {
		_ = identityGateway.DeleteIdentity(ctx, identity.ID)
		return err
	}

	if err := profileRepo.Create(ctx, profile); err != nil {
		_ = identityGateway.DeleteIdentity(ctx, identity.ID)
		return err
	}

	log.Info("Seeded super admin", "email", admin.Email, "profile_id", profile.ID)
	return nil
}
