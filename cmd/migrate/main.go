// Command migrate creates the schema and seeds the reference data: the Admin
// and User roles plus the initial Admin account.
package main

import (
	"log/slog"
	"os"

	"eshop/config"
	"eshop/internal/domain/entity"
	"eshop/internal/infra/auth"
	logs "eshop/internal/infra/log"
	"eshop/internal/infra/persistence/model"
	"eshop/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const adminSeedPassword = "Pa55w0rd!"

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	logger.Info("Running schema migration")
	if err := db.AutoMigrate(
		&model.RoleModel{},
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := seed(db, cfg, logger); err != nil {
		return err
	}

	logger.Info("Migration completed")

	return nil
}

// seed inserts the Admin/User roles and the initial Admin account. It only
// runs against an empty roles table, so re-running the migration is safe.
func seed(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	var roleCount int64
	if err := db.Model(&model.RoleModel{}).Count(&roleCount).Error; err != nil {
		return errors.Wrap(err, "count roles")
	}
	if roleCount > 0 {
		logger.Info("Roles already present, skipping seed")

		return nil
	}

	hasher, err := auth.NewHMACPasswordHasher(cfg)
	if err != nil {
		return err
	}

	hashedPassword, err := hasher.Hash(adminSeedPassword)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		adminRole := &model.RoleModel{Name: entity.RoleAdmin}
		userRole := &model.RoleModel{Name: entity.RoleUser}
		if err := tx.Create(adminRole).Error; err != nil {
			return errors.Wrap(err, "seed admin role")
		}
		if err := tx.Create(userRole).Error; err != nil {
			return errors.Wrap(err, "seed user role")
		}

		admin := &model.UserModel{
			UserName:       entity.RoleAdmin,
			HashedPassword: hashedPassword,
			RoleID:         adminRole.ID,
		}
		if err := tx.Create(admin).Error; err != nil {
			return errors.Wrap(err, "seed admin user")
		}

		logger.Info("Seeded roles and admin account",
			slog.Any("adminRoleID", adminRole.ID),
			slog.Any("adminUserID", admin.ID),
		)

		return nil
	})
}
