package repo

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2024_11_02_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(
					&database.Account{},
					&database.User{},
					&database.Transaction{},
					&database.Category{},
				)
			},
		},
		{
			ID: "2024_12_14_AddDuplicateKeys",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(&database.DuplicateKey{})
			},
		},
	}
}

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	log.Info().Msg("[Db] start migrations")

	return errors.Wrap(m.Migrate(), "migrate")
}
