package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

type Gorm struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGorm expects a db opened with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{
		db:  db,
		now: time.Now,
	}
}

func (g *Gorm) GetUser(ctx context.Context, phoneNumber string) (*database.User, error) {
	var user database.User

	err := g.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(common.ErrNotFound, "user %s", phoneNumber)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "get user %s", phoneNumber)
	}

	return &user, nil
}

func (g *Gorm) AddUser(ctx context.Context, user *database.User) error {
	return addUser(g.db.WithContext(ctx), user, g.now())
}

func addUser(db *gorm.DB, user *database.User, now time.Time) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = now.UTC()
	}

	err := db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrapf(common.ErrAlreadyRegistered, "user %s", user.PhoneNumber)
	}

	if err != nil {
		return errors.Mark(errors.Wrapf(err, "add user %s", user.PhoneNumber), common.ErrPersistence)
	}

	return nil
}

func (g *Gorm) CreateAccount(ctx context.Context, name string) (*database.Account, error) {
	return createAccount(g.db.WithContext(ctx), name, g.now())
}

func createAccount(db *gorm.DB, name string, now time.Time) (*database.Account, error) {
	account := &database.Account{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now.UTC(),
	}

	if err := db.Create(account).Error; err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "create account %s", name), common.ErrPersistence)
	}

	return account, nil
}

// CreateAccountWithOwner creates the account and its first user atomically.
func (g *Gorm) CreateAccountWithOwner(
	ctx context.Context,
	accountName string,
	owner *database.User,
) (*database.Account, error) {
	var account *database.Account

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := createAccount(tx, accountName, g.now())
		if err != nil {
			return err
		}

		owner.AccountID = created.ID
		owner.Role = database.RoleOwner

		if err = addUser(tx, owner, g.now()); err != nil {
			return err
		}

		account = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (g *Gorm) SaveTransaction(ctx context.Context, tx *database.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = g.now().UTC()
	}

	tx.Date = tx.Date.UTC()

	if err := g.db.WithContext(ctx).Create(tx).Error; err != nil {
		return errors.Mark(errors.Wrapf(err, "save transaction %s", tx.ID), common.ErrPersistence)
	}

	return nil
}

// GetTransactions returns the account transactions with date in [from, to), oldest first.
func (g *Gorm) GetTransactions(
	ctx context.Context,
	accountID string,
	from time.Time,
	to time.Time,
) ([]*database.Transaction, error) {
	var records []*database.Transaction

	err := g.db.WithContext(ctx).
		Where("account_id = ? AND date >= ? AND date < ?", accountID, from.UTC(), to.UTC()).
		Order("date asc").
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get transactions for %s", accountID)
	}

	return records, nil
}

// DeleteTransaction removes the newest row of the account matching the record. Dates match to the second.
func (g *Gorm) DeleteTransaction(ctx context.Context, accountID string, record database.TransactionRecord) error {
	date := record.Date.UTC().Truncate(time.Second)

	var match database.Transaction

	err := g.db.WithContext(ctx).
		Where("account_id = ? AND type = ? AND category = ? AND amount = ? AND description = ?",
			accountID, record.Type, record.Category, record.Amount, record.Description).
		Where("date >= ? AND date < ?", date, date.Add(time.Second)).
		Order("created_at desc").
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(common.ErrNotFound, "transaction of %s", accountID)
	}

	if err != nil {
		return errors.Wrapf(err, "find transaction of %s", accountID)
	}

	if err = g.db.WithContext(ctx).Delete(&match).Error; err != nil {
		return errors.Mark(errors.Wrapf(err, "delete transaction %s", match.ID), common.ErrPersistence)
	}

	return nil
}

func (g *Gorm) UpdateEmbedding(ctx context.Context, transactionID string, embedding []float64) error {
	res := g.db.WithContext(ctx).
		Model(&database.Transaction{ID: transactionID}).
		Select("Embedding").
		Updates(&database.Transaction{Embedding: embedding})
	if res.Error != nil {
		return errors.Mark(errors.Wrapf(res.Error, "update embedding %s", transactionID), common.ErrPersistence)
	}

	if res.RowsAffected == 0 {
		return errors.Wrapf(common.ErrNotFound, "transaction %s", transactionID)
	}

	return nil
}

func (g *Gorm) GetCategories(ctx context.Context, accountID string) ([]string, error) {
	var names []string

	err := g.db.WithContext(ctx).
		Model(&database.Category{}).
		Where("account_id = ?", accountID).
		Order("name asc").
		Pluck("name", &names).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get categories of %s", accountID)
	}

	return names, nil
}

func (g *Gorm) EnsureCategory(
	ctx context.Context,
	accountID string,
	name string,
	txType database.TransactionType,
) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&database.Category{
			ID:        uuid.NewString(),
			AccountID: accountID,
			Name:      name,
			Type:      txType,
			CreatedAt: g.now().UTC(),
		}).Error
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "ensure category %s", name), common.ErrPersistence)
	}

	return nil
}

func (g *Gorm) IsDuplicateKeyExists(ctx context.Context, key string) (bool, error) {
	var count int64

	if err := g.db.WithContext(ctx).Model(&database.DuplicateKey{}).Where("id = ?", key).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check duplicate key")
	}

	return count > 0, nil
}

func (g *Gorm) AddDuplicateKey(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&database.DuplicateKey{ID: key, CreatedAt: g.now().UTC()}).Error
	if err != nil {
		return errors.Mark(errors.Wrap(err, "add duplicate key"), common.ErrPersistence)
	}

	return nil
}
