package duplicatecleaner

import (
	"context"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package duplicatecleaner_test -source=interfaces.go

type Repo interface {
	IsDuplicateKeyExists(ctx context.Context, key string) (bool, error)
	AddDuplicateKey(ctx context.Context, key string) error
}
