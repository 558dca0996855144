package duplicatecleaner

import (
	"context"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
)

type DuplicateCleaner struct {
	repo Repo
}

func NewDuplicateCleaner(
	repo Repo,
) *DuplicateCleaner {
	return &DuplicateCleaner{
		repo: repo,
	}
}

// MessageKey identifies one delivery of a message. Empty when the gateway sent no message id.
func MessageKey(from string, messageID string) string {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return ""
	}

	return common.NormalizeHandle(from) + ":" + messageID
}

func (d *DuplicateCleaner) IsDuplicate(
	ctx context.Context,
	key string,
) (bool, error) {
	if key == "" {
		return false, nil
	}

	return d.repo.IsDuplicateKeyExists(ctx, d.HashKey(key))
}

func (d *DuplicateCleaner) AddDuplicateKey(
	ctx context.Context,
	key string,
) error {
	if key == "" {
		return nil
	}

	return d.repo.AddDuplicateKey(ctx, d.HashKey(key))
}

func (d *DuplicateCleaner) HashKey(bv string) string {
	shaImpl := sha512.New()
	shaImpl.Write([]byte(bv))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}
