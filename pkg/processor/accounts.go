package processor

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
	"github.com/skynet2/whatsapp-finance-worker/pkg/printer"
)

// Register creates a new account owned by the sender.
func (p *Processor) Register(
	ctx context.Context,
	handle string,
	cmd *intent.RegisterCommand,
) string {
	if cmd == nil {
		return printer.MsgRegisterFormat
	}

	_, err := p.cfg.Repo.GetUser(ctx, handle)
	switch {
	case err == nil:
		return printer.MsgAlreadyRegistered
	case !errors.Is(err, common.ErrNotFound):
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to check registration")

		return printer.MsgRegisterCheck
	}

	owner := &database.User{
		PhoneNumber:          handle,
		Name:                 cmd.Name,
		EnableText:           cmd.EnableText,
		EnableImage:          cmd.EnableImage,
		EnableVoice:          cmd.EnableVoice,
		CanViewSummary:       true,
		CanAddTransaction:    true,
		CanDeleteTransaction: true,
	}

	if _, err = p.cfg.Repo.CreateAccountWithOwner(ctx, cmd.Name, owner); err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			return printer.MsgAlreadyRegistered
		}

		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to register user")

		return printer.MsgRegisterFailed
	}

	zerolog.Ctx(ctx).Info().Str("account_id", owner.AccountID).Msg("user registered")

	return fmt.Sprintf("✅ Pendaftaran berhasil, selamat datang %s!", cmd.Name)
}

// Invite adds another number to the sender's account. The invitee inherits the inviter's permissions.
func (p *Processor) Invite(
	ctx context.Context,
	handle string,
	cmd *intent.InviteCommand,
) string {
	inviter, err := p.cfg.Repo.GetUser(ctx, handle)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to resolve inviter")
		}

		return printer.MsgInviterNoAccount
	}

	if inviter.AccountID == "" {
		return printer.MsgInviterUnknown
	}

	_, err = p.cfg.Repo.GetUser(ctx, cmd.PhoneNumber)
	switch {
	case err == nil:
		return printer.MsgInviteeExists
	case !errors.Is(err, common.ErrNotFound):
		zerolog.Ctx(ctx).Error().Err(err).Str("invitee", cmd.PhoneNumber).Msg("failed to check invitee")

		return printer.MsgInviteCheck
	}

	invitee := &database.User{
		PhoneNumber:          cmd.PhoneNumber,
		Name:                 "User " + cmd.PhoneNumber,
		AccountID:            inviter.AccountID,
		Role:                 database.RoleEditor,
		EnableText:           true,
		EnableImage:          inviter.EnableImage,
		EnableVoice:          inviter.EnableVoice,
		CanViewSummary:       inviter.CanViewSummary,
		CanAddTransaction:    inviter.CanAddTransaction,
		CanDeleteTransaction: inviter.CanDeleteTransaction,
	}

	if err = p.cfg.Repo.AddUser(ctx, invitee); err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			return printer.MsgInviteeExists
		}

		zerolog.Ctx(ctx).Error().Err(err).Str("invitee", cmd.PhoneNumber).Msg("failed to invite user")

		return printer.MsgInviteFailed
	}

	return fmt.Sprintf("✅ Nomor %s berhasil diundang ke akun Anda.", cmd.PhoneNumber)
}

func (p *Processor) AddCategory(
	ctx context.Context,
	handle string,
	cmd *intent.CategoryCommand,
) string {
	user, err := p.cfg.Repo.GetUser(ctx, handle)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to resolve user")
		}

		return printer.MsgRegisterHint
	}

	if err = p.cfg.Repo.EnsureCategory(ctx, user.AccountID, cmd.Name, database.TransactionTypeExpense); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("category", cmd.Name).Msg("failed to save category")

		return printer.MsgCategoryFailed
	}

	return fmt.Sprintf("✅ Kategori \"%s\" berhasil disimpan untuk akun Anda.", cmd.Name)
}
