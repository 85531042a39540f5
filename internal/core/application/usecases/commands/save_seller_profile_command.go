package commands

import (
	"context"
	"errors"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/guard"
)

var ErrSaveSellerProfileCommandIsNotConstructed = errors.New(
	"SaveSellerProfileCommand must be created via NewSaveSellerProfileCommand constructor",
)

// SaveSellerProfileCommand creates or replaces the seller profile.
type SaveSellerProfileCommand struct {
	profile *seller.Profile
	guard   guard.ConstructorGuard
}

func NewSaveSellerProfileCommand(fields seller.Fields) (SaveSellerProfileCommand, error) {
	profile, err := seller.NewProfile(fields)
	if err != nil {
		return SaveSellerProfileCommand{}, err
	}
	return SaveSellerProfileCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveSellerProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveSellerProfileCommandIsNotConstructed)
}

func (c SaveSellerProfileCommand) Profile() *seller.Profile {
	return c.profile
}

// ProfileResult is the saved profile plus the confirmation for the seller.
type ProfileResult struct {
	Profile *seller.Profile
	Notice  notices.Notice
}

type SaveSellerProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
	notifier   ports.Notifier
}

func NewSaveSellerProfileCommandHandler(uowFactory ProfileUoWFactory, notifier ports.Notifier) SaveSellerProfileCommandHandler {
	return SaveSellerProfileCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h *SaveSellerProfileCommandHandler) Handle(ctx context.Context, cmd SaveSellerProfileCommand) (ProfileResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProfileResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProfileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SellerProfileRepository().Save(ctx, cmd.Profile()); err != nil {
		return ProfileResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ProfileResult{}, err
	}

	notice := notices.ProfileSaved()
	notify(ctx, h.notifier, notice)

	return ProfileResult{Profile: cmd.Profile(), Notice: notice}, nil
}
