// Package impl contains the implementation of the application's business logic.
package impl

import (
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/errors"
)

// parseUserID validates a user reference coming from a path or a token.
func parseUserID(raw string) (entity.ID, error) {
	id, ok := entity.ParseID(raw)
	if !ok {
		return entity.NilID, domainerrors.ErrInvalidIdentity
	}

	return id, nil
}

// parseID validates any other record reference.
func parseID(raw string) (entity.ID, error) {
	id, ok := entity.ParseID(raw)
	if !ok {
		return entity.NilID, domainerrors.ErrInvalidID
	}

	return id, nil
}

// mapRepoError turns repository sentinels into their AppError and wraps everything else.
func mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	case errors.Is(err, repository.ErrDuplicateUser):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, message)
	case errors.Is(err, repository.ErrPostNotFound):
		return errors.Wrap(domainerrors.ErrPostNotFound, message)
	case errors.Is(err, repository.ErrCommentNotFound):
		return errors.Wrap(domainerrors.ErrCommentNotFound, message)
	case errors.Is(err, repository.ErrNotificationNotFound):
		return errors.Wrap(domainerrors.ErrNotificationNotFound, message)
	case errors.Is(err, repository.ErrMessageNotFound):
		return errors.Wrap(domainerrors.ErrNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}
