package usecase

import (
	"errors"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/policy"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/logger"
)

// classify passes typed errors through and turns anything else into an
// Internal error, logging the cause under op.
func classify(log *logger.Logger, op string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	log.Error("%s: %v", op, err)
	return apperror.Internal(op+" failed", err)
}

// authorize runs the policy decision and logs denials of authenticated
// actors.
func authorize(log *logger.Logger, actor *entity.Actor, action policy.Action, res policy.Resource, resourceID string) error {
	if err := policy.Authorize(actor, action, res); err != nil {
		if actor != nil {
			log.Warn("Denied %s: actor=%s resource=%s", action, actor.ID, resourceID)
		}
		return err
	}
	return nil
}
