package mute

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/logging"
)

// RuleStore is the slice of the mute store the relevance filter needs.
// *db.MuteRepository satisfies it.
type RuleStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Mute, error)
	Delete(ctx context.Context, id int64) error
}

// Relevance decides which of an owner's mutes currently apply. Expiry is
// lazy: rules past their duration_end are deleted the next time the owner's
// rule set is evaluated. Reaping and listing are separate steps so the reap
// can also be driven by a scheduler without changing observable behavior.
type Relevance struct {
	rules  RuleStore
	logger *zap.Logger
}

// NewRelevance creates a relevance filter over the given rule store
func NewRelevance(rules RuleStore) *Relevance {
	return &Relevance{
		rules:  rules,
		logger: logging.GetLogger().With(zap.String("component", "mute-relevance")),
	}
}

// ReapExpired deletes every rule owned by ownerID whose expiry lies before
// now and returns the survivors in insertion order. Deletion is permanent;
// an expired rule never matches again, even within the same evaluation.
func (r *Relevance) ReapExpired(ctx context.Context, ownerID int64, now time.Time) ([]models.Mute, error) {
	mutes, err := r.rules.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	survivors := mutes[:0]
	for _, m := range mutes {
		if m.DurationEnd.Valid && m.DurationEnd.Time.Before(now) {
			if err := r.rules.Delete(ctx, m.ID); err != nil {
				return nil, err
			}
			r.logger.Debug("Reaped expired mute",
				zap.Int64("mute_id", m.ID),
				zap.Int64("owner_id", ownerID),
				zap.Time("expired_at", m.DurationEnd.Time))
			continue
		}
		survivors = append(survivors, m)
	}

	return survivors, nil
}

// ActiveRules reaps expired rules, then filters the survivors down to the
// ones whose daily window contains now's clock time. Rules without a window
// are always active. Order is insertion order of the surviving rules.
func (r *Relevance) ActiveRules(ctx context.Context, ownerID int64, now time.Time) ([]models.Mute, error) {
	survivors, err := r.ReapExpired(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	active := survivors[:0]
	for _, m := range survivors {
		if m.StartMins.Valid && m.EndMins.Valid &&
			!WindowContains(int(m.StartMins.Int16), int(m.EndMins.Int16), now) {
			continue
		}
		active = append(active, m)
	}

	return active, nil
}
