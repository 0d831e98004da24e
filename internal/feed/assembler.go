package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/internal/mute"
	"github.com/fritter-app/fritter/pkg/logging"
	"github.com/fritter-app/fritter/pkg/telemetry"
)

// UserStore resolves users by id
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// FreetStore lists an author's freets in store order (newest first)
type FreetStore interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Freet, error)
}

// FollowStore lists who a user follows, in follow-creation order
type FollowStore interface {
	ListFollowing(ctx context.Context, followerID int64) ([]models.Follow, error)
}

// MembershipStore answers circle-membership existence checks
type MembershipStore interface {
	IsMember(ctx context.Context, circlename string, ownerID, userID int64) (bool, error)
}

// RuleSource yields the currently active mute rules for an owner,
// reaping expired ones as a side effect. *mute.Relevance satisfies it.
type RuleSource interface {
	ActiveRules(ctx context.Context, ownerID int64, now time.Time) ([]models.Mute, error)
}

// Item is one feed entry: a freet with its author's username resolved
type Item struct {
	Freet          models.Freet
	AuthorUsername string
}

// Assembler builds a viewer's personalized feed: followed authors' freets,
// gated by circle visibility and filtered through the viewer's active mute
// rules.
type Assembler struct {
	users       UserStore
	freets      FreetStore
	follows     FollowStore
	memberships MembershipStore
	rules       RuleSource
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssembler creates a feed assembler
func NewAssembler(users UserStore, freets FreetStore, follows FollowStore, memberships MembershipStore, rules RuleSource) *Assembler {
	return &Assembler{
		users:       users,
		freets:      freets,
		follows:     follows,
		memberships: memberships,
		rules:       rules,
		logger:      logging.GetLogger().With(zap.String("component", "feed-assembler")),
		now:         time.Now,
	}
}

// Assemble returns the viewer's feed. Authors appear in following-list
// order; within one author the store's own order is preserved. There is no
// global re-sort across authors. Evaluating the rule set deletes the
// viewer's expired mutes, so assembling a feed mutates mute storage.
func (a *Assembler) Assemble(ctx context.Context, viewerID int64) ([]Item, error) {
	ctx, span := telemetry.StartSpan(ctx, "feed.assemble")
	defer span.End()

	now := a.now()

	follows, err := a.follows.ListFollowing(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	rules, err := a.rules.ActiveRules(ctx, viewerID, now)
	if err != nil {
		return nil, err
	}

	// Resolve muted-account usernames once per rule set
	accountNames := make(map[int64]string)
	for _, r := range rules {
		if !r.AccountID.Valid {
			continue
		}
		if _, ok := accountNames[r.AccountID.Int64]; ok {
			continue
		}
		account, err := a.users.GetByID(ctx, r.AccountID.Int64)
		if err != nil {
			return nil, err
		}
		accountNames[r.AccountID.Int64] = account.Username
	}

	items := make([]Item, 0)
	for _, follow := range follows {
		author, err := a.users.GetByID(ctx, follow.FollowingID)
		if err != nil {
			return nil, err
		}

		freets, err := a.freets.ListByAuthor(ctx, author.ID)
		if err != nil {
			return nil, err
		}

		preds, err := a.resolvePredicates(ctx, rules, accountNames, viewerID, author.ID)
		if err != nil {
			return nil, err
		}

		for _, f := range freets {
			visible, err := Visible(ctx, a.memberships, f, viewerID)
			if err != nil {
				return nil, err
			}
			if !visible {
				continue
			}

			muted := false
			for _, p := range preds {
				if p.Matches(f.Content, author.Username) {
					muted = true
					break
				}
			}
			if !muted {
				items = append(items, Item{Freet: f, AuthorUsername: author.Username})
			}
		}
	}

	a.logger.Debug("Assembled feed",
		zap.Int64("viewer_id", viewerID),
		zap.Int("following", len(follows)),
		zap.Int("active_rules", len(rules)),
		zap.Int("items", len(items)))

	return items, nil
}

// resolvePredicates binds the rule set to one candidate author: the muted
// account's username and whether this author sits in each rule's circle.
// Circle ownership is the rule owner's, i.e. the viewer's.
func (a *Assembler) resolvePredicates(ctx context.Context, rules []models.Mute, accountNames map[int64]string, viewerID, authorID int64) ([]mute.Predicate, error) {
	preds := make([]mute.Predicate, len(rules))
	for i, r := range rules {
		var p mute.Predicate
		if r.Phrase.Valid {
			p.Phrase = r.Phrase.String
		}
		if r.AccountID.Valid {
			p.AccountUsername = accountNames[r.AccountID.Int64]
		}
		if r.CircleName.Valid {
			p.HasCircle = true
			member, err := a.memberships.IsMember(ctx, r.CircleName.String, viewerID, authorID)
			if err != nil {
				return nil, err
			}
			p.AuthorInCircle = member
		}
		preds[i] = p
	}
	return preds, nil
}

// Visible reports whether the viewer may see the freet. A circle-scoped
// freet is visible only to members of that circle, which the author owns,
// and to the author. viewerID 0 denotes an anonymous viewer.
func Visible(ctx context.Context, memberships MembershipStore, f models.Freet, viewerID int64) (bool, error) {
	if !f.CircleName.Valid {
		return true, nil
	}
	if viewerID == 0 {
		return false, nil
	}
	if f.AuthorID == viewerID {
		return true, nil
	}
	return memberships.IsMember(ctx, f.CircleName.String, f.AuthorID, viewerID)
}
