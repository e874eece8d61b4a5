package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// UpsertSubscription inserts or updates a subscription keyed by its remote
// webhook id, so a toggle is always a single idempotent write.
func (r *Repository) UpsertSubscription(ctx context.Context, s entity.Subscription) (entity.Subscription, error) {
	const q = `
	INSERT INTO webhook_subscriptions (
		category,
		entity_type,
		action,
		url,
		remote_id,
		href,
		account_id,
		enabled,
		document_kind,
		link_policy,
		document_priority,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (remote_id) DO UPDATE SET
		category = EXCLUDED.category,
		entity_type = EXCLUDED.entity_type,
		action = EXCLUDED.action,
		url = EXCLUDED.url,
		href = EXCLUDED.href,
		account_id = EXCLUDED.account_id,
		enabled = EXCLUDED.enabled,
		document_kind = EXCLUDED.document_kind,
		link_policy = EXCLUDED.link_policy,
		document_priority = EXCLUDED.document_priority,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at
	`

	now := time.Now()

	err := r.db.QueryRow(
		ctx,
		q,
		s.Category,
		s.EntityType,
		s.Action,
		s.URL,
		s.RemoteID,
		zeronull.Text(s.Href),
		zeronull.Text(s.AccountID),
		s.Enabled,
		s.DocumentKind,
		s.LinkPolicy,
		s.Priority,
		now,
		now,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return entity.Subscription{}, err
	}

	s.UpdatedAt = now

	return s, nil
}

// SubscriptionByCategory returns the most recent record for a category,
// enabled or not. Highest id wins on concurrent toggles.
func (r *Repository) SubscriptionByCategory(ctx context.Context, category entity.PaymentCategory) (entity.Subscription, error) {
	q := selectSubscription + " WHERE category = $1 ORDER BY id DESC LIMIT 1"
	return scanSubscription(r.db.QueryRow(ctx, q, category))
}

func (r *Repository) SubscriptionByRemoteID(ctx context.Context, remoteID string) (entity.Subscription, error) {
	q := selectSubscription + " WHERE remote_id = $1"
	return scanSubscription(r.db.QueryRow(ctx, q, remoteID))
}

// ActiveSubscription resolves the enabled subscription an inbound event is
// dispatched against.
func (r *Repository) ActiveSubscription(
	ctx context.Context,
	accountID, entityType string,
	category entity.PaymentCategory,
) (entity.Subscription, error) {
	stmt := sq.Select("id").
		From("webhook_subscriptions").
		Where(sq.Eq{
			"entity_type": entityType,
			"category":    category,
			"enabled":     true,
		}).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	if accountID != "" {
		stmt = stmt.Where(sq.Eq{"account_id": accountID})
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.Subscription{}, err
	}

	var id int64

	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Subscription{}, entity.ErrNotFound
		}

		return entity.Subscription{}, err
	}

	q := selectSubscription + " WHERE id = $1"

	return scanSubscription(r.db.QueryRow(ctx, q, id))
}

// UpdateLinkSettings mutates the link metadata of the latest enabled record
// for a category without touching the remote registry.
func (r *Repository) UpdateLinkSettings(
	ctx context.Context,
	category entity.PaymentCategory,
	kind entity.DocumentKind,
	policy entity.LinkPolicy,
	priority entity.DocumentPriority,
	updatedAt time.Time,
) (entity.Subscription, error) {
	const q = `
	UPDATE webhook_subscriptions SET
		document_kind = $1,
		link_policy = $2,
		document_priority = $3,
		updated_at = $4
	WHERE id = (
		SELECT id FROM webhook_subscriptions
		WHERE category = $5 AND enabled = TRUE
		ORDER BY id DESC
		LIMIT 1
	)
	RETURNING id
	`

	var id int64

	err := r.db.QueryRow(ctx, q, kind, policy, priority, updatedAt, category).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Subscription{}, entity.ErrNotFound
		}

		return entity.Subscription{}, err
	}

	sel := selectSubscription + " WHERE id = $1"

	return scanSubscription(r.db.QueryRow(ctx, sel, id))
}

// Subscriptions returns every record, newest first, for status reporting.
func (r *Repository) Subscriptions(ctx context.Context) (subs []entity.Subscription, err error) {
	q := selectSubscription + " ORDER BY id DESC"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}

		subs = append(subs, s)
	}

	return subs, nil
}

func scanSubscription(row pgx.Row) (s entity.Subscription, err error) {
	err = row.Scan(
		&s.ID,
		&s.Category,
		&s.EntityType,
		&s.Action,
		&s.URL,
		&s.RemoteID,
		(*zeronull.Text)(&s.Href),
		(*zeronull.Text)(&s.AccountID),
		&s.Enabled,
		&s.DocumentKind,
		&s.LinkPolicy,
		&s.Priority,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Subscription{}, entity.ErrNotFound
		}

		return entity.Subscription{}, err
	}

	return s, nil
}
