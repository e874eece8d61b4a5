package repository

const (
	selectSubscription = `SELECT
		id,
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
	FROM webhook_subscriptions`
)
