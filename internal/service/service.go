package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	UpsertSubscription(ctx context.Context, s entity.Subscription) (entity.Subscription, error)
	SubscriptionByCategory(ctx context.Context, category entity.PaymentCategory) (entity.Subscription, error)
	ActiveSubscription(ctx context.Context, accountID, entityType string, category entity.PaymentCategory) (entity.Subscription, error)
	UpdateLinkSettings(ctx context.Context, category entity.PaymentCategory, kind entity.DocumentKind, policy entity.LinkPolicy, priority entity.DocumentPriority, updatedAt time.Time) (entity.Subscription, error)
	Subscriptions(ctx context.Context) ([]entity.Subscription, error)
}

type WebhookRegistry interface {
	Webhooks(ctx context.Context) ([]entity.RemoteWebhook, error)
	WebhookByID(ctx context.Context, id string) (entity.RemoteWebhook, error)
	CreateWebhook(ctx context.Context, entityType, action, url string) (entity.RemoteWebhook, error)
	UpdateWebhookEnabled(ctx context.Context, href string, enabled bool) (entity.RemoteWebhook, error)
}

type DocumentGateway interface {
	SearchByAgentAndSum(ctx context.Context, kind entity.DocumentKind, agentID string, sum decimal.Decimal) ([]entity.Document, error)
	SearchByAgent(ctx context.Context, kind entity.DocumentKind, agentID string, priority entity.DocumentPriority) ([]entity.Document, error)
	FindByNameAndAgent(ctx context.Context, kind entity.DocumentKind, name, agentID string) (entity.Document, error)
}

type PaymentGateway interface {
	PaymentByHref(ctx context.Context, href string) (entity.Payment, error)
	LinkToDocument(ctx context.Context, paymentID, documentHref string, sum decimal.Decimal) (entity.Payment, error)
}

type Producer interface {
	SendPaymentLinked(ctx context.Context, paymentID, documentID, documentKind string, amount decimal.Decimal)
}

type Service struct {
	repo       Repository
	registry   WebhookRegistry
	documents  DocumentGateway
	payments   PaymentGateway
	producer   Producer
	webhookURL string
	hasCreds   bool
}

func New(
	repo Repository,
	registry WebhookRegistry,
	documents DocumentGateway,
	payments PaymentGateway,
	producer Producer,
	webhookURL string,
	hasCreds bool,
) *Service {
	return &Service{
		repo:       repo,
		registry:   registry,
		documents:  documents,
		payments:   payments,
		producer:   producer,
		webhookURL: webhookURL,
		hasCreds:   hasCreds,
	}
}

// Toggle enables or disables auto-linking for a payment category. The remote
// registry is the source of truth: the local record is upserted to mirror it
// after every remote change. Calling Toggle twice with the same flag is safe.
func (s *Service) Toggle(ctx context.Context, category entity.PaymentCategory, enable bool) (entity.ToggleResult, error) {
	err := category.Validate()
	if err != nil {
		return entity.ToggleResult{}, err
	}

	if !s.hasCreds {
		slog.WarnContext(ctx, fmt.Sprintf("Категория %s пропущена: не заданы учётные данные МойСклад", category))

		return entity.ToggleResult{
			Operation: entity.OperationSkippedNoCredentials,
			Message:   "не заданы учётные данные МойСклад",
		}, nil
	}

	if s.webhookURL == "" {
		slog.WarnContext(ctx, fmt.Sprintf("Категория %s пропущена: не задан адрес вебхука", category))

		return entity.ToggleResult{
			Operation: entity.OperationSkippedNoWebhookURL,
			Message:   "не задан адрес вебхука",
		}, nil
	}

	local, err := s.repo.SubscriptionByCategory(ctx, category)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return entity.ToggleResult{}, fmt.Errorf("get subscription for %s: %w", category, err)
	}

	remote, found, err := s.findRemote(ctx, local, category)
	if err != nil {
		return entity.ToggleResult{}, err
	}

	if enable {
		return s.enable(ctx, category, local, remote, found)
	}

	return s.disable(ctx, category, local, remote, found)
}

// findRemote resolves the registry record for a category: by the locally
// stored webhook id first, then by scanning the registry list.
func (s *Service) findRemote(
	ctx context.Context,
	local entity.Subscription,
	category entity.PaymentCategory,
) (entity.RemoteWebhook, bool, error) {
	entityType := category.EntityType()

	if local.RemoteID != "" {
		remote, err := s.registry.WebhookByID(ctx, local.RemoteID)

		switch {
		case err == nil:
			if remote.EntityType == entityType && remote.Action == entity.WebhookAction {
				if s.webhookURL != "" && remote.URL != s.webhookURL {
					slog.WarnContext(ctx, fmt.Sprintf("Вебхук %s зарегистрирован на другой адрес: %s", remote.ID, remote.URL))
				}

				return remote, true, nil
			}

			slog.WarnContext(ctx, fmt.Sprintf("Вебхук %s не соответствует категории %s, ищем заново", remote.ID, category))
		case errors.Is(err, entity.ErrNotFound):
			slog.WarnContext(ctx, fmt.Sprintf("Вебхук %s удалён на стороне МойСклад", local.RemoteID))
		default:
			return entity.RemoteWebhook{}, false, fmt.Errorf("get webhook %q: %w", local.RemoteID, err)
		}
	}

	remote, found, err := s.scanRegistry(ctx, entityType, true)
	if err != nil {
		return entity.RemoteWebhook{}, false, err
	}

	return remote, found, nil
}

// scanRegistry walks the registry list looking for our webhook. With matchURL
// the configured webhook address must match too; without it any record for
// the entity type and action is accepted.
func (s *Service) scanRegistry(ctx context.Context, entityType string, matchURL bool) (entity.RemoteWebhook, bool, error) {
	webhooks, err := s.registry.Webhooks(ctx)
	if err != nil {
		return entity.RemoteWebhook{}, false, fmt.Errorf("list webhooks: %w", err)
	}

	for _, wh := range webhooks {
		if wh.EntityType != entityType || wh.Action != entity.WebhookAction {
			continue
		}

		if matchURL && s.webhookURL != "" && wh.URL != s.webhookURL {
			continue
		}

		if !matchURL && s.webhookURL != "" && wh.URL != s.webhookURL {
			slog.WarnContext(ctx, fmt.Sprintf("Вебхук %s зарегистрирован на другой адрес: %s", wh.ID, wh.URL))
		}

		return wh, true, nil
	}

	return entity.RemoteWebhook{}, false, nil
}

func (s *Service) enable(
	ctx context.Context,
	category entity.PaymentCategory,
	local entity.Subscription,
	remote entity.RemoteWebhook,
	found bool,
) (entity.ToggleResult, error) {
	operation := entity.OperationEnabled

	switch {
	case !found:
		created, err := s.registry.CreateWebhook(ctx, category.EntityType(), entity.WebhookAction, s.webhookURL)
		if err != nil {
			if !errors.Is(err, entity.ErrAlreadyExists) {
				return entity.ToggleResult{}, fmt.Errorf("create webhook for %s: %w", category, err)
			}

			// Someone registered the webhook between our scan and the
			// create, possibly on a different address. Adopt it.
			adopted, ok, scanErr := s.scanRegistry(ctx, category.EntityType(), false)
			if scanErr != nil {
				return entity.ToggleResult{}, scanErr
			}

			if !ok {
				return entity.ToggleResult{}, fmt.Errorf("create webhook for %s: %w", category, err)
			}

			return s.enable(ctx, category, local, adopted, true)
		}

		remote = created
		operation = entity.OperationCreatedAndEnabled
	case remote.Enabled:
		operation = entity.OperationAlreadyEnabled
	default:
		updated, err := s.registry.UpdateWebhookEnabled(ctx, remote.Href, true)
		if err != nil {
			return entity.ToggleResult{}, fmt.Errorf("enable webhook %q: %w", remote.ID, err)
		}

		remote = updated
	}

	sub, err := s.saveSubscription(ctx, category, local, remote, true)
	if err != nil {
		return entity.ToggleResult{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Автопривязка для категории %s включена: %s", category, operation))

	return entity.ToggleResult{
		Operation:    operation,
		Success:      true,
		Message:      fmt.Sprintf("автопривязка для категории %s включена", category),
		Subscription: &sub,
	}, nil
}

func (s *Service) disable(
	ctx context.Context,
	category entity.PaymentCategory,
	local entity.Subscription,
	remote entity.RemoteWebhook,
	found bool,
) (entity.ToggleResult, error) {
	if !found {
		if local.ID != 0 && local.Enabled {
			local.Enabled = false

			sub, err := s.repo.UpsertSubscription(ctx, local)
			if err != nil {
				return entity.ToggleResult{}, fmt.Errorf("save subscription for %s: %w", category, err)
			}

			local = sub
		}

		slog.InfoContext(ctx, fmt.Sprintf("Вебхук для категории %s не найден, отключать нечего", category))

		result := entity.ToggleResult{
			Operation: entity.OperationNotFoundToDisable,
			Success:   true,
			Message:   fmt.Sprintf("вебхук для категории %s не найден", category),
		}
		if local.ID != 0 {
			result.Subscription = &local
		}

		return result, nil
	}

	operation := entity.OperationDisabled

	if !remote.Enabled {
		operation = entity.OperationAlreadyDisabled
	} else {
		updated, err := s.registry.UpdateWebhookEnabled(ctx, remote.Href, false)
		if err != nil {
			return entity.ToggleResult{}, fmt.Errorf("disable webhook %q: %w", remote.ID, err)
		}

		remote = updated
	}

	sub, err := s.saveSubscription(ctx, category, local, remote, false)
	if err != nil {
		return entity.ToggleResult{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Автопривязка для категории %s отключена: %s", category, operation))

	return entity.ToggleResult{
		Operation:    operation,
		Success:      true,
		Message:      fmt.Sprintf("автопривязка для категории %s отключена", category),
		Subscription: &sub,
	}, nil
}

// saveSubscription mirrors the remote registry state into the local record,
// keeping the link settings of the previous record for the category.
func (s *Service) saveSubscription(
	ctx context.Context,
	category entity.PaymentCategory,
	local entity.Subscription,
	remote entity.RemoteWebhook,
	enabled bool,
) (entity.Subscription, error) {
	sub := entity.Subscription{
		Category:     category,
		EntityType:   remote.EntityType,
		Action:       remote.Action,
		URL:          remote.URL,
		RemoteID:     remote.ID,
		Href:         remote.Href,
		AccountID:    remote.AccountID,
		Enabled:      enabled,
		DocumentKind: entity.DocumentKindCustomerOrder,
		LinkPolicy:   entity.LinkPolicySumAndCounterparty,
		Priority:     entity.PriorityOldestFirst,
	}

	if local.ID != 0 {
		sub.DocumentKind = local.DocumentKind
		sub.LinkPolicy = local.LinkPolicy
		sub.Priority = local.Priority
	}

	saved, err := s.repo.UpsertSubscription(ctx, sub)
	if err != nil {
		return entity.Subscription{}, fmt.Errorf("save subscription for %s: %w", category, err)
	}

	return saved, nil
}

// UpdateLinkSettings changes how matched documents are picked for a category.
// It touches only the local record, the remote registry stays as is.
func (s *Service) UpdateLinkSettings(
	ctx context.Context,
	category entity.PaymentCategory,
	kind entity.DocumentKind,
	policy entity.LinkPolicy,
	priority entity.DocumentPriority,
) (entity.ToggleResult, error) {
	for _, validate := range []func() error{category.Validate, kind.Validate, policy.Validate, priority.Validate} {
		err := validate()
		if err != nil {
			return entity.ToggleResult{}, err
		}
	}

	sub, err := s.repo.UpdateLinkSettings(ctx, category, kind, policy, priority, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, fmt.Sprintf("Настройки для категории %s не сохранены: нет активной подписки", category))

			return entity.ToggleResult{
				Operation: entity.OperationSettingsNoSubscription,
				Message:   fmt.Sprintf("нет активной подписки для категории %s", category),
			}, nil
		}

		return entity.ToggleResult{}, fmt.Errorf("update link settings for %s: %w", category, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Настройки автопривязки для категории %s обновлены: %s, %s, %s",
		category, kind, policy, priority))

	return entity.ToggleResult{
		Operation:    entity.OperationSettingsUpdated,
		Success:      true,
		Message:      fmt.Sprintf("настройки для категории %s обновлены", category),
		Subscription: &sub,
	}, nil
}

// Status reports the latest known state of every payment category. Categories
// without a record report defaults with auto-linking off.
func (s *Service) Status(ctx context.Context) ([]entity.CategoryStatus, error) {
	subs, err := s.repo.Subscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	// Rows come newest first, so the first row per category wins.
	latest := make(map[entity.PaymentCategory]entity.Subscription, len(entity.PaymentCategories))
	for _, sub := range subs {
		if _, ok := latest[sub.Category]; !ok {
			latest[sub.Category] = sub
		}
	}

	statuses := make([]entity.CategoryStatus, 0, len(entity.PaymentCategories))

	for _, category := range entity.PaymentCategories {
		status := entity.CategoryStatus{
			Category:     category,
			DocumentKind: entity.DocumentKindCustomerOrder,
			LinkPolicy:   entity.LinkPolicySumAndCounterparty,
			Priority:     entity.PriorityOldestFirst,
		}

		if sub, ok := latest[category]; ok {
			status.Enabled = sub.Enabled
			status.DocumentKind = sub.DocumentKind
			status.LinkPolicy = sub.LinkPolicy
			status.Priority = sub.Priority
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
