package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/moysklad-autolink/internal/entity"
	"github.com/samandr77/moysklad-autolink/internal/mocks"
	"github.com/samandr77/moysklad-autolink/internal/service"
)

const webhookURL = "https://autolink.example.com/api/moysklad/webhook"

func TestService_Toggle_CreatesAndEnables(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	created := entity.RemoteWebhook{
		ID:         "wh-1",
		EntityType: entity.EntityTypePaymentIn,
		Action:     entity.WebhookAction,
		URL:        webhookURL,
		Enabled:    true,
		Href:       "https://api/entity/webhook/wh-1",
		AccountID:  "acc-1",
	}

	repo.EXPECT().SubscriptionByCategory(context.Background(), entity.CategoryIncomingPayment).
		Return(entity.Subscription{}, entity.ErrNotFound)
	registry.EXPECT().Webhooks(context.Background()).Return(nil, nil)
	registry.EXPECT().CreateWebhook(context.Background(), entity.EntityTypePaymentIn, entity.WebhookAction, webhookURL).
		Return(created, nil)
	repo.EXPECT().UpsertSubscription(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.Subscription) (entity.Subscription, error) {
			require.Equal(t, "wh-1", s.RemoteID)
			require.True(t, s.Enabled)
			require.Equal(t, entity.DocumentKindCustomerOrder, s.DocumentKind)
			s.ID = 1
			return s, nil
		})

	s := service.New(repo, registry, nil, nil, nil, webhookURL, true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationCreatedAndEnabled, result.Operation)
	require.True(t, result.Success)
	require.False(t, result.IsSkipped())
	require.NotNil(t, result.Subscription)
}

func TestService_Toggle_EnableTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	local := entity.Subscription{
		ID:           1,
		Category:     entity.CategoryIncomingPayment,
		EntityType:   entity.EntityTypePaymentIn,
		Action:       entity.WebhookAction,
		URL:          webhookURL,
		RemoteID:     "wh-1",
		Enabled:      true,
		DocumentKind: entity.DocumentKindInvoiceOut,
		LinkPolicy:   entity.LinkPolicyCounterparty,
		Priority:     entity.PriorityNewestFirst,
	}

	remote := entity.RemoteWebhook{
		ID:         "wh-1",
		EntityType: entity.EntityTypePaymentIn,
		Action:     entity.WebhookAction,
		URL:        webhookURL,
		Enabled:    true,
		Href:       "https://api/entity/webhook/wh-1",
	}

	repo.EXPECT().SubscriptionByCategory(context.Background(), entity.CategoryIncomingPayment).Return(local, nil)
	registry.EXPECT().WebhookByID(context.Background(), "wh-1").Return(remote, nil)
	// The remote registry must not be written to again.
	repo.EXPECT().UpsertSubscription(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.Subscription) (entity.Subscription, error) {
			// Link settings of the existing record survive the toggle.
			require.Equal(t, entity.DocumentKindInvoiceOut, s.DocumentKind)
			require.Equal(t, entity.LinkPolicyCounterparty, s.LinkPolicy)
			s.ID = 1
			return s, nil
		})

	s := service.New(repo, registry, nil, nil, nil, webhookURL, true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationAlreadyEnabled, result.Operation)
	require.True(t, result.Success)
}

func TestService_Toggle_EnablesExistingDisabledWebhook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	remote := entity.RemoteWebhook{
		ID:         "wh-2",
		EntityType: entity.EntityTypeCashIn,
		Action:     entity.WebhookAction,
		URL:        webhookURL,
		Enabled:    false,
		Href:       "https://api/entity/webhook/wh-2",
	}

	repo.EXPECT().SubscriptionByCategory(context.Background(), entity.CategoryIncomingOrder).
		Return(entity.Subscription{}, entity.ErrNotFound)
	registry.EXPECT().Webhooks(context.Background()).Return([]entity.RemoteWebhook{remote}, nil)
	registry.EXPECT().UpdateWebhookEnabled(context.Background(), remote.Href, true).
		DoAndReturn(func(_ context.Context, _ string, _ bool) (entity.RemoteWebhook, error) {
			remote.Enabled = true
			return remote, nil
		})
	repo.EXPECT().UpsertSubscription(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.Subscription) (entity.Subscription, error) {
			s.ID = 2
			return s, nil
		})

	s := service.New(repo, registry, nil, nil, nil, webhookURL, true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingOrder, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationEnabled, result.Operation)
}

func TestService_Toggle_CreateConflictAdoptsForeignWebhook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	foreign := entity.RemoteWebhook{
		ID:         "wh-3",
		EntityType: entity.EntityTypePaymentIn,
		Action:     entity.WebhookAction,
		URL:        "https://other.example.com/hook",
		Enabled:    true,
		Href:       "https://api/entity/webhook/wh-3",
	}

	repo.EXPECT().SubscriptionByCategory(context.Background(), entity.CategoryIncomingPayment).
		Return(entity.Subscription{}, entity.ErrNotFound)
	// First scan matches by URL too, so the foreign registration is invisible.
	registry.EXPECT().Webhooks(context.Background()).Return([]entity.RemoteWebhook{foreign}, nil)
	registry.EXPECT().CreateWebhook(context.Background(), entity.EntityTypePaymentIn, entity.WebhookAction, webhookURL).
		Return(entity.RemoteWebhook{}, entity.ErrAlreadyExists)
	// The conflict rescan relaxes the URL match and adopts the record.
	registry.EXPECT().Webhooks(context.Background()).Return([]entity.RemoteWebhook{foreign}, nil)
	repo.EXPECT().UpsertSubscription(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.Subscription) (entity.Subscription, error) {
			require.Equal(t, "wh-3", s.RemoteID)
			s.ID = 3
			return s, nil
		})

	s := service.New(repo, registry, nil, nil, nil, webhookURL, true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationAlreadyEnabled, result.Operation)
}

func TestService_Toggle_DisableAbsentWebhook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	repo.EXPECT().SubscriptionByCategory(context.Background(), entity.CategoryOutgoingPayment).
		Return(entity.Subscription{}, entity.ErrNotFound)
	registry.EXPECT().Webhooks(context.Background()).Return(nil, nil)

	s := service.New(repo, registry, nil, nil, nil, webhookURL, true)

	result, err := s.Toggle(context.Background(), entity.CategoryOutgoingPayment, false)
	require.NoError(t, err)
	require.Equal(t, entity.OperationNotFoundToDisable, result.Operation)
	require.True(t, result.Success)
	require.False(t, result.IsSkipped())
}

func TestService_Toggle_SkippedWithoutWebhookURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	// No repository or registry calls at all.
	s := service.New(repo, registry, nil, nil, nil, "", true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationSkippedNoWebhookURL, result.Operation)
	require.True(t, result.IsSkipped())
	require.False(t, result.Success)
}

func TestService_Toggle_DisableSkippedWithoutWebhookURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	// Without a configured address a registry scan cannot tell our webhook
	// from someone else's, so the disable must not touch the registry at all.
	s := service.New(repo, registry, nil, nil, nil, "", true)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, false)
	require.NoError(t, err)
	require.Equal(t, entity.OperationSkippedNoWebhookURL, result.Operation)
	require.True(t, result.IsSkipped())
	require.False(t, result.Success)
}

func TestService_Toggle_SkippedWithoutCredentials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	registry := mocks.NewMockWebhookRegistry(ctrl)

	s := service.New(repo, registry, nil, nil, nil, webhookURL, false)

	result, err := s.Toggle(context.Background(), entity.CategoryIncomingPayment, true)
	require.NoError(t, err)
	require.Equal(t, entity.OperationSkippedNoCredentials, result.Operation)
	require.True(t, result.IsSkipped())
}

func TestService_Toggle_InvalidCategory(t *testing.T) {
	t.Parallel()

	s := service.New(nil, nil, nil, nil, nil, webhookURL, true)

	_, err := s.Toggle(context.Background(), "refund", true)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateLinkSettings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	updated := entity.Subscription{
		ID:           1,
		Category:     entity.CategoryIncomingPayment,
		Enabled:      true,
		DocumentKind: entity.DocumentKindDemand,
		LinkPolicy:   entity.LinkPolicyPurposeMask,
		Priority:     entity.PriorityNewestFirst,
	}

	repo.EXPECT().UpdateLinkSettings(
		context.Background(),
		entity.CategoryIncomingPayment,
		entity.DocumentKindDemand,
		entity.LinkPolicyPurposeMask,
		entity.PriorityNewestFirst,
		gomock.Any(),
	).Return(updated, nil)

	s := service.New(repo, nil, nil, nil, nil, webhookURL, true)

	result, err := s.UpdateLinkSettings(
		context.Background(),
		entity.CategoryIncomingPayment,
		entity.DocumentKindDemand,
		entity.LinkPolicyPurposeMask,
		entity.PriorityNewestFirst,
	)
	require.NoError(t, err)
	require.Equal(t, entity.OperationSettingsUpdated, result.Operation)
	require.True(t, result.Success)
}

func TestService_UpdateLinkSettings_NoActiveSubscription(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	repo.EXPECT().UpdateLinkSettings(
		context.Background(),
		entity.CategoryOutgoingOrder,
		entity.DocumentKindCustomerOrder,
		entity.LinkPolicyCounterparty,
		entity.PriorityOldestFirst,
		gomock.Any(),
	).Return(entity.Subscription{}, entity.ErrNotFound)

	s := service.New(repo, nil, nil, nil, nil, webhookURL, true)

	result, err := s.UpdateLinkSettings(
		context.Background(),
		entity.CategoryOutgoingOrder,
		entity.DocumentKindCustomerOrder,
		entity.LinkPolicyCounterparty,
		entity.PriorityOldestFirst,
	)
	require.NoError(t, err)
	require.Equal(t, entity.OperationSettingsNoSubscription, result.Operation)
	require.True(t, result.IsSkipped())
}

func TestService_Status_ReportsDefaultsForMissingCategories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	repo.EXPECT().Subscriptions(context.Background()).Return([]entity.Subscription{
		{
			ID:           5,
			Category:     entity.CategoryIncomingPayment,
			Enabled:      true,
			DocumentKind: entity.DocumentKindInvoiceOut,
			LinkPolicy:   entity.LinkPolicyCounterparty,
			Priority:     entity.PriorityNewestFirst,
		},
		{
			// Older record for the same category must be ignored.
			ID:           1,
			Category:     entity.CategoryIncomingPayment,
			Enabled:      false,
			DocumentKind: entity.DocumentKindCustomerOrder,
			LinkPolicy:   entity.LinkPolicySumAndCounterparty,
			Priority:     entity.PriorityOldestFirst,
		},
	}, nil)

	s := service.New(repo, nil, nil, nil, nil, webhookURL, true)

	statuses, err := s.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, len(entity.PaymentCategories))

	require.Equal(t, entity.CategoryIncomingPayment, statuses[0].Category)
	require.True(t, statuses[0].Enabled)
	require.Equal(t, entity.DocumentKindInvoiceOut, statuses[0].DocumentKind)

	require.Equal(t, entity.CategoryIncomingOrder, statuses[1].Category)
	require.False(t, statuses[1].Enabled)
	require.Equal(t, entity.DocumentKindCustomerOrder, statuses[1].DocumentKind)
	require.Equal(t, entity.LinkPolicySumAndCounterparty, statuses[1].LinkPolicy)
}
