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

// ProcessDelivery handles one inbound webhook delivery. Events are processed
// independently: a failing event does not stop the rest, its error is joined
// into the result.
func (s *Service) ProcessDelivery(ctx context.Context, delivery entity.WebhookDelivery) error {
	if delivery.Audit.UID != "" {
		slog.InfoContext(ctx, fmt.Sprintf("Доставка инициирована пользователем %s в %s",
			delivery.Audit.UID, delivery.Audit.Moment.Format(time.DateTime)))
	}

	var errs []error

	for _, event := range delivery.Events {
		err := s.processEvent(ctx, event)
		if err != nil {
			slog.ErrorContext(ctx, fmt.Sprintf("Обработка события %s %s: %s", event.Action, event.Href, err))
			errs = append(errs, fmt.Errorf("process event %q: %w", event.Href, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) processEvent(ctx context.Context, event entity.WebhookEvent) error {
	if event.EntityType != entity.EntityTypePaymentIn || event.Action != entity.WebhookAction {
		slog.InfoContext(ctx, fmt.Sprintf("Событие %s %s пропущено: автопривязка работает только с входящими платежами",
			event.Action, event.EntityType))

		return nil
	}

	category := categoryForEntityType(event.EntityType)

	sub, err := s.repo.ActiveSubscription(ctx, event.AccountID, event.EntityType, category)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, fmt.Sprintf("Событие %s пропущено: нет активной подписки для категории %s",
				event.Href, category))

			return nil
		}

		return fmt.Errorf("get active subscription: %w", err)
	}

	payment, err := s.payments.PaymentByHref(ctx, event.Href)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	if payment.AgentID == "" {
		slog.WarnContext(ctx, fmt.Sprintf("Платёж %s пропущен: не указан контрагент", payment.ID))

		return nil
	}

	remaining := unlinkedSum(payment)
	if remaining.LessThanOrEqual(entity.SumTolerance) {
		slog.InfoContext(ctx, fmt.Sprintf("Платёж %s уже полностью привязан", payment.ID))

		return nil
	}

	switch sub.LinkPolicy {
	case entity.LinkPolicyCounterparty:
		return s.linkByCounterparty(ctx, sub, payment, remaining)
	case entity.LinkPolicyPurposeMask:
		return s.linkByPurposeMask(ctx, sub, payment)
	default:
		return s.linkBySumAndCounterparty(ctx, sub, payment)
	}
}

// unlinkedSum is the part of the payment not yet allocated to any document.
func unlinkedSum(payment entity.Payment) decimal.Decimal {
	linked := decimal.Zero
	for _, op := range payment.Operations {
		linked = linked.Add(op.LinkedSum)
	}

	return payment.Sum.Sub(linked)
}

func categoryForEntityType(entityType string) entity.PaymentCategory {
	for _, category := range entity.PaymentCategories {
		if category.EntityType() == entityType {
			return category
		}
	}

	return ""
}

// linkBySumAndCounterparty picks the newest document of the same counterparty
// whose total equals the payment sum and links the whole payment to it.
func (s *Service) linkBySumAndCounterparty(
	ctx context.Context,
	sub entity.Subscription,
	payment entity.Payment,
) error {
	docs, err := s.documents.SearchByAgentAndSum(ctx, sub.DocumentKind, payment.AgentID, payment.Sum)
	if err != nil {
		return fmt.Errorf("search documents by sum: %w", err)
	}

	doc, ok := firstPayable(docs)
	if !ok {
		slog.WarnContext(ctx, fmt.Sprintf("Платёж %s не привязан: нет документа %s на сумму %s у контрагента %s",
			payment.ID, sub.DocumentKind, payment.Sum, payment.AgentID))

		return nil
	}

	return s.link(ctx, payment, doc, payment.Sum)
}

// linkByCounterparty spreads the payment over the counterparty's outstanding
// documents in the configured order until the payment is used up.
func (s *Service) linkByCounterparty(
	ctx context.Context,
	sub entity.Subscription,
	payment entity.Payment,
	remaining decimal.Decimal,
) error {
	docs, err := s.documents.SearchByAgent(ctx, sub.DocumentKind, payment.AgentID, sub.Priority)
	if err != nil {
		return fmt.Errorf("search documents by agent: %w", err)
	}

	result := allocate(remaining, docs)
	if len(result.Allocations) == 0 {
		slog.WarnContext(ctx, fmt.Sprintf("Платёж %s не привязан: нет неоплаченных документов %s у контрагента %s",
			payment.ID, sub.DocumentKind, payment.AgentID))

		return nil
	}

	for _, allocation := range result.Allocations {
		err = s.link(ctx, payment, allocation.Document, allocation.Sum)
		if err != nil {
			return err
		}
	}

	if result.Remaining.GreaterThan(entity.SumTolerance) {
		slog.InfoContext(ctx, fmt.Sprintf("Платёж %s привязан частично, остаток %s", payment.ID, result.Remaining))
	}

	return nil
}

// linkByPurposeMask parses the document number out of the payment purpose and
// links the full payment to the document with that name.
func (s *Service) linkByPurposeMask(
	ctx context.Context,
	sub entity.Subscription,
	payment entity.Payment,
) error {
	name, ok := extractDocumentName(payment.PaymentPurpose)
	if !ok {
		slog.WarnContext(ctx, fmt.Sprintf("Платёж %s не привязан: в назначении платежа не найден номер документа: %q",
			payment.ID, payment.PaymentPurpose))

		return nil
	}

	doc, err := s.documents.FindByNameAndAgent(ctx, sub.DocumentKind, name, payment.AgentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, fmt.Sprintf("Платёж %s не привязан: документ %s %q у контрагента %s не найден",
				payment.ID, sub.DocumentKind, name, payment.AgentID))

			return nil
		}

		return fmt.Errorf("find document by name %q: %w", name, err)
	}

	if doc.IsFullyPaid() {
		slog.WarnContext(ctx, fmt.Sprintf("Платёж %s не привязан: документ %s уже оплачен", payment.ID, doc.Name))

		return nil
	}

	return s.link(ctx, payment, doc, payment.Sum)
}

func (s *Service) link(ctx context.Context, payment entity.Payment, doc entity.Document, sum decimal.Decimal) error {
	_, err := s.payments.LinkToDocument(ctx, payment.ID, doc.Href, sum)
	if err != nil {
		return fmt.Errorf("link payment %q to document %q: %w", payment.ID, doc.ID, err)
	}

	s.producer.SendPaymentLinked(ctx, payment.ID, doc.ID, doc.Kind.String(), sum)

	slog.InfoContext(ctx, fmt.Sprintf("Платёж %s на сумму %s привязан к документу %s %s", payment.ID, sum, doc.Kind, doc.Name))

	return nil
}
