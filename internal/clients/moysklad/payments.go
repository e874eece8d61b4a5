package moysklad

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

type operationData struct {
	Meta      meta            `json:"meta"`
	LinkedSum decimal.Decimal `json:"linkedSum"`
}

type paymentData struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"accountId"`
	Name           string          `json:"name"`
	Moment         momentTime      `json:"moment"`
	Applicable     bool            `json:"applicable"`
	Sum            decimal.Decimal `json:"sum"`
	Agent          metaRef         `json:"agent"`
	Organization   metaRef         `json:"organization"`
	PaymentPurpose string          `json:"paymentPurpose"`
	Operations     []operationData `json:"operations"`
	Meta           meta            `json:"meta"`
}

func (p paymentData) toEntity() entity.Payment {
	operations := make([]entity.LinkedOperation, 0, len(p.Operations))
	for _, op := range p.Operations {
		operations = append(operations, entity.LinkedOperation{
			Href:      op.Meta.Href,
			Type:      op.Meta.Type,
			LinkedSum: op.LinkedSum,
		})
	}

	return entity.Payment{
		ID:             p.ID,
		AccountID:      p.AccountID,
		Name:           p.Name,
		Moment:         p.Moment.Time(),
		Applicable:     p.Applicable,
		Sum:            p.Sum,
		AgentID:        idFromHref(p.Agent.Meta.Href),
		OrganizationID: idFromHref(p.Organization.Meta.Href),
		PaymentPurpose: p.PaymentPurpose,
		Operations:     operations,
		Href:           p.Meta.Href,
	}
}

// PaymentByHref reads an incoming payment by its full href.
func (c *Client) PaymentByHref(ctx context.Context, href string) (entity.Payment, error) {
	var respData paymentData

	err := c.doJSON(ctx, http.MethodGet, href, nil, &respData)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", href, err)
	}

	return respData.toEntity(), nil
}

type updateOperationsRequest struct {
	Operations []operationData `json:"operations"`
}

// LinkToDocument appends one allocation to the payment's operations list and
// persists it remotely. The payment is re-read first so existing links
// survive the write.
func (c *Client) LinkToDocument(
	ctx context.Context,
	paymentID, documentHref string,
	sum decimal.Decimal,
) (entity.Payment, error) {
	paymentURL := fmt.Sprintf("%s/entity/paymentin/%s", c.baseURL(), paymentID)

	var current paymentData

	err := c.doJSON(ctx, http.MethodGet, paymentURL, nil, &current)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", paymentID, err)
	}

	operations := make([]operationData, 0, len(current.Operations)+1)
	operations = append(operations, current.Operations...)
	operations = append(operations, operationData{
		Meta: meta{
			Href:      documentHref,
			Type:      typeFromHref(documentHref),
			MediaType: "application/json",
		},
		LinkedSum: sum,
	})

	var respData paymentData

	err = c.doJSON(ctx, http.MethodPut, paymentURL, updateOperationsRequest{Operations: operations}, &respData)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("update payment %q operations: %w", paymentID, err)
	}

	return respData.toEntity(), nil
}
