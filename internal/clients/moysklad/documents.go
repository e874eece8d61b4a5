package moysklad

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

const (
	// counterpartyDateFloor bounds counterparty-wide candidate queries.
	counterpartyDateFloor = 60 * 24 * time.Hour
	counterpartyLimit     = 10

	searchLimit = 100
)

type documentData struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"accountId"`
	Name         string          `json:"name"`
	Moment       momentTime      `json:"moment"`
	Applicable   bool            `json:"applicable"`
	Sum          decimal.Decimal `json:"sum"`
	PayedSum     decimal.Decimal `json:"payedSum"`
	ShippedSum   decimal.Decimal `json:"shippedSum"`
	InvoicedSum  decimal.Decimal `json:"invoicedSum"`
	Agent        metaRef         `json:"agent"`
	Organization metaRef         `json:"organization"`
	Meta         meta            `json:"meta"`
}

func (d documentData) toEntity(kind entity.DocumentKind) entity.Document {
	return entity.Document{
		Kind:           kind,
		ID:             d.ID,
		AccountID:      d.AccountID,
		Name:           d.Name,
		Moment:         d.Moment.Time(),
		Applicable:     d.Applicable,
		Sum:            d.Sum,
		PaidSum:        d.PayedSum,
		ShippedSum:     d.ShippedSum,
		InvoicedSum:    d.InvoicedSum,
		AgentID:        idFromHref(d.Agent.Meta.Href),
		OrganizationID: idFromHref(d.Organization.Meta.Href),
		Href:           d.Meta.Href,
	}
}

type documentListResponse struct {
	Rows []documentData `json:"rows"`
}

func (c *Client) agentHref(agentID string) string {
	return c.baseURL() + "/entity/counterparty/" + agentID
}

func (c *Client) searchDocuments(
	ctx context.Context,
	kind entity.DocumentKind,
	filter string,
	limit int,
	order string,
) ([]entity.Document, error) {
	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("filter", filter)

	if order != "" {
		q.Set("order", order)
	}

	reqURL := fmt.Sprintf("%s/entity/%s?%s", c.baseURL(), kind, q.Encode())

	var respData documentListResponse

	err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &respData)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}

	documents := make([]entity.Document, 0, len(respData.Rows))
	for _, row := range respData.Rows {
		documents = append(documents, row.toEntity(kind))
	}

	return documents, nil
}

// SearchByAgentAndSum finds documents of a counterparty whose total matches
// sum within the shared tolerance, most recent first.
func (c *Client) SearchByAgentAndSum(
	ctx context.Context,
	kind entity.DocumentKind,
	agentID string,
	sum decimal.Decimal,
) ([]entity.Document, error) {
	filter := fmt.Sprintf("agent=%s;sum>=%s;sum<=%s",
		c.agentHref(agentID),
		sum.Sub(entity.SumTolerance),
		sum.Add(entity.SumTolerance),
	)

	return c.searchDocuments(ctx, kind, filter, searchLimit, "moment,desc")
}

// SearchByAgent finds outstanding documents of a counterparty created within
// the last 60 days, ordered by moment per the requested priority.
func (c *Client) SearchByAgent(
	ctx context.Context,
	kind entity.DocumentKind,
	agentID string,
	priority entity.DocumentPriority,
) ([]entity.Document, error) {
	dateFloor := time.Now().UTC().Add(-counterpartyDateFloor)

	filter := fmt.Sprintf("agent=%s;payedSum<sum;moment>=%s",
		c.agentHref(agentID),
		dateFloor.Format("2006-01-02 15:04:05"),
	)

	order := "moment,asc"
	if priority == entity.PriorityNewestFirst {
		order = "moment,desc"
	}

	return c.searchDocuments(ctx, kind, filter, counterpartyLimit, order)
}

// DocumentByID reads a single document, failing with entity.ErrNotFound on a
// remote 404.
func (c *Client) DocumentByID(ctx context.Context, kind entity.DocumentKind, id string) (entity.Document, error) {
	reqURL := fmt.Sprintf("%s/entity/%s/%s", c.baseURL(), kind, id)

	var respData documentData

	err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &respData)
	if err != nil {
		return entity.Document{}, fmt.Errorf("get %s %q: %w", kind, id, err)
	}

	return respData.toEntity(kind), nil
}

// FindByNameAndAgent resolves a document by its exact display name and
// counterparty, failing with entity.ErrNotFound if absent.
func (c *Client) FindByNameAndAgent(
	ctx context.Context,
	kind entity.DocumentKind,
	name, agentID string,
) (entity.Document, error) {
	filter := fmt.Sprintf("agent=%s;name=%s", c.agentHref(agentID), name)

	documents, err := c.searchDocuments(ctx, kind, filter, 1, "")
	if err != nil {
		return entity.Document{}, err
	}

	if len(documents) == 0 {
		return entity.Document{}, fmt.Errorf("%s %q for agent %q: %w", kind, name, agentID, entity.ErrNotFound)
	}

	return documents[0], nil
}
