package service

import (
	"github.com/shopspring/decimal"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

// allocate apportions a payment sum across candidate documents in the order
// given. Each document gets at most its outstanding amount, settled documents
// are skipped, and allocation stops once the leftover is within tolerance.
func allocate(paymentSum decimal.Decimal, candidates []entity.Document) entity.MatchResult {
	result := entity.MatchResult{
		TotalLinked: decimal.Zero,
		Remaining:   paymentSum,
	}

	for _, doc := range candidates {
		if result.Remaining.LessThanOrEqual(entity.SumTolerance) {
			break
		}

		unpaid := doc.UnpaidSum()
		if unpaid.LessThanOrEqual(entity.SumTolerance) {
			continue
		}

		sum := decimal.Min(unpaid, result.Remaining)

		result.Allocations = append(result.Allocations, entity.Allocation{
			Document: doc,
			Sum:      sum,
		})
		result.TotalLinked = result.TotalLinked.Add(sum)
		result.Remaining = result.Remaining.Sub(sum)
	}

	return result
}
