package analytics

import (
	"fmt"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

const maxRecommendations = 4

// Recommend derives actionable insights from the computed metrics. Rules
// run in a fixed priority order (new product, stale product, best seller,
// worst seller), each contributing at most one entry; a rule that finds
// nothing contributes nothing. The result is capped at four entries.
func Recommend(
	newProduct domain.NewProduct,
	stale []string,
	best []domain.ProductQuantity,
	least []domain.ProductQuantity,
) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, maxRecommendations)

	if newProduct.Found {
		recs = append(recs, domain.Recommendation{
			Product: newProduct.Product,
			Reason:  fmt.Sprintf("%q just appeared in sales - consider boosting its visibility", newProduct.Product),
		})
	}

	if len(stale) > 0 {
		recs = append(recs, domain.Recommendation{
			Product: stale[0],
			Reason:  fmt.Sprintf("%q sold yesterday but not today - check whether its listing is still active", stale[0]),
		})
	}

	if len(best) > 0 {
		recs = append(recs, domain.Recommendation{
			Product: best[0].Product,
			Reason:  fmt.Sprintf("%q is the current best seller - make sure inventory is secured", best[0].Product),
		})
	}

	if len(least) > 0 {
		recs = append(recs, domain.Recommendation{
			Product: least[0].Product,
			Reason:  fmt.Sprintf("%q is the slowest seller - consider a promotion or delisting", least[0].Product),
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
