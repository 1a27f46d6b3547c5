package engine

import (
	"fmt"

	"payrouter/internal/config"
	apperrors "payrouter/internal/errors"
	"payrouter/internal/models"
)

// Decide routes one payment against the snapshot's catalog and rules.
//
// Candidates are the processors supporting the payment method, in catalog
// order. Among candidates passing the strict constraints the highest score
// wins; if none passes, the candidate with the highest success rate is chosen
// as a fallback and the reason says so. Ties resolve to the earlier catalog
// entry, so decisions are reproducible.
func Decide(payment models.Payment, snap *config.Snapshot) (*models.Decision, error) {
	evaluations := make([]models.Evaluation, 0, len(snap.Processors))
	for _, p := range snap.Processors {
		if !SupportsMethod(p, payment.PaymentMethod) {
			continue
		}
		evaluations = append(evaluations, Evaluate(p, payment, snap))
	}

	if len(evaluations) == 0 {
		return nil, fmt.Errorf("no processor supports payment method %q: %w",
			payment.PaymentMethod, apperrors.ErrNoEligibleProcessor)
	}

	winner, reason := selectWinner(evaluations)

	return &models.Decision{
		Chosen:           winner.Processor,
		ExpectedNetCents: payment.AmountCents - winner.FeeCents,
		Details:          winner,
		Reason:           reason,
	}, nil
}

// selectWinner picks the best viable evaluation, or the highest-success-rate
// fallback when nothing is viable. Strict ">" comparisons keep the first
// catalog occurrence on equal keys.
func selectWinner(evaluations []models.Evaluation) (models.Evaluation, string) {
	var viable []models.Evaluation
	for _, ev := range evaluations {
		if ev.PassesStrict {
			viable = append(viable, ev)
		}
	}

	if len(viable) == 0 {
		best := evaluations[0]
		for _, ev := range evaluations[1:] {
			if ev.RiskScore > best.RiskScore {
				best = ev
			}
		}
		reason := fmt.Sprintf(
			"no processor passed strict constraints; falling back to %s with the highest success rate %.3f",
			best.Processor, best.RiskScore)
		return best, reason
	}

	best := viable[0]
	for _, ev := range viable[1:] {
		if ev.Score > best.Score {
			best = ev
		}
	}
	reason := fmt.Sprintf("selected %s with score %.4f", best.Processor, best.Score)
	return best, reason
}
