package engine

import (
	"math"

	"payrouter/internal/config"
	"payrouter/internal/models"
)

// settlementWindowDays is the fixed normalization window for the settlement
// score: the longest settlement time considered meaningful.
const settlementWindowDays = 5.0

// slowSettlementSensitivity is the cash-flow sensitivity above which multi-day
// settlement draws a penalty.
const slowSettlementSensitivity = 0.85

// SupportsMethod reports whether the processor can handle the payment method.
// Unknown methods are unsupported, not an error.
func SupportsMethod(p models.Processor, method string) bool {
	switch method {
	case models.MethodCard:
		return p.SupportsCard
	case models.MethodACH:
		return p.SupportsACH
	default:
		return false
	}
}

// Evaluate scores one processor for one payment under the snapshot's rules.
//
// The relative saving is measured against the snapshot's baseline processor;
// when the baseline fee is zero there is no relative-saving signal and the
// saving is defined as 0 rather than dividing by zero.
func Evaluate(p models.Processor, payment models.Payment, snap *config.Snapshot) models.Evaluation {
	fee := ComputeFeeCents(p, payment.AmountCents)
	baselineFee := ComputeFeeCents(snap.Baseline(), payment.AmountCents)

	var saving float64
	if baselineFee > 0 {
		saving = float64(baselineFee-fee) / float64(baselineFee)
	}

	sensitivity := payment.Merchant.CashFlowSensitivity
	settlement := clamp01(1 - float64(p.SettlementTimeDays)*sensitivity/settlementWindowDays)
	risk := p.SuccessRate

	thresholds := snap.Rules.Thresholds
	weights := snap.Rules.Weights

	var bonus float64
	if saving >= thresholds.MinRelativeSavingsToSwitch {
		bonus += weights.SwitchBonus
	}
	if p.InstantPayout {
		bonus += weights.InstantPayoutBonus
	}
	if sensitivity > slowSettlementSensitivity && p.SettlementTimeDays > 1 {
		bonus -= weights.SlowSettlementPenalty
	}

	score := weights.FeeWeight*math.Max(0, saving) +
		weights.SettlementWeight*settlement +
		weights.RiskWeight*risk +
		bonus

	passesStrict := p.SuccessRate >= thresholds.MinSuccessRate &&
		(!p.RequiresWhitelist || payment.Merchant.IsWhitelistedFor(p.Name))

	return models.Evaluation{
		Processor:         p.Name,
		FeeCents:          fee,
		SavingPctVsStripe: saving,
		SettlementScore:   settlement,
		RiskScore:         risk,
		Score:             score,
		PassesStrict:      passesStrict,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
