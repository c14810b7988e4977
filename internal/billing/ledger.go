package billing

import "rental-billing-batch/internal/domain"

// AmountFor returns the ledger amount for one actor. The owner amount is
// derived from the full fee split rather than hardcoded to zero, so a future
// change to the split flows through here untouched.
func AmountFor(actor domain.Actor, price int, c Commission) int {
	switch actor {
	case domain.ActorDriver:
		return price + c.DeductibleReductionFee
	case domain.ActorOwner:
		return price - c.TotalFee()
	case domain.ActorInsurance:
		return c.InsuranceFee
	case domain.ActorAssistance:
		return c.AssistanceFee
	case domain.ActorDrivy:
		return c.DrivyFee + c.DeductibleReductionFee
	}
	return 0
}

// Actions builds the per-actor ledger entries for one rental, in the fixed
// actor order. The driver debits; every other actor credits.
func Actions(price int, c Commission) []domain.Action {
	actions := make([]domain.Action, 0, len(domain.Actors))
	for _, actor := range domain.Actors {
		entryType := domain.EntryTypeCredit
		if actor == domain.ActorDriver {
			entryType = domain.EntryTypeDebit
		}
		actions = append(actions, domain.Action{
			Who:    actor,
			Type:   entryType,
			Amount: AmountFor(actor, price, c),
		})
	}
	return actions
}
