package billing

import (
	"testing"

	"rental-billing-batch/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAmountFor(t *testing.T) {
	c := Compute(5400, 2)

	t.Run("Driver debits price plus deductible reduction", func(t *testing.T) {
		assert.Equal(t, 5408, AmountFor(domain.ActorDriver, 5400, c))
	})

	t.Run("Owner amount derives to zero", func(t *testing.T) {
		// price - total commission; the split invariant makes this 0 for
		// any rental. Kept as a regression guard on the derivation.
		assert.Equal(t, 0, AmountFor(domain.ActorOwner, 5400, c))

		for _, tc := range []struct{ price, days int }{{1, 0}, {5401, 3}, {68200, 11}} {
			com := Compute(tc.price, tc.days)
			assert.Equal(t, 0, AmountFor(domain.ActorOwner, tc.price, com),
				"price=%d days=%d", tc.price, tc.days)
		}
	})

	t.Run("Insurance and assistance credit their fees", func(t *testing.T) {
		assert.Equal(t, 2700, AmountFor(domain.ActorInsurance, 5400, c))
		assert.Equal(t, 2, AmountFor(domain.ActorAssistance, 5400, c))
	})

	t.Run("Platform credits its fee plus deductible reduction", func(t *testing.T) {
		assert.Equal(t, 2706, AmountFor(domain.ActorDrivy, 5400, c))
	})
}

func TestActions(t *testing.T) {
	c := Compute(5400, 2)
	actions := Actions(5400, c)

	t.Run("Fixed actor order", func(t *testing.T) {
		assert.Len(t, actions, 5)
		order := make([]domain.Actor, 0, len(actions))
		for _, a := range actions {
			order = append(order, a.Who)
		}
		assert.Equal(t, []domain.Actor{
			domain.ActorDriver,
			domain.ActorOwner,
			domain.ActorInsurance,
			domain.ActorAssistance,
			domain.ActorDrivy,
		}, order)
	})

	t.Run("Driver debits and everyone else credits", func(t *testing.T) {
		assert.Equal(t, domain.EntryTypeDebit, actions[0].Type)
		for _, a := range actions[1:] {
			assert.Equal(t, domain.EntryTypeCredit, a.Type, "actor %s", a.Who)
		}
	})

	t.Run("Reference amounts", func(t *testing.T) {
		expected := []domain.Action{
			{Who: domain.ActorDriver, Type: domain.EntryTypeDebit, Amount: 5408},
			{Who: domain.ActorOwner, Type: domain.EntryTypeCredit, Amount: 0},
			{Who: domain.ActorInsurance, Type: domain.EntryTypeCredit, Amount: 2700},
			{Who: domain.ActorAssistance, Type: domain.EntryTypeCredit, Amount: 2},
			{Who: domain.ActorDrivy, Type: domain.EntryTypeCredit, Amount: 2706},
		}
		assert.Equal(t, expected, actions)
	})
}
