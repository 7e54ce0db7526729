package statement

import "github.com/shopspring/decimal"

// signed returns +amount for income and -amount for expense.
func signed(e Annotated) decimal.Decimal {
	if e.Type == Income {
		return e.Amount
	}
	return e.Amount.Neg()
}

// ResolveBeginningBalance returns the balance an entity held just before queryStart.
// When queryStart is on or before openingDate the opening balance is returned as is;
// otherwise history dated [openingDate, queryStart-1] is carried forward.
func ResolveBeginningBalance(opening decimal.Decimal, openingDate, queryStart Date, history []Annotated) decimal.Decimal {
	if !queryStart.After(openingDate) {
		return opening
	}
	last := queryStart.AddDays(-1)
	balance := opening
	for _, e := range history {
		if e.Date.Between(openingDate, last) {
			balance = balance.Add(signed(e))
		}
	}
	return balance
}
