package statement

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Row keys. Transaction rows and the synthetic capital row live in separate key spaces,
// so a category named like the capital row never merges into it.
const (
	categoryKeyPrefix = "category:"
	capitalRowKey     = "capital:new-store"
)

// flowGroup accumulates category rows in first-seen order.
type flowGroup struct {
	rows  []CategoryFlow
	index map[string]int
}

func (g *flowGroup) add(key, category, label string, amount decimal.Decimal) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	i, ok := g.index[key]
	if !ok {
		g.index[key] = len(g.rows)
		g.rows = append(g.rows, CategoryFlow{Category: category, Label: label, Amount: decimal.Zero})
		i = len(g.rows) - 1
	}
	g.rows[i].Amount = g.rows[i].Amount.Add(amount)
	g.rows[i].Count++
}

// sorted returns the rows by amount descending; ties keep first-seen order.
func (g *flowGroup) sorted() ([]CategoryFlow, decimal.Decimal) {
	out := make([]CategoryFlow, len(g.rows))
	copy(out, g.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	total := decimal.Zero
	for _, r := range out {
		total = total.Add(r.Amount)
	}
	return out, total
}

type sectionBuilder struct {
	in, out flowGroup
}

func (b *sectionBuilder) build() ActivitySection {
	inflows, subIn := b.in.sorted()
	outflows, subOut := b.out.sorted()
	return ActivitySection{
		Inflows:         inflows,
		Outflows:        outflows,
		SubtotalInflow:  subIn,
		SubtotalOutflow: subOut,
		NetCashFlow:     subIn.Sub(subOut),
	}
}

// cashFlowBuilder folds annotated transactions into the three activity sections.
type cashFlowBuilder struct {
	sections map[Activity]*sectionBuilder
}

func newCashFlowBuilder() *cashFlowBuilder {
	return &cashFlowBuilder{sections: map[Activity]*sectionBuilder{
		Operating: {},
		Investing: {},
		Financing: {},
	}}
}

func (b *cashFlowBuilder) add(activity Activity, typ TxType, key, category, label string, amount decimal.Decimal) {
	s, ok := b.sections[activity]
	if !ok {
		s = b.sections[Operating]
	}
	if typ == Income {
		s.in.add(key, category, label, amount)
	} else {
		s.out.add(key, category, label, amount)
	}
}

func (b *cashFlowBuilder) addEntry(e Annotated) {
	b.add(e.Class.Activity, e.Type, categoryKeyPrefix+e.Category, e.Category, e.Class.Label, e.Amount)
}

// addCapital books new-store opening capital as its own financing inflow row.
func (b *cashFlowBuilder) addCapital(amount decimal.Decimal) {
	b.add(Financing, Income, capitalRowKey, CapitalInvestmentCategory, labelCapitalIn, amount)
}

func (b *cashFlowBuilder) build(beginning decimal.Decimal) CashFlowStatement {
	st := CashFlowStatement{
		Operating: b.sections[Operating].build(),
		Investing: b.sections[Investing].build(),
		Financing: b.sections[Financing].build(),
	}
	totalIn := st.Operating.SubtotalInflow.Add(st.Investing.SubtotalInflow).Add(st.Financing.SubtotalInflow)
	totalOut := st.Operating.SubtotalOutflow.Add(st.Investing.SubtotalOutflow).Add(st.Financing.SubtotalOutflow)
	net := totalIn.Sub(totalOut)
	st.Summary = Summary{
		TotalInflow:      totalIn,
		TotalOutflow:     totalOut,
		NetIncrease:      net,
		BeginningBalance: beginning,
		EndingBalance:    beginning.Add(net),
	}
	return st
}

// CalculateCashFlow builds the statement of a single entity. The ending balance is
// beginning + net increase and may be negative.
func CalculateCashFlow(entries []Annotated, beginning decimal.Decimal) CashFlowStatement {
	b := newCashFlowBuilder()
	for _, e := range entries {
		b.addEntry(e)
	}
	return b.build(beginning)
}

// InRange keeps the entries dated within [start, end].
func InRange(entries []Annotated, start, end Date) []Annotated {
	out := make([]Annotated, 0, len(entries))
	for _, e := range entries {
		if e.Date.Between(start, end) {
			out = append(out, e)
		}
	}
	return out
}

// ForStore keeps the entries that belong to storeID.
func ForStore(entries []Annotated, storeID string) []Annotated {
	out := make([]Annotated, 0)
	for _, e := range entries {
		if e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out
}
