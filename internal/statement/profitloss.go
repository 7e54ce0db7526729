package statement

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type plBucket int

const (
	bucketNone plBucket = iota
	bucketRevenue
	bucketCost
	bucketNonOpIncome
	bucketNonOpExpense
)

// bucketOf places an entry in a P&L section. Income tax is folded into
// non-operating expense; entries excluded from P&L land nowhere.
func bucketOf(e Annotated) plBucket {
	if !e.Class.IncludeInProfitLoss {
		return bucketNone
	}
	operating := e.Class.Nature == NatureOperating || e.Class.Nature == ""
	switch {
	case e.Type == Income && operating:
		return bucketRevenue
	case e.Type == Expense && operating:
		return bucketCost
	case e.Type == Income:
		return bucketNonOpIncome
	default:
		return bucketNonOpExpense
	}
}

type detailGroup struct {
	rows  []CategoryDetail
	index map[string]int
}

func (g *detailGroup) add(category string, amount decimal.Decimal) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	i, ok := g.index[category]
	if !ok {
		g.index[category] = len(g.rows)
		g.rows = append(g.rows, CategoryDetail{Category: category, Amount: decimal.Zero})
		i = len(g.rows) - 1
	}
	g.rows[i].Amount = g.rows[i].Amount.Add(amount)
	g.rows[i].Count++
}

func (g *detailGroup) build() PLSection {
	items := make([]CategoryDetail, len(g.rows))
	copy(items, g.rows)

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	for i := range items {
		items[i].Percentage = Percentage(items[i].Amount, total)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})
	return PLSection{Items: items, Total: total}
}

// Percentage returns part / total * 100 rounded to two places, or 0 when total is 0.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(total, 2)
}

// CalculateProfitLoss builds the P&L statement. netProfit equals totalProfit: income
// tax is already inside non-operating expense and is not subtracted a second time.
func CalculateProfitLoss(entries []Annotated) ProfitLossStatement {
	var revenue, cost, nonOpIn, nonOpOut detailGroup
	for _, e := range entries {
		switch bucketOf(e) {
		case bucketRevenue:
			revenue.add(e.Category, e.Amount)
		case bucketCost:
			cost.add(e.Category, e.Amount)
		case bucketNonOpIncome:
			nonOpIn.add(e.Category, e.Amount)
		case bucketNonOpExpense:
			nonOpOut.add(e.Category, e.Amount)
		}
	}

	st := ProfitLossStatement{
		Revenue:             revenue.build(),
		Cost:                cost.build(),
		NonOperatingIncome:  nonOpIn.build(),
		NonOperatingExpense: nonOpOut.build(),
	}
	st.OperatingProfit = st.Revenue.Total.Sub(st.Cost.Total)
	st.TotalProfit = st.OperatingProfit.Add(st.NonOperatingIncome.Total).Sub(st.NonOperatingExpense.Total)
	st.NetProfit = st.TotalProfit
	return st
}
