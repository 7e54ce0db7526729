package statement

// BuiltinCategory is one row of the static fallback table. The same rows seed the
// system categories of a new company.
type BuiltinCategory struct {
	Type                TxType
	Name                string
	Activity            Activity
	Label               string
	Nature              Nature
	IncludeInProfitLoss bool
}

// 现金流量表项目名称
const (
	labelSales            = "销售商品、提供劳务收到的现金"
	labelOtherOperatingIn = "收到的其他与经营活动有关的现金"
	labelPurchases        = "购买商品、接受劳务支付的现金"
	labelStaff            = "支付给职工以及为职工支付的现金"
	labelTaxes            = "支付的各项税费"
	labelOtherOperating   = "支付的其他与经营活动有关的现金"
	labelInvestIncome     = "取得投资收益收到的现金"
	labelDisposal         = "处置固定资产、无形资产和其他长期资产收回的现金净额"
	labelFixedAssets      = "购建固定资产、无形资产和其他长期资产支付的现金"
	labelInvestPaid       = "投资支付的现金"
	labelCapitalIn        = "吸收投资收到的现金"
	labelBorrowing        = "取得借款收到的现金"
	labelRepayment        = "偿还债务支付的现金"
	labelDividends        = "分配股利、利润或偿付利息支付的现金"
)

// CapitalInvestmentCategory is the financing row that carries new-store opening capital.
const CapitalInvestmentCategory = "新店资本投入"

var builtinCategories = []BuiltinCategory{
	{Income, "房费收入", Operating, labelSales, NatureOperating, true},
	{Income, "餐饮收入", Operating, labelSales, NatureOperating, true},
	{Income, "商品销售", Operating, labelSales, NatureOperating, true},
	{Income, "押金收入", Operating, labelOtherOperatingIn, NatureOperating, false},
	{Income, "营业外收入", Operating, labelOtherOperatingIn, NatureNonOperating, true},
	{Income, "投资收益", Investing, labelInvestIncome, NatureNonOperating, true},
	{Income, "资产处置收入", Investing, labelDisposal, NatureNonOperating, true},
	{Income, "股东投资", Financing, labelCapitalIn, NatureOperating, false},
	{Income, "借款收入", Financing, labelBorrowing, NatureOperating, false},

	{Expense, "采购成本", Operating, labelPurchases, NatureOperating, true},
	{Expense, "员工工资", Operating, labelStaff, NatureOperating, true},
	{Expense, "水电费", Operating, labelOtherOperating, NatureOperating, true},
	{Expense, "房租", Operating, labelOtherOperating, NatureOperating, true},
	{Expense, "维修费", Operating, labelOtherOperating, NatureOperating, true},
	{Expense, "税费", Operating, labelTaxes, NatureOperating, true},
	{Expense, "押金退还", Operating, labelOtherOperating, NatureOperating, false},
	{Expense, "营业外支出", Operating, labelOtherOperating, NatureNonOperating, true},
	{Expense, "所得税", Operating, labelTaxes, NatureIncomeTax, true},
	{Expense, "设备购置", Investing, labelFixedAssets, NatureOperating, false},
	{Expense, "装修投入", Investing, labelFixedAssets, NatureOperating, false},
	{Expense, "对外投资", Investing, labelInvestPaid, NatureOperating, false},
	{Expense, "偿还借款", Financing, labelRepayment, NatureOperating, false},
	{Expense, "利息支出", Financing, labelDividends, NatureNonOperating, true},
	{Expense, "股东分红", Financing, labelDividends, NatureOperating, false},
}

// BuiltinCategories returns a copy of the fallback table.
func BuiltinCategories() []BuiltinCategory {
	out := make([]BuiltinCategory, len(builtinCategories))
	copy(out, builtinCategories)
	return out
}

type nameKey struct {
	typ  TxType
	name string
}

var builtinIndex = func() map[nameKey]BuiltinCategory {
	m := make(map[nameKey]BuiltinCategory, len(builtinCategories))
	for _, b := range builtinCategories {
		m[nameKey{b.Type, b.Name}] = b
	}
	return m
}()

// LookupBuiltin finds a fallback row by type and category name.
func LookupBuiltin(typ TxType, name string) (BuiltinCategory, bool) {
	b, ok := builtinIndex[nameKey{typ, name}]
	return b, ok
}
