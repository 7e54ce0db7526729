// Package statement computes cash-flow and profit/loss statements from already-fetched
// transactions, categories and stores. It performs no I/O and keeps no state between calls.
package statement

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every error caused by ill-typed input.
var ErrInvalidInput = errors.New("statement: invalid input")

// TxType is the direction of a transaction.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

func (t TxType) Valid() bool { return t == Income || t == Expense }

// Activity is the cash-flow activity a transaction belongs to.
type Activity string

const (
	Operating Activity = "operating"
	Investing Activity = "investing"
	Financing Activity = "financing"
)

// Activities lists the three activities in statement order.
var Activities = []Activity{Operating, Investing, Financing}

func (a Activity) Valid() bool {
	return a == Operating || a == Investing || a == Financing
}

// Nature tells whether a transaction counts toward operating profit.
type Nature string

const (
	NatureOperating    Nature = "operating"
	NatureNonOperating Nature = "non_operating"
	// NatureIncomeTax is reported inside non-operating expense.
	NatureIncomeTax Nature = "income_tax"
)

func (n Nature) Valid() bool {
	return n == NatureOperating || n == NatureNonOperating || n == NatureIncomeTax
}

// Transaction is an immutable cash movement. CashFlowActivity, TransactionNature and
// IncludeInProfitLoss are optional annotations assigned at capture time.
type Transaction struct {
	ID         string
	Type       TxType
	Category   string
	CategoryID string
	Amount     decimal.Decimal
	Date       Date
	StoreID    string // empty for company-level entries

	CashFlowActivity    Activity
	TransactionNature   Nature
	IncludeInProfitLoss *bool
}

// Category maps a (type, name) pair to its statement treatment.
type Category struct {
	ID                  string
	Type                TxType
	Name                string
	CashFlowActivity    Activity
	TransactionNature   Nature
	IncludeInProfitLoss *bool
	IsSystem            bool
}

// Store is one accounting entity. A zero InitialBalanceDate means no opening balance is tracked.
type Store struct {
	ID                 string
	Name               string
	Status             string
	InitialBalance     decimal.Decimal
	InitialBalanceDate Date
}

// CategoryFlow is one category row inside an activity section.
type CategoryFlow struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// ActivitySection holds the inflows and outflows of one activity.
type ActivitySection struct {
	Inflows         []CategoryFlow  `json:"inflows"`
	Outflows        []CategoryFlow  `json:"outflows"`
	SubtotalInflow  decimal.Decimal `json:"subtotalInflow"`
	SubtotalOutflow decimal.Decimal `json:"subtotalOutflow"`
	NetCashFlow     decimal.Decimal `json:"netCashFlow"`
}

// Summary is the bottom block of a cash-flow statement.
type Summary struct {
	TotalInflow      decimal.Decimal `json:"totalInflow"`
	TotalOutflow     decimal.Decimal `json:"totalOutflow"`
	NetIncrease      decimal.Decimal `json:"netIncrease"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// CashFlowStatement is the statement of one accounting entity.
type CashFlowStatement struct {
	Operating ActivitySection `json:"operating"`
	Investing ActivitySection `json:"investing"`
	Financing ActivitySection `json:"financing"`
	Summary   Summary         `json:"summary"`
}

// Section returns the section for a.
func (s CashFlowStatement) Section(a Activity) ActivitySection {
	switch a {
	case Investing:
		return s.Investing
	case Financing:
		return s.Financing
	default:
		return s.Operating
	}
}

// StoreStatus is how a store relates to a query window.
type StoreStatus string

const (
	StorePreExisting  StoreStatus = "pre_existing"
	StoreNewlyOpened  StoreStatus = "newly_opened"
	StoreNotYetOpened StoreStatus = "not_yet_opened"
	StoreUntracked    StoreStatus = "untracked"
)

// StoreBreakdown is one store's line in a consolidated statement.
type StoreBreakdown struct {
	StoreID          string          `json:"storeId"`
	StoreName        string          `json:"storeName"`
	Status           StoreStatus     `json:"status"`
	IsNewStore       bool            `json:"isNewStore"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	OpeningCapital   decimal.Decimal `json:"openingCapital"`
	NetCashFlow      decimal.Decimal `json:"netCashFlow"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// NewStoreCapitalInvestment is the opening balance of a store that opened inside the window.
type NewStoreCapitalInvestment struct {
	StoreID   string          `json:"storeId"`
	StoreName string          `json:"storeName"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
}

// ConsolidatedCashFlow combines several stores into one statement.
type ConsolidatedCashFlow struct {
	CashFlowStatement
	StoreBreakdown             []StoreBreakdown            `json:"storeBreakdown"`
	NewStoreCapitalInvestments []NewStoreCapitalInvestment `json:"newStoreCapitalInvestments"`
}

// MonthPoint is one month of a cash-flow series.
type MonthPoint struct {
	Month            string          `json:"month"`
	Operating        decimal.Decimal `json:"operating"`
	Investing        decimal.Decimal `json:"investing"`
	Financing        decimal.Decimal `json:"financing"`
	NetIncrease      decimal.Decimal `json:"netIncrease"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// CategoryDetail is one category row inside a P&L section.
type CategoryDetail struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PLSection is a P&L block with its category rows.
type PLSection struct {
	Items []CategoryDetail `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// ProfitLossStatement is the profit and loss statement.
type ProfitLossStatement struct {
	Revenue             PLSection       `json:"revenue"`
	Cost                PLSection       `json:"cost"`
	OperatingProfit     decimal.Decimal `json:"operatingProfit"`
	NonOperatingIncome  PLSection       `json:"nonOperatingIncome"`
	NonOperatingExpense PLSection       `json:"nonOperatingExpense"`
	TotalProfit         decimal.Decimal `json:"totalProfit"`
	NetProfit           decimal.Decimal `json:"netProfit"`
}
