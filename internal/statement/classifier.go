package statement

import "fmt"

// Source records which lookup tier produced a classification.
type Source int

const (
	// SourceDefault: nothing matched, the activity fell back to operating.
	SourceDefault Source = iota
	// SourceAssigned: the transaction carried its own activity.
	SourceAssigned
	// SourceCategoryID: matched the company category by stable id.
	SourceCategoryID
	// SourceCategoryName: matched the company category by (type, name) only.
	SourceCategoryName
	// SourceFallback: matched the built-in fallback table by (type, name).
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceAssigned:
		return "assigned"
	case SourceCategoryID:
		return "category_id"
	case SourceCategoryName:
		return "category_name"
	case SourceFallback:
		return "fallback"
	default:
		return "default"
	}
}

// Classification is the resolved statement treatment of one transaction.
type Classification struct {
	Activity            Activity
	Label               string
	Nature              Nature
	IncludeInProfitLoss bool
	Source              Source
}

// Resolved reports an explicit classification (transaction or company category).
func (c Classification) Resolved() bool {
	return c.Source == SourceAssigned || c.Source == SourceCategoryID || c.Source == SourceCategoryName
}

// Fallback reports a match in the built-in table.
func (c Classification) Fallback() bool { return c.Source == SourceFallback }

// Defaulted reports that nothing matched.
func (c Classification) Defaulted() bool { return c.Source == SourceDefault }

// ByName reports a match that relied on the category display name.
func (c Classification) ByName() bool {
	return c.Source == SourceCategoryName || c.Source == SourceFallback
}

// Annotated is a transaction together with its classification.
type Annotated struct {
	Transaction
	Class Classification
}

// Classifier resolves activities against one snapshot of the company's categories.
// Build a new one for every computation; it is never cached across snapshots.
type Classifier struct {
	byID   map[string]Category
	byName map[nameKey]Category
}

// NewClassifier indexes categories by id and by (type, name). On duplicate names the
// first category wins.
func NewClassifier(categories []Category) *Classifier {
	c := &Classifier{
		byID:   make(map[string]Category, len(categories)),
		byName: make(map[nameKey]Category, len(categories)),
	}
	for _, cat := range categories {
		if cat.ID != "" {
			if _, dup := c.byID[cat.ID]; !dup {
				c.byID[cat.ID] = cat
			}
		}
		key := nameKey{cat.Type, cat.Name}
		if _, dup := c.byName[key]; !dup {
			c.byName[key] = cat
		}
	}
	return c
}

func (c *Classifier) lookupCategory(tx Transaction) (Category, Source, bool) {
	if c == nil {
		return Category{}, SourceDefault, false
	}
	if tx.CategoryID != "" {
		if cat, ok := c.byID[tx.CategoryID]; ok {
			return cat, SourceCategoryID, true
		}
	}
	if cat, ok := c.byName[nameKey{tx.Type, tx.Category}]; ok {
		return cat, SourceCategoryName, true
	}
	return Category{}, SourceDefault, false
}

// Classify resolves tx. It never fails: unknown categories land in operating.
func (c *Classifier) Classify(tx Transaction) Classification {
	cat, catSource, hasCat := c.lookupCategory(tx)
	builtin, hasBuiltin := LookupBuiltin(tx.Type, tx.Category)

	out := Classification{Activity: Operating, Label: tx.Category, Source: SourceDefault}
	switch {
	case tx.CashFlowActivity != "":
		out.Activity = tx.CashFlowActivity
		out.Source = SourceAssigned
	case hasCat && cat.CashFlowActivity != "":
		out.Activity = cat.CashFlowActivity
		out.Source = catSource
	case hasBuiltin:
		out.Activity = builtin.Activity
		out.Label = builtin.Label
		out.Source = SourceFallback
	}

	switch {
	case tx.TransactionNature != "":
		out.Nature = tx.TransactionNature
	case hasCat && cat.TransactionNature != "":
		out.Nature = cat.TransactionNature
	case hasBuiltin:
		out.Nature = builtin.Nature
	default:
		out.Nature = NatureOperating
	}

	switch {
	case tx.IncludeInProfitLoss != nil:
		out.IncludeInProfitLoss = *tx.IncludeInProfitLoss
	case hasCat && cat.IncludeInProfitLoss != nil:
		out.IncludeInProfitLoss = *cat.IncludeInProfitLoss
	case hasBuiltin:
		out.IncludeInProfitLoss = builtin.IncludeInProfitLoss
	default:
		out.IncludeInProfitLoss = true
	}
	return out
}

// Annotate validates and classifies every transaction, preserving order.
func (c *Classifier) Annotate(txs []Transaction) ([]Annotated, error) {
	out := make([]Annotated, 0, len(txs))
	for _, tx := range txs {
		if err := Validate(tx); err != nil {
			return nil, err
		}
		out = append(out, Annotated{Transaction: tx, Class: c.Classify(tx)})
	}
	return out, nil
}

// Validate rejects transactions the engine cannot compute with.
func Validate(tx Transaction) error {
	switch {
	case !tx.Type.Valid():
		return fmt.Errorf("%w: transaction %s has type %q", ErrInvalidInput, tx.ID, tx.Type)
	case tx.Amount.IsNegative():
		return fmt.Errorf("%w: transaction %s has negative amount %s", ErrInvalidInput, tx.ID, tx.Amount)
	case tx.Date.IsZero():
		return fmt.Errorf("%w: transaction %s has no date", ErrInvalidInput, tx.ID)
	case tx.CashFlowActivity != "" && !tx.CashFlowActivity.Valid():
		return fmt.Errorf("%w: transaction %s has activity %q", ErrInvalidInput, tx.ID, tx.CashFlowActivity)
	case tx.TransactionNature != "" && !tx.TransactionNature.Valid():
		return fmt.Errorf("%w: transaction %s has nature %q", ErrInvalidInput, tx.ID, tx.TransactionNature)
	}
	return nil
}

// checkRange rejects windows whose end precedes their start.
func checkRange(start, end Date) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: date range needs both start and end", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: range end %s before start %s", ErrInvalidInput, end, start)
	}
	return nil
}
