package model

// AccountClass classifies accounts in the chart of accounts.
type AccountClass string

const (
	ClassAsset     AccountClass = "asset"
	ClassLiability AccountClass = "liability"
	ClassEquity    AccountClass = "equity"
	ClassRevenue   AccountClass = "revenue"
	ClassExpense   AccountClass = "expense"
)

// Valid reports whether the class is one of the five closed variants.
func (c AccountClass) Valid() bool {
	switch c {
	case ClassAsset, ClassLiability, ClassEquity, ClassRevenue, ClassExpense:
		return true
	}
	return false
}

// BalanceSide is the side on which an account's balance is conventionally positive.
type BalanceSide string

const (
	SideDebit  BalanceSide = "debit"
	SideCredit BalanceSide = "credit"
)

// NormalSide returns the conventional normal-balance side for a class.
// Mixed/contra accounts override this via ChartAccount.NormalBalance.
func (c AccountClass) NormalSide() BalanceSide {
	switch c {
	case ClassAsset, ClassExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// ChartAccount is one row in the chart of accounts.
//
// Codes follow the prefix convention: 1xxx asset, 2xxx liability, 3xxx equity,
// 4xxx revenue, 50xx cost of sales, 5xxx/6xxx other expense. A code is
// immutable once a posted journal entry references it.
type ChartAccount struct {
	Code          string       `json:"code"`
	Name          string       `json:"name"`
	Class         AccountClass `json:"class"`
	SubClass      string       `json:"subClass,omitempty"`
	Description   string       `json:"description,omitempty"`
	NormalBalance BalanceSide  `json:"normalBalance"`
	IsCustom      bool         `json:"isCustom,omitempty"`
}
