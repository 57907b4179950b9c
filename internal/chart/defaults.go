package chart

import "github.com/nairabooks/nairabooks/internal/model"

// Codes referenced by the double-entry poster and tax engine.
const (
	CodeCash             = "1000"
	CodeBank             = "1010"
	CodeReceivables      = "1200"
	CodeInputVAT         = "1300"
	CodeEquipment        = "1500"
	CodeInventory        = "1600"
	CodePayables         = "2000"
	CodeVATPayable       = "2100"
	CodeWHTPayable       = "2200"
	CodeLoansPayable     = "2300"
	CodeOwnersCapital    = "3000"
	CodeRetainedEarnings = "3100"
	CodeSalesRevenue     = "4000"
	CodeServiceRevenue   = "4100"
	CodeOtherIncome      = "4200"
	CodeCostOfSales      = "5000"
	CodeRentExpense      = "5100"
	CodeSalaries         = "5200"
	CodeUtilities        = "5300"
	CodeProfessionalFees = "5400"
	CodeAdvertising      = "5500"
	CodeOfficeSupplies   = "6000"
	CodeBankCharges      = "6100"
	CodeMiscExpense      = "6200"
)

// DefaultChart returns the standard chart of accounts for a Nigerian small
// business.
func DefaultChart() []model.ChartAccount {
	accounts := []model.ChartAccount{
		{Code: CodeCash, Name: "Cash", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeBank, Name: "Bank", Class: model.ClassAsset, SubClass: "current", Description: "Primary bank account"},
		{Code: CodeReceivables, Name: "Accounts Receivable", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeInputVAT, Name: "Input VAT Receivable", Class: model.ClassAsset, SubClass: "current", Description: "Recoverable VAT on purchases"},
		{Code: CodeEquipment, Name: "Equipment", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeInventory, Name: "Inventory", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodePayables, Name: "Accounts Payable", Class: model.ClassLiability, SubClass: "current"},
		{Code: CodeVATPayable, Name: "VAT Payable", Class: model.ClassLiability, SubClass: "statutory", Description: "Output VAT owed to FIRS"},
		{Code: CodeWHTPayable, Name: "WHT Payable", Class: model.ClassLiability, SubClass: "statutory", Description: "Withholding tax deducted at source"},
		{Code: CodeLoansPayable, Name: "Loans Payable", Class: model.ClassLiability, SubClass: "long_term"},
		{Code: CodeOwnersCapital, Name: "Owner's Capital", Class: model.ClassEquity, SubClass: "capital"},
		{Code: CodeRetainedEarnings, Name: "Retained Earnings", Class: model.ClassEquity, SubClass: "retained"},
		{Code: CodeSalesRevenue, Name: "Sales Revenue", Class: model.ClassRevenue, SubClass: "operating"},
		{Code: CodeServiceRevenue, Name: "Service Revenue", Class: model.ClassRevenue, SubClass: "operating"},
		{Code: CodeOtherIncome, Name: "Other Income", Class: model.ClassRevenue, SubClass: "non_operating"},
		{Code: CodeCostOfSales, Name: "Cost of Sales", Class: model.ClassExpense, SubClass: "cogs"},
		{Code: CodeRentExpense, Name: "Rent Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeSalaries, Name: "Salaries & Wages", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeUtilities, Name: "Utilities", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeProfessionalFees, Name: "Professional Fees", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeAdvertising, Name: "Advertising & Marketing", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeOfficeSupplies, Name: "Office Supplies", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeBankCharges, Name: "Bank Charges", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeMiscExpense, Name: "Miscellaneous Expense", Class: model.ClassExpense, SubClass: "operating"},
	}
	for i := range accounts {
		accounts[i].NormalBalance = accounts[i].Class.NormalSide()
	}
	return accounts
}
