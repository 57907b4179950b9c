// Package tax computes Nigerian statutory tax liabilities (VAT, WHT, CGT,
// stamp duty, CIT/PIT) from classified transactions using declarative rate
// tables.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// VATRate is the standard VAT rate (Finance Act 2020).
	VATRate = decimal.NewFromFloat(0.075)
	// CGTRate is the flat capital gains tax rate.
	CGTRate = decimal.NewFromFloat(0.10)
)

// WHTRate holds the resident and non-resident withholding rates for one
// payment type.
type WHTRate struct {
	Resident    decimal.Decimal
	NonResident decimal.Decimal
}

func pct(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// whtRates is keyed by normalized payment type.
var whtRates = map[string]WHTRate{
	"dividends":         {Resident: pct(0.10), NonResident: pct(0.10)},
	"interest":          {Resident: pct(0.10), NonResident: pct(0.10)},
	"rent":              {Resident: pct(0.10), NonResident: pct(0.10)},
	"royalties":         {Resident: pct(0.05), NonResident: pct(0.10)},
	"professional_fees": {Resident: pct(0.05), NonResident: pct(0.10)},
	"commission":        {Resident: pct(0.05), NonResident: pct(0.10)},
	"construction":      {Resident: pct(0.025), NonResident: pct(0.05)},
	"directors_fees":    {Resident: pct(0.10), NonResident: pct(0.10)},
}

// LookupWHT returns the withholding rate for a payment type and residency.
// Unknown payment types fall back to the "other" bracket at rate zero; ok
// reports whether the type was recognized.
func LookupWHT(paymentType string, resident bool) (rate decimal.Decimal, ok bool) {
	r, ok := whtRates[normalize(paymentType)]
	if !ok {
		return decimal.Zero, false
	}
	if resident {
		return r.Resident, true
	}
	return r.NonResident, true
}

// StampRate is either a flat naira amount or a percentage of the transaction
// value, depending on the instrument.
type StampRate struct {
	Flat    decimal.Decimal
	Percent decimal.Decimal
}

var stampRates = map[string]StampRate{
	"lease_agreement":   {Percent: pct(0.0078)},
	"loan_agreement":    {Percent: pct(0.00125)},
	"mortgage":          {Percent: pct(0.00375)},
	"share_transfer":    {Percent: pct(0.0075)},
	"receipt":           {Flat: decimal.NewFromInt(50)},
	"bank_transfer":     {Flat: decimal.NewFromInt(50)},
	"power_of_attorney": {Flat: decimal.NewFromInt(500)},
}

// LookupStampDuty returns the duty for a document type on a transaction
// value. Unknown document types fall back to zero; ok reports recognition.
func LookupStampDuty(documentType string, value decimal.Decimal) (duty, rate decimal.Decimal, ok bool) {
	r, ok := stampRates[normalize(documentType)]
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	if !r.Percent.IsZero() {
		return value.Mul(r.Percent).Round(2), r.Percent, true
	}
	return r.Flat, decimal.Zero, true
}

// CIT turnover tiers (Finance Act small-company regime).
var (
	citSmallCompanyCeiling  = decimal.NewFromInt(25_000_000)
	citMediumCompanyCeiling = decimal.NewFromInt(100_000_000)
	citMediumRate           = pct(0.20)
	citStandardRate         = pct(0.30)
)

// CITRate returns the company income tax rate for a cumulative turnover tier.
// Small companies below the exemption threshold pay nothing.
func CITRate(turnover decimal.Decimal) decimal.Decimal {
	switch {
	case turnover.LessThanOrEqual(citSmallCompanyCeiling):
		return decimal.Zero
	case turnover.LessThanOrEqual(citMediumCompanyCeiling):
		return citMediumRate
	default:
		return citStandardRate
	}
}

// pitBand is one graduated personal income tax band.
type pitBand struct {
	Width decimal.Decimal // zero width = open-ended top band
	Rate  decimal.Decimal
}

var pitBands = []pitBand{
	{Width: decimal.NewFromInt(300_000), Rate: pct(0.07)},
	{Width: decimal.NewFromInt(300_000), Rate: pct(0.11)},
	{Width: decimal.NewFromInt(500_000), Rate: pct(0.15)},
	{Width: decimal.NewFromInt(500_000), Rate: pct(0.19)},
	{Width: decimal.NewFromInt(1_600_000), Rate: pct(0.21)},
	{Rate: pct(0.24)},
}

// ComputePIT applies the graduated personal income tax bands to annual
// taxable income.
func ComputePIT(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	tax := decimal.Zero
	remaining := income
	for _, band := range pitBands {
		slice := remaining
		if !band.Width.IsZero() && slice.GreaterThan(band.Width) {
			slice = band.Width
		}
		tax = tax.Add(slice.Mul(band.Rate))
		remaining = remaining.Sub(slice)
		if !remaining.IsPositive() {
			break
		}
	}
	return tax.Round(2)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
