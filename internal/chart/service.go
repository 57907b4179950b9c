package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nairabooks/nairabooks/internal/model"
)

var (
	// ErrAccountNotFound is returned when a code resolves to no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmptyCode is returned when a custom account has a blank code.
	ErrEmptyCode = errors.New("empty account code")
	// ErrDuplicateCode is returned when a custom account reuses an existing code.
	ErrDuplicateCode = errors.New("duplicate account code")
	// ErrInvalidClass is returned when a custom account has an unknown class.
	ErrInvalidClass = errors.New("invalid account class")
)

// Registry provides in-memory lookup over the chart of accounts. Standard
// accounts are fixed; custom accounts may be added but never renumbered.
type Registry struct {
	standard []model.ChartAccount
	custom   []model.ChartAccount
	byCode   map[string]model.ChartAccount
}

// NewRegistry creates a Registry from a slice of standard accounts.
func NewRegistry(accounts []model.ChartAccount) *Registry {
	byCode := make(map[string]model.ChartAccount, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Registry{standard: accounts, byCode: byCode}
}

// Default returns a Registry seeded with the standard Nigerian SMB chart.
func Default() *Registry {
	return NewRegistry(DefaultChart())
}

// Resolve returns the account for a code.
func (r *Registry) Resolve(code string) (model.ChartAccount, error) {
	a, ok := r.byCode[code]
	if !ok {
		return model.ChartAccount{}, fmt.Errorf("%w: %q", ErrAccountNotFound, code)
	}
	return a, nil
}

// Exists reports whether an account code exists.
func (r *Registry) Exists(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// All returns standard accounts followed by custom accounts.
func (r *Registry) All() []model.ChartAccount {
	out := make([]model.ChartAccount, 0, len(r.standard)+len(r.custom))
	out = append(out, r.standard...)
	out = append(out, r.custom...)
	return out
}

// Custom returns only user-defined accounts.
func (r *Registry) Custom() []model.ChartAccount {
	out := make([]model.ChartAccount, len(r.custom))
	copy(out, r.custom)
	return out
}

// ByClass returns all accounts of the given class.
func (r *Registry) ByClass(class model.AccountClass) []model.ChartAccount {
	var out []model.ChartAccount
	for _, a := range r.All() {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

// AddCustom validates and appends a user-defined account. Standard accounts
// are never mutated.
func (r *Registry) AddCustom(draft model.ChartAccount) (model.ChartAccount, error) {
	code := strings.TrimSpace(draft.Code)
	if code == "" {
		return model.ChartAccount{}, ErrEmptyCode
	}
	if r.Exists(code) {
		return model.ChartAccount{}, fmt.Errorf("%w: %q", ErrDuplicateCode, code)
	}
	if !draft.Class.Valid() {
		return model.ChartAccount{}, fmt.Errorf("%w: %q", ErrInvalidClass, draft.Class)
	}

	acct := draft
	acct.Code = code
	acct.IsCustom = true
	if acct.NormalBalance == "" {
		acct.NormalBalance = acct.Class.NormalSide()
	}

	r.custom = append(r.custom, acct)
	r.byCode[code] = acct
	return acct, nil
}
