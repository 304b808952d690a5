package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MaxDescriptionLength = 1024
	MinPasswordLength    = 8
	MaxPasswordLength    = 128
)

// Supported currency codes. A closed set: displayed conversions come
// from an external price feed outside this service.
var validCurrencies = map[string]bool{
	"USD": true,
	"INR": true,
	"SOL": true,
	"EUR": true,
	"GBP": true,
}

// CommonCategories is the suggestion vocabulary per transaction type.
// Categories are labels only and never affect balance math; free text
// outside this set is accepted.
var CommonCategories = map[TransactionType][]string{
	TransactionTypeExpense: {
		"Food", "Transportation", "Shopping", "Bills",
		"Entertainment", "Healthcare", "Other",
	},
	TransactionTypeIncome:   {"Salary", "Freelance", "Investment", "Gift", "Other"},
	TransactionTypeTransfer: {"Transfer"},
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SupportedCurrencies returns the supported currency codes, sorted.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(validCurrencies))
	for code := range validCurrencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidateAccountName validates an account name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return NewValidationError("name", "cannot be empty")
	}

	if len(name) > MaxAccountNameLength {
		return NewValidationError("name", fmt.Sprintf("exceeds %d characters", MaxAccountNameLength))
	}

	return nil
}

// ValidateCurrency validates a currency code against the supported set.
func ValidateCurrency(field, currency string) error {
	if !validCurrencies[strings.ToUpper(strings.TrimSpace(currency))] {
		return NewValidationError(field, fmt.Sprintf("%s is not a supported currency", currency))
	}
	return nil
}

// ValidateAmount validates that amount is strictly positive.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError(field, "must be positive")
	}
	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(strings.ToLower(email))) {
		return NewValidationError("email", "invalid format")
	}
	return nil
}

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	if len(password) > MaxPasswordLength {
		return NewValidationError("password", fmt.Sprintf("must not exceed %d characters", MaxPasswordLength))
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const (
		defaultPageSize = 20
		maxPageSize     = 100
	)

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
