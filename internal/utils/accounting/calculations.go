package accounting

import (
	"fmt"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance derives the signed balance of an account from its aggregated
// debit and credit totals, using the accounting convention:
//
//	ASSET / EXPENSE          -> debits minus credits
//	LIABILITY / INCOME / EQUITY -> credits minus debits
//
// The sign convention is always derived from the account's type so every
// caller reports balances the same way.
func SignedBalance(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Income, domain.Equity:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// SumLines returns the exact decimal totals of the debit and credit columns
// across a set of journal lines.
func SumLines(lines []domain.JournalLine) (debitTotal, creditTotal decimal.Decimal) {
	debitTotal = decimal.Zero
	creditTotal = decimal.Zero
	for _, line := range lines {
		debitTotal = debitTotal.Add(line.Debit)
		creditTotal = creditTotal.Add(line.Credit)
	}
	return debitTotal, creditTotal
}
