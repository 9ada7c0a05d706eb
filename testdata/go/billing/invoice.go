package billing

// Invoice is a bill sent to a customer.
//
// @ubiquitous Invoice
// @context Billing
// @description Request for payment
type Invoice struct {
	ID string
}

type (
	// Credit reduces an invoice total.
	// @ubiquitous Credit Note
	Credit struct{}

	// Untagged helper type.
	ledgerEntry struct{}
)

// Amount in minor units.
type Amount int64

// @context Billing
func Total(inv Invoice) Amount { return 0 }
