package roster

// balanceMode determines how the opening balance is read from a row.
type balanceMode int

const (
	// balanceNone means the file carries no balances; customers open at zero.
	balanceNone balanceMode = iota
	// balanceSingle means one signed column (e.g. "Balance" with "1,500.00").
	balanceSingle
	// balanceSplit means separate debit and credit columns, as kept in the
	// old paper ledgers.
	balanceSplit
)

// Profile describes the column layout of a roster export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	NameCol     string
	BalanceMode balanceMode
	BalanceCol  string // used when BalanceMode == balanceSingle
	DebitCol    string // used when BalanceMode == balanceSplit
	CreditCol   string // used when BalanceMode == balanceSplit
	PhoneCol    string // required when set
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.NameCol}

	switch p.BalanceMode {
	case balanceSingle:
		cols = append(cols, p.BalanceCol)
	case balanceSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	if p.PhoneCol != "" {
		cols = append(cols, p.PhoneCol)
	}

	return cols
}

// profiles is the ordered list of roster formats to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "ledger",
		NameCol:     "Customer Name",
		BalanceMode: balanceSplit,
		DebitCol:    "Debit",
		CreditCol:   "Credit",
	},
	{
		Name:        "register",
		NameCol:     "Name",
		BalanceMode: balanceSingle,
		BalanceCol:  "Balance",
	},
	{
		Name:        "contacts",
		NameCol:     "Name",
		BalanceMode: balanceNone,
		PhoneCol:    "Phone",
	},
}

// Optional columns picked up from any profile when present.
const (
	colAddress      = "Address"
	colPhone        = "Phone"
	colEmail        = "Email"
	colCylinderRate = "Cylinder Rate"
	colGasRate      = "Gas Rate"
)
