package transaction

// OutstandingCylinders sums cylinders sold minus cylinders returned over a
// customer's full transaction history. Weight sales are skipped. Unlike the
// balance-implied TotalCylindersDue, this ledger figure is not floored at
// zero; an over-returning customer shows as negative.
//
// The two inventory readings come from different models and are not
// reconciled: callers must pick one deliberately.
func OutstandingCylinders(history []*Transaction) float64 {
	var outstanding float64

	for _, tx := range history {
		if tx.Type != TypeCylinder {
			continue
		}

		outstanding += tx.CylindersSold - tx.CylindersReturned
	}

	return outstanding
}
