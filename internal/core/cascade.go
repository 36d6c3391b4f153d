package core

// RenameTag rewrites every transaction and template referencing oldName to
// reference newName. It operates on copies and returns both updated
// collections plus the number of rewritten records, so callers never observe
// a partially applied rename. Tag deletion has no counterpart here on
// purpose: dangling references stay and render under the built-in type label.
func RenameTag(byMonth TransactionsByMonth, templates []Template, oldName, newName string) (TransactionsByMonth, []Template, int) {
	affected := 0

	outMonths := make(TransactionsByMonth, len(byMonth))
	for key, bucket := range byMonth {
		copied := append([]Transaction(nil), bucket...)
		for i := range copied {
			if copied[i].Tag == oldName {
				copied[i].Tag = newName
				affected++
			}
		}
		outMonths[key] = copied
	}

	outTemplates := append([]Template(nil), templates...)
	for i := range outTemplates {
		if outTemplates[i].Tag == oldName {
			outTemplates[i].Tag = newName
			affected++
		}
	}

	return outMonths, outTemplates, affected
}
