package services

import "printshop/internal/core/domain/model/order"

// Pricing constants. Page counts are coarse placeholders: the shop does not
// parse page-range strings, it only distinguishes "all" from a selection.
const (
	colorPageRate    = 8.0
	standardPageRate = 1.5

	allPagesEstimate    = 10
	subsetPagesEstimate = 5

	bindingSurcharge = 25.0
)

// EstimateCost computes the total cost of a print order.
//
// Custom-print orders are always zero: pricing is deferred to manual admin
// quoting. Everything else is rate x estimated pages x copies, with a fixed
// surcharge added once for bound orders.
//
// Pure and deterministic; performs no I/O.
func EstimateCost(printType order.PrintType, selectedPages string, copies int) float64 {
	if printType == order.PrintTypeCustomPrint {
		return 0
	}

	rate := standardPageRate
	if printType == order.PrintTypeColor {
		rate = colorPageRate
	}

	pages := subsetPagesEstimate
	if selectedPages == "all" {
		pages = allPagesEstimate
	}

	total := rate * float64(pages) * float64(copies)
	if printType.HasBindingSurcharge() {
		total += bindingSurcharge
	}
	return total
}
