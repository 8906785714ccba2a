package seatmap

import "moviebook-cli/model"

// Pricing derives seat prices from the show's two price points. Missing
// price fields default to zero, so a degraded show fetch still yields a
// renderable (free-looking) grid rather than an error.
type Pricing struct {
	Regular float64
	Premium float64
}

func PricingFromShow(show model.Show) Pricing {
	return Pricing{Regular: show.PriceRegular, Premium: show.PricePremium}
}

// PriceFor returns the per-seat price for a row classification.
func (p Pricing) PriceFor(layout Layout, rowIndex int) float64 {
	if layout.IsPremium(rowIndex) {
		return p.Premium
	}
	return p.Regular
}

// Total sums PriceFor over the selection. Pure function of its inputs; the
// caller recomputes on every selection or pricing change instead of caching.
func (p Pricing) Total(selection *Selection) float64 {
	layout := selection.Layout()
	total := 0.0
	for _, label := range selection.Labels() {
		rowIndex, _, ok := layout.ParseLabel(label)
		if !ok {
			continue
		}
		total += p.PriceFor(layout, rowIndex)
	}
	return total
}
