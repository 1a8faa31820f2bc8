package engine

import "github.com/KrE80r/energy-front/internal/model"

// DiscountClassification is the result of deciding whether a plan's
// advertised discount is unconditionally realizable.
type DiscountClassification struct {
	Guaranteed bool

	// GuaranteedPercent is the net guaranteed discount off the sticker
	// price, 0 when not guaranteed.
	GuaranteedPercent float64

	// GuaranteedCost is the reference quarterly cost with only unconditional
	// discounts applied, when the source supplied one.
	GuaranteedCost float64
}

// ClassifyDiscount decides whether a record's discount is guaranteed.
//
// Primary signal: the three reference cost figures. A discount is
// guaranteed iff every discount contributing to the lowest advertised price
// is unconditional, i.e. allDiscountsCost == guaranteedDiscountCost and
// allDiscountsCost < noDiscountCost.
//
// Secondary signal: a structured discount term flagged conditional forces
// non-guaranteed regardless of the numbers. The reference costs do not
// decompose per-discount, so one conditional term taints the whole figure.
// The two signals occasionally disagree in the source data; on any conflict
// the conservative answer wins — never promise a discount from numeric
// evidence alone.
func ClassifyDiscount(r model.TariffRecord) DiscountClassification {
	d := r.Discount
	if d == nil {
		return DiscountClassification{}
	}
	if d.Conditional {
		return DiscountClassification{}
	}

	noDisc := d.NoDiscountCost
	allDisc := d.AllDiscountsCost
	guarDisc := d.GuaranteedDiscountCost

	if noDisc <= 0 {
		return DiscountClassification{}
	}
	if allDisc != guarDisc || allDisc >= noDisc {
		return DiscountClassification{}
	}

	return DiscountClassification{
		Guaranteed:        true,
		GuaranteedPercent: (noDisc - guarDisc) / noDisc * 100,
		GuaranteedCost:    guarDisc,
	}
}
