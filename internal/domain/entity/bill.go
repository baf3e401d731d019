package entity

// Bill is the immutable result of a bill calculation. All three amounts are
// rounded to two decimal places and satisfy Total == round2(Subtotal + VAT).
type Bill struct {
	Subtotal float64
	VAT      float64
	Total    float64
}
