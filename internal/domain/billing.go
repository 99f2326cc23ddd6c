package domain

// BillInput carries the manually entered numbers of the bill form. Nil means
// the operator has not filled the field yet.
type BillInput struct {
	OpenKm       *float64
	CloseKm      *float64
	TaxiRate     *float64
	PerDay       *float64
	ExtraCharges *float64
}

// BillCalc holds the derived fields. TotalKm and TotalBill stay nil while
// they cannot be computed; blank signals "not yet computable", not zero.
type BillCalc struct {
	TotalKm   *float64
	TotalBill *float64
	Balance   float64
}

// ComputeBill derives km total, fare and balance from the raw inputs. It is
// pure and recomputed from scratch on every change; a non-positive odometer
// delta suppresses the derived fields rather than producing an error.
func ComputeBill(in BillInput) BillCalc {
	var out BillCalc

	if in.OpenKm != nil && in.CloseKm != nil {
		delta := *in.CloseKm - *in.OpenKm
		if delta > 0 {
			out.TotalKm = &delta
			if in.TaxiRate != nil {
				fare := delta * *in.TaxiRate
				out.TotalBill = &fare
			}
		}
	}

	out.Balance = orZero(in.PerDay) + orZero(out.TotalBill) + orZero(in.ExtraCharges)
	return out
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
