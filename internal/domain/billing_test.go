package domain

import "testing"

func f(v float64) *float64 { return &v }

func TestComputeBillFullInputs(t *testing.T) {
	calc := ComputeBill(BillInput{
		OpenKm:       f(100),
		CloseKm:      f(250),
		TaxiRate:     f(12),
		PerDay:       f(500),
		ExtraCharges: f(200),
	})

	if calc.TotalKm == nil || *calc.TotalKm != 150 {
		t.Fatalf("totalKm: got %v, want 150", calc.TotalKm)
	}
	if calc.TotalBill == nil || *calc.TotalBill != 1800 {
		t.Fatalf("totalBill: got %v, want 1800", calc.TotalBill)
	}
	if calc.Balance != 2500 {
		t.Fatalf("balance: got %v, want 2500", calc.Balance)
	}
}

func TestComputeBillCloseBeforeOpen(t *testing.T) {
	calc := ComputeBill(BillInput{
		OpenKm:   f(300),
		CloseKm:  f(250),
		TaxiRate: f(12),
	})

	if calc.TotalKm != nil {
		t.Fatalf("totalKm should be blank when close < open, got %v", *calc.TotalKm)
	}
	if calc.TotalBill != nil {
		t.Fatalf("totalBill should be blank when total km is blank, got %v", *calc.TotalBill)
	}
	if calc.Balance != 0 {
		t.Fatalf("balance: got %v, want 0", calc.Balance)
	}
}

func TestComputeBillMissingRate(t *testing.T) {
	calc := ComputeBill(BillInput{
		OpenKm:  f(100),
		CloseKm: f(250),
		PerDay:  f(500),
	})

	if calc.TotalKm == nil || *calc.TotalKm != 150 {
		t.Fatalf("totalKm: got %v, want 150", calc.TotalKm)
	}
	if calc.TotalBill != nil {
		t.Fatalf("totalBill should be blank without a rate, got %v", *calc.TotalBill)
	}
	if calc.Balance != 500 {
		t.Fatalf("balance should fall back to per-day alone, got %v", calc.Balance)
	}
}

func TestComputeBillEmptyInput(t *testing.T) {
	calc := ComputeBill(BillInput{})
	if calc.TotalKm != nil || calc.TotalBill != nil {
		t.Fatalf("derived fields should stay blank with no inputs")
	}
	if calc.Balance != 0 {
		t.Fatalf("balance: got %v, want 0", calc.Balance)
	}
}
