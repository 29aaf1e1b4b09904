package core

import "testing"

func TestSplitInstallments(t *testing.T) {
	base := Expense{
		Description: "Notebook",
		Amount:      500,
		Category:    "other",
		Payment:     PaymentCredit,
		Date:        NewDate(2025, 1, 31),
	}

	t.Run("single installment returns the expense untouched", func(t *testing.T) {
		got := SplitInstallments(base, 1, "g1")
		if len(got) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(got))
		}
		if got[0].Description != "Notebook" || got[0].InstallmentGroupID != "" {
			t.Errorf("single installment must not be grouped or suffixed: %+v", got[0])
		}
	})

	t.Run("end-of-month dates clamp per target month", func(t *testing.T) {
		got := SplitInstallments(base, 3, "g1")
		if len(got) != 3 {
			t.Fatalf("expected 3 installments, got %d", len(got))
		}
		wantDates := []string{"2025-01-31", "2025-02-28", "2025-03-31"}
		wantDescs := []string{"Notebook (1/3)", "Notebook (2/3)", "Notebook (3/3)"}
		for i, inst := range got {
			if inst.Date.String() != wantDates[i] {
				t.Errorf("installment %d date = %s, want %s", i+1, inst.Date, wantDates[i])
			}
			if inst.Description != wantDescs[i] {
				t.Errorf("installment %d description = %q, want %q", i+1, inst.Description, wantDescs[i])
			}
			if inst.InstallmentGroupID != "g1" {
				t.Errorf("installment %d group = %q, want g1", i+1, inst.InstallmentGroupID)
			}
			if inst.Amount != base.Amount {
				t.Errorf("installment %d amount = %v, want %v", i+1, inst.Amount, base.Amount)
			}
		}
	})

	t.Run("leap february keeps the 29th", func(t *testing.T) {
		expense := base
		expense.Date = NewDate(2024, 1, 31)
		got := SplitInstallments(expense, 2, "g2")
		if got[1].Date.String() != "2024-02-29" {
			t.Errorf("second installment date = %s, want 2024-02-29", got[1].Date)
		}
	})
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		date   Date
		months int
		want   string
	}{
		{"mid-month date keeps its day", NewDate(2025, 1, 15), 1, "2025-02-15"},
		{"31st clamps to short month", NewDate(2025, 1, 31), 1, "2025-02-28"},
		{"clamp does not stick to later months", NewDate(2025, 1, 31), 2, "2025-03-31"},
		{"december rolls into next year", NewDate(2025, 12, 10), 1, "2026-01-10"},
		{"30th clamps to february", NewDate(2025, 11, 30), 3, "2026-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonthsClamped(tt.date, tt.months); got.String() != tt.want {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s", tt.date, tt.months, got, tt.want)
			}
		})
	}
}
