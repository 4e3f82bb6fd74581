package domain

import (
	"testing"
	"time"
)

func TestApplyPayment(t *testing.T) {
	paidAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("full payment marks paid", func(t *testing.T) {
		fee := Fee{FeeID: 7, Amount: 500, Status: FeePending}
		fee.ApplyPayment(500, "cash", "", paidAt)

		if fee.Status != FeePaid {
			t.Errorf("status = %q, want %q", fee.Status, FeePaid)
		}
		if fee.PaidAmount != 500 {
			t.Errorf("paid amount = %v, want 500", fee.PaidAmount)
		}
		if fee.PaidDate == nil || !fee.PaidDate.Equal(paidAt) {
			t.Errorf("paid date = %v, want %v", fee.PaidDate, paidAt)
		}
		if fee.PaymentMethod != "cash" {
			t.Errorf("payment method = %q, want cash", fee.PaymentMethod)
		}
		if fee.ReceiptNumber != "RCP-7-20260315" {
			t.Errorf("receipt = %q, want RCP-7-20260315", fee.ReceiptNumber)
		}
	})

	t.Run("partial payment marks partial", func(t *testing.T) {
		fee := Fee{FeeID: 3, Amount: 1000, Status: FeePending}
		fee.ApplyPayment(400, "online", "TXN-123", paidAt)

		if fee.Status != FeePartial {
			t.Errorf("status = %q, want %q", fee.Status, FeePartial)
		}
		if fee.TransactionID != "TXN-123" {
			t.Errorf("transaction id = %q, want TXN-123", fee.TransactionID)
		}
	})

	t.Run("overpayment still marks paid", func(t *testing.T) {
		fee := Fee{FeeID: 1, Amount: 200}
		fee.ApplyPayment(250, "cash", "", paidAt)
		if fee.Status != FeePaid {
			t.Errorf("status = %q, want %q", fee.Status, FeePaid)
		}
	})

	t.Run("empty transaction id leaves existing", func(t *testing.T) {
		fee := Fee{FeeID: 2, Amount: 100, TransactionID: "TXN-OLD"}
		fee.ApplyPayment(100, "cash", "", paidAt)
		if fee.TransactionID != "TXN-OLD" {
			t.Errorf("transaction id = %q, want TXN-OLD", fee.TransactionID)
		}
	})
}

func TestReceiptNumber(t *testing.T) {
	got := ReceiptNumber(42, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	if got != "RCP-42-20260105" {
		t.Errorf("ReceiptNumber = %q, want RCP-42-20260105", got)
	}
}

func TestSummarizeFees(t *testing.T) {
	tests := []struct {
		name string
		fees []Fee
		want FeeSummary
	}{
		{
			name: "empty",
			want: FeeSummary{},
		},
		{
			name: "pending and paid",
			fees: []Fee{
				{Amount: 500, Status: FeePending},
				{Amount: 300, PaidAmount: 300, Status: FeePaid},
			},
			want: FeeSummary{TotalAmount: 800, PaidAmount: 300, PendingAmount: 500},
		},
		{
			name: "partial counts remainder as pending",
			fees: []Fee{
				{Amount: 1000, PaidAmount: 400, Status: FeePartial},
			},
			want: FeeSummary{TotalAmount: 1000, PaidAmount: 400, PendingAmount: 600},
		},
		{
			name: "overdue counts in both buckets",
			fees: []Fee{
				{Amount: 200, Status: FeeOverdue},
				{Amount: 100, PaidAmount: 100, Status: FeePaid},
			},
			want: FeeSummary{TotalAmount: 300, PaidAmount: 100, PendingAmount: 200, OverdueAmount: 200},
		},
		{
			name: "waived counts toward total only",
			fees: []Fee{
				{Amount: 150, Status: FeeWaived},
				{Amount: 50, Status: FeePending},
			},
			want: FeeSummary{TotalAmount: 200, PendingAmount: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeFees(tt.fees)
			if got != tt.want {
				t.Errorf("SummarizeFees() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
