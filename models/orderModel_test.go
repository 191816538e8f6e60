package models

import "testing"

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
		ok   bool
	}{
		{"pending", OrderStatusPending, true},
		{"Pending", OrderStatusPending, true},
		{"OUT_FOR_DELIVERY", OrderStatusOutForDelivery, true},
		{"delivered", OrderStatusDelivered, true},
		{"", "", false},
		{"shipped", "", false},
		{"done", "", false},
	}

	for _, tc := range cases {
		got, err := ParseOrderStatus(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseOrderStatus(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseOrderStatus(%q) accepted an invalid status", tc.in)
		}
	}
}
