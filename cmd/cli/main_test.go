package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTransactionPayload(t *testing.T) {
	payload, err := transactionPayload("debit", "100", "rent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(payload), `"amount":100`) {
		t.Fatalf("expected integer amount in payload, got %s", payload)
	}

	if !strings.Contains(string(payload), `"kind":"debit"`) {
		t.Fatalf("expected kind in payload, got %s", payload)
	}
}

func TestTransactionPayloadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name               string
		kind, amount, desc string
	}{
		{"unknown kind", "withdraw", "100", "x"},
		{"zero amount", "debit", "0", "x"},
		{"negative amount", "debit", "-5", "x"},
		{"fractional amount", "debit", "1.5", "x"},
		{"non-numeric amount", "credit", "abc", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := transactionPayload(tt.kind, tt.amount, tt.desc); err == nil {
				t.Fatalf("expected error for %s/%s", tt.kind, tt.amount)
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}
