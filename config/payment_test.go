package config

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	g := &midtransGateway{serverKey: "SB-Mid-server-testkey"}

	sum := sha512.Sum512([]byte("FEE-7-abc" + "200" + "500.00" + "SB-Mid-server-testkey"))
	valid := hex.EncodeToString(sum[:])

	if !g.VerifySignature("FEE-7-abc", "200", "500.00", valid) {
		t.Error("valid signature rejected")
	}
	if g.VerifySignature("FEE-7-abc", "200", "500.00", "deadbeef") {
		t.Error("forged signature accepted")
	}
	if g.VerifySignature("FEE-8-abc", "200", "500.00", valid) {
		t.Error("signature for another order accepted")
	}
}

func TestNewPaymentGatewayWithoutKey(t *testing.T) {
	if g := NewPaymentGateway(&Config{}); g != nil {
		t.Error("gateway must be nil when no server key is configured")
	}
}
