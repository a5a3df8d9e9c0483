package webhook

import "testing"

func TestSignAndVerify(t *testing.T) {
	body := []byte(`{"event":"appointment.created","data":{"id":"apt-1"}}`)

	sig := Sign("topsecret", body)
	if sig == "" {
		t.Fatal("empty signature")
	}
	if !VerifySignature("topsecret", body, sig) {
		t.Error("signature did not verify against the same secret and body")
	}
	if VerifySignature("othersecret", body, sig) {
		t.Error("signature verified under the wrong secret")
	}
	if VerifySignature("topsecret", []byte(`{"tampered":true}`), sig) {
		t.Error("signature verified over a tampered body")
	}
}

func TestSign_Deterministic(t *testing.T) {
	body := []byte("payload")
	if Sign("s", body) != Sign("s", body) {
		t.Error("signing the same input twice produced different signatures")
	}
	if Sign("s", body) == Sign("s2", body) {
		t.Error("different secrets produced the same signature")
	}
}
