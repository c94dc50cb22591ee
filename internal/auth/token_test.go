package auth

import "testing"

func TestHashAndVerifyToken(t *testing.T) {
	t.Parallel()

	hash, err := HashToken("secret-token")
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}
	if !VerifyToken("secret-token", hash) {
		t.Fatalf("expected token to verify against its hash")
	}
	if VerifyToken("wrong-token", hash) {
		t.Fatalf("expected mismatched token to fail")
	}
	if VerifyToken("", hash) || VerifyToken("secret-token", "") {
		t.Fatalf("expected blank inputs to fail")
	}
}

func TestHashTokenRequiresInput(t *testing.T) {
	t.Parallel()

	if _, err := HashToken("   "); err == nil {
		t.Fatalf("expected error for blank token")
	}
}

func TestGenerateTokenIsRandom(t *testing.T) {
	t.Parallel()

	first, err := GenerateToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := GenerateToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens")
	}
	if len(first) != generatedTokenBytes*2 {
		t.Fatalf("unexpected token length %d", len(first))
	}
}
