package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "motdepasse" {
		t.Fatal("expected hash to differ from the plain password")
	}

	if !CheckPassword("motdepasse", hash) {
		t.Error("expected the correct password to match")
	}
	if CheckPassword("autremotdepasse", hash) {
		t.Error("expected a wrong password to fail")
	}
	if CheckPassword("motdepasse", "not-a-bcrypt-hash") {
		t.Error("expected a malformed hash to fail")
	}
}
