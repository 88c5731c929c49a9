package auth

import "testing"

func TestStaticKey_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		presented  string
		wantAuth   bool
		wantErrCod string
	}{
		{"no key configured, no header", "", "", true, ""},
		{"no key configured, any header", "", "whatever", true, ""},
		{"matching key", "abc", "abc", true, ""},
		{"wrong key", "abc", "wrong", false, ErrCodeInvalidKey},
		{"prefix of key", "abc", "ab", false, ErrCodeInvalidKey},
		{"missing header", "abc", "", false, ErrCodeMissingKey},
		{"case sensitive", "abc", "ABC", false, ErrCodeInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStaticKey(tt.key).Authenticate(tt.presented)
			if got.Authenticated != tt.wantAuth {
				t.Errorf("Authenticated = %v, want %v", got.Authenticated, tt.wantAuth)
			}
			if got.ErrorCode != tt.wantErrCod {
				t.Errorf("ErrorCode = %q, want %q", got.ErrorCode, tt.wantErrCod)
			}
		})
	}
}

func TestStaticKey_Enabled(t *testing.T) {
	var nilKey *StaticKey
	if nilKey.Enabled() {
		t.Error("nil StaticKey should be disabled")
	}
	if !nilKey.Authenticate("x").Authenticated {
		t.Error("nil StaticKey should accept every request")
	}
	if NewStaticKey("").Enabled() {
		t.Error("empty key should be disabled")
	}
	if !NewStaticKey("k").Enabled() {
		t.Error("non-empty key should be enabled")
	}
}
