package auth

import "testing"

func TestValidateAdminCredentials(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		pass    string
		wantErr bool
	}{
		{name: "valid", user: "admin@example.com", pass: "Str0ng&Unguessable!", wantErr: false},
		{name: "empty user", user: "", pass: "Str0ng&Unguessable!", wantErr: true},
		{name: "empty password", user: "admin@example.com", pass: "", wantErr: true},
		{name: "too short", user: "admin@example.com", pass: "short", wantErr: true},
		{name: "weak password", user: "admin@example.com", pass: "password1234", wantErr: true},
		{name: "weak prefix", user: "admin@example.com", pass: "admin12345678", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_USER", tt.user)
			t.Setenv("ADMIN_USER_PASSWORD", tt.pass)

			err := ValidateAdminCredentials()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "valid", secret: "k8Jf2mQ9xR4tV7wZ1aB5cD6eF3gH0iLn", wantErr: false},
		{name: "empty", secret: "", wantErr: true},
		{name: "too short", secret: "abc", wantErr: true},
		{name: "weak prefix", secret: "secret000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)

			err := ValidateJWTSecret()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJWTSecret() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
