package validation

import "testing"

type signupForm struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Role          string `json:"role" validate:"required,oneof=seeker contributor moderator"`
	AgreedToTerms bool   `json:"agreed_to_terms" validate:"required"`
}

func TestStructReturnsNilForValidInput(t *testing.T) {
	fields := Struct(&signupForm{
		Email:         "ama@example.com",
		Password:      "longenough",
		Role:          "seeker",
		AgreedToTerms: true,
	})
	if fields != nil {
		t.Fatalf("expected nil, got %v", fields)
	}
}

func TestStructKeysErrorsByField(t *testing.T) {
	fields := Struct(&signupForm{
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	})
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	if fields["email"] != "must be a valid email address" {
		t.Errorf("email message = %q", fields["email"])
	}
	if fields["password"] != "must be at least 8 characters" {
		t.Errorf("password message = %q", fields["password"])
	}
	if fields["role"] != "must be one of: seeker contributor moderator" {
		t.Errorf("role message = %q", fields["role"])
	}
	if fields["agreed_to_terms"] != "is required" {
		t.Errorf("agreed_to_terms message = %q", fields["agreed_to_terms"])
	}
}

func TestToSnakeHandlesInitialisms(t *testing.T) {
	cases := map[string]string{
		"FullName":  "full_name",
		"AvatarURL": "avatar_url",
		"UserID":    "user_id",
		"Email":     "email",
	}
	for in, want := range cases {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
