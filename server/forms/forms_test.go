package forms_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uniguide/webapp/server/forms"
)

func TestValidate_Signup(t *testing.T) {
	valid := forms.Signup{
		DisplayName: "Asha Rao",
		Email:       "asha@example.com",
		Password:    "correct-horse",
		Role:        "student",
	}

	t.Run("valid form", func(t *testing.T) {
		require.NoError(t, forms.Validate(valid))
	})

	t.Run("empty email", func(t *testing.T) {
		f := valid
		f.Email = ""
		err := forms.Validate(f)
		require.Error(t, err)
		require.Contains(t, err.Error(), "email is required")
	})

	t.Run("malformed email", func(t *testing.T) {
		f := valid
		f.Email = "not-an-email"
		err := forms.Validate(f)
		require.Error(t, err)
		require.Contains(t, err.Error(), "valid email")
	})

	t.Run("short password", func(t *testing.T) {
		f := valid
		f.Password = "short"
		err := forms.Validate(f)
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 8")
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		f := valid
		f.Role = "admin"
		require.Error(t, forms.Validate(f))
	})
}

func TestValidate_OTP(t *testing.T) {
	t.Run("six digits pass", func(t *testing.T) {
		require.NoError(t, forms.Validate(forms.OTPVerify{Email: "a@b.co", Code: "123456"}))
	})

	t.Run("letters fail", func(t *testing.T) {
		err := forms.Validate(forms.OTPVerify{Email: "a@b.co", Code: "12345x"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "only digits")
	})
}

func TestValidate_ResetPassword(t *testing.T) {
	err := forms.Validate(forms.ResetPassword{Token: "tok", Password: "longenough1", Confirm: "different11"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "do not match")
}

func TestValidate_NegotiationResponse(t *testing.T) {
	t.Run("accept needs no counter", func(t *testing.T) {
		require.NoError(t, forms.Validate(forms.NegotiationResponse{Action: "accept"}))
	})

	t.Run("counter requires an amount", func(t *testing.T) {
		err := forms.Validate(forms.NegotiationResponse{Action: "counter"})
		require.Error(t, err)
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		require.Error(t, forms.Validate(forms.NegotiationResponse{Action: "haggle"}))
	})
}
