package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"ynot/models"
)

const MinPasswordLength = 6

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}' \-]+$`)
)

func ValidateString(field, val string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(val)
	if length < minLen || length > maxLen {
		return fmt.Errorf("%s must be between %d and %d characters", field, minLen, maxLen)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func ValidateName(field, val string) error {
	if err := ValidateString(field, val, 1, 50); err != nil {
		return err
	}
	if !nameRegex.MatchString(val) {
		return fmt.Errorf("%s must contain only letters", field)
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func ValidateCredentials(creds models.Credentials) error {
	if err := ValidateEmail(creds.Email); err != nil {
		return err
	}
	if creds.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

func ValidateRegistration(req models.RegisterRequest) error {
	if err := ValidateName("first_name", req.FirstName); err != nil {
		return err
	}
	if err := ValidateName("last_name", req.LastName); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	return ValidatePassword(req.Password)
}

// ValidateCartItem checks a line before it is sent to the payment API.
func ValidateCartItem(item models.CartItem) error {
	if item.ID == "" {
		return fmt.Errorf("cart item id cannot be empty")
	}
	if !item.Type.Valid() {
		return fmt.Errorf("ticket type must be %q or %q, got %q", models.TicketStandard, models.TicketVIP, item.Type)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}
