package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ToSingleLine flattens a response body to a single log friendly line.
func ToSingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// BodyToSingleLine reads the body and flattens it for logging,
// returning a reading error as the line itself.
func BodyToSingleLine(body io.Reader) string {
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("reading body: %s", err)
	}
	return ToSingleLine(string(b))
}

var (
	ErrHostnameLabelEmpty    = errors.New("hostname label is empty")
	ErrHostnameLabelTooLong  = errors.New("hostname label is too long")
	ErrHostnameTooLong       = errors.New("hostname is too long")
	ErrHostnameRuneNotValid  = errors.New("hostname has an invalid character")
	ErrHostnameLabelHyphened = errors.New("hostname label starts or ends with a hyphen")
)

// CheckHostname returns an error if the hostname is not a valid DNS
// name per RFC 1123.
func CheckHostname(hostname string) (err error) {
	const maxLength = 253
	if len(hostname) > maxLength {
		return fmt.Errorf("%w: %d characters exceeding the maximum of %d",
			ErrHostnameTooLong, len(hostname), maxLength)
	}

	for _, label := range strings.Split(hostname, ".") {
		err = checkLabel(label)
		if err != nil {
			return fmt.Errorf("%w: in hostname %q", err, hostname)
		}
	}
	return nil
}

func checkLabel(label string) (err error) {
	const maxLabelLength = 63
	switch {
	case label == "":
		return fmt.Errorf("%w", ErrHostnameLabelEmpty)
	case len(label) > maxLabelLength:
		return fmt.Errorf("%w: %q", ErrHostnameLabelTooLong, label)
	case label[0] == '-', label[len(label)-1] == '-':
		return fmt.Errorf("%w: %q", ErrHostnameLabelHyphened, label)
	}

	for _, r := range label {
		isValid := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-'
		if !isValid {
			return fmt.Errorf("%w: %q in label %q", ErrHostnameRuneNotValid, r, label)
		}
	}
	return nil
}
