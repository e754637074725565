// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Message is the outcome of a field rule. Empty means the field is valid;
// any other value is the text shown next to the field.
type Message string

// Field messages produced by the rules.
const (
	Empty                        Message = ""
	BlankEmail                   Message = "Email can't be empty"
	InvalidEmail                 Message = "Email is not valid"
	BlankPassword                Message = "Password can't be empty"
	InvalidPassword              Message = "Password must be at least 6 characters"
	BlankName                    Message = "Name can't be empty"
	InvalidName                  Message = "Name must be at least 3 characters"
	BlankPasswordConfirmation    Message = "Password confirmation can't be empty"
	PasswordConfirmationNotMatch Message = "Passwords don't match"
	BlankRestaurant              Message = "Restaurant can't be empty"
	InvalidRating                Message = "Rating must be a number from 1 to 5"
	ShortComment                 Message = "Comment must be at least 10 characters"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 3
	MinCommentLength  = 10
	MinRating         = 1
	MaxRating         = 5
)

var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// IsValid reports whether m is Empty.
func (m Message) IsValid() bool {
	return m == Empty
}

func (m Message) String() string {
	return string(m)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Email checks a conservative email syntax and rejects addresses that
// repeat the "com" domain label.
func Email(email string) Message {
	switch {
	case isBlank(email):
		return BlankEmail
	case !emailPattern.MatchString(email) || repeatsComLabel(email):
		return InvalidEmail
	default:
		return Empty
	}
}

// repeatsComLabel reports whether the domain of email has more than one
// "com" label, as in mail.com.com. Labels that merely start with "com"
// (company, compass) do not count.
func repeatsComLabel(email string) bool {
	domain := email[strings.LastIndex(email, "@")+1:]

	count := 0
	for _, label := range strings.Split(domain, ".") {
		if strings.EqualFold(label, "com") {
			count++
		}
	}
	return count > 1
}

func Password(password string) Message {
	switch {
	case isBlank(password):
		return BlankPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return InvalidPassword
	default:
		return Empty
	}
}

func Name(name string) Message {
	switch {
	case isBlank(name):
		return BlankName
	case utf8.RuneCountInString(name) < MinNameLength:
		return InvalidName
	default:
		return Empty
	}
}

// PasswordConfirmation checks that confirmation repeats password.
func PasswordConfirmation(password, confirmation string) Message {
	switch {
	case isBlank(confirmation):
		return BlankPasswordConfirmation
	case password != confirmation:
		return PasswordConfirmationNotMatch
	default:
		return Empty
	}
}

func Restaurant(name string) Message {
	if isBlank(name) {
		return BlankRestaurant
	}
	return Empty
}

// Rating checks the text of a rating field.
func Rating(text string) Message {
	rating, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || rating < MinRating || rating > MaxRating {
		return InvalidRating
	}
	return Empty
}

func Comment(text string) Message {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinCommentLength {
		return ShortComment
	}
	return Empty
}
