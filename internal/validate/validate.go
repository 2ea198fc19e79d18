// Package validate checks raw field values against a small set of tagged
// predicates shared by every domain package.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type Tag string

const (
	TagAccountNumber Tag = "accountNumber"
	TagMail          Tag = "mail"
	TagContactInfo   Tag = "contactInfo"
	TagName          Tag = "name"
	TagHumanName     Tag = "humanName"
	TagCarMake       Tag = "carMake"
	TagModelName     Tag = "modelName"
	TagUsername      Tag = "username"
	TagCompanyName   Tag = "companyName"
	TagMessage       Tag = "message"
	TagAmount        Tag = "amount"
	TagPrice         Tag = "price"
	TagSalary        Tag = "salary"
)

var ErrValidation = errors.New("validation failed")

// ValidationError identifies the tag whose predicate rejected a value.
type ValidationError struct {
	Tag Tag
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Tag)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	accountNumberRe = regexp.MustCompile(`^[0-9]{10}$`)
	mailRe          = regexp.MustCompile(`^[a-zA-Z0-9._%+$-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitsRe        = regexp.MustCompile(`^[0-9]+$`)
	lettersRe       = regexp.MustCompile(`^[a-zA-Z]+$`)
	alnumRe         = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	leadingLetterRe = regexp.MustCompile(`^[a-zA-Z]`)
)

var predicates = map[Tag]func(string) bool{
	TagAccountNumber: accountNumberRe.MatchString,
	TagMail:          mailRe.MatchString,
	TagContactInfo: func(v string) bool {
		return mailRe.MatchString(v) || digitsRe.MatchString(v)
	},
	TagName: func(v string) bool {
		return strings.TrimSpace(v) != ""
	},
	TagHumanName:   lettersRe.MatchString,
	TagCarMake:     lettersRe.MatchString,
	TagModelName:   alnumRe.MatchString,
	TagUsername:    alnumRe.MatchString,
	TagCompanyName: leadingLetterRe.MatchString,
}

// Check returns value unchanged when it satisfies the predicate registered
// for tag. Unknown tags always fail.
func Check(tag Tag, value string) (string, error) {
	pred, ok := predicates[tag]
	if !ok || !pred(value) {
		return "", &ValidationError{Tag: tag}
	}
	return value, nil
}

// Message trims content and requires at least minLen characters to remain.
func Message(content string, minLen int) (string, error) {
	trimmed := strings.TrimSpace(content)
	if minLen < 1 || len([]rune(trimmed)) < minLen {
		return "", &ValidationError{Tag: TagMessage}
	}
	return trimmed, nil
}

func Positive(tag Tag, d decimal.Decimal) (decimal.Decimal, error) {
	if !d.IsPositive() {
		return decimal.Zero, &ValidationError{Tag: tag}
	}
	return d, nil
}

func NonNegative(tag Tag, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Tag: tag}
	}
	return d, nil
}
