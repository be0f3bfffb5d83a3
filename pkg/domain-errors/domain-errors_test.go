package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: These primitives carry error classification across the
// store and service layers. Unit tests ensure invariants like "wrapped
// domain errors preserve original code" and "errors.Is matches by code"
// are maintained.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeInvalidInput, Message: "account id cannot be empty"}
		s.Equal("account id cannot be empty", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeInternal}
		s.Equal("internal_error", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	inner := errors.New("boom")
	err := Wrap(inner, CodeInternal, "wrapped")
	s.ErrorIs(err, inner)
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	original := New(CodeInvalidInput, "empty session id")
	wrapped := Wrap(original, CodeInternal, "while tracking warm-up")

	s.True(HasCode(wrapped, CodeInvalidInput), "original code should survive wrapping")
	s.False(HasCode(wrapped, CodeInternal))
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	a := New(CodeInvariantViolation, "one")
	b := New(CodeInvariantViolation, "two")
	c := New(CodeInternal, "three")

	s.True(errors.Is(a, b))
	s.False(errors.Is(a, c))
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("plain errors never match", func() {
		s.False(HasCode(errors.New("plain"), CodeInternal))
	})

	s.Run("nil error never matches", func() {
		s.False(HasCode(nil, CodeInternal))
	})
}
