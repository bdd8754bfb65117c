package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite covers the code-preserving behaviour the HTTP layer relies
// on when it maps service failures to status codes.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestMessageFallsBackToCode() {
	s.Equal("processor pf-99 not found", (&Error{Code: CodeNotFound, Message: "processor pf-99 not found"}).Error())
	s.Equal("unsupported_language", (&Error{Code: CodeUnsupportedLang}).Error())
}

func (s *DomainErrorsSuite) TestCodeMatching() {
	s.Run("errors.Is compares codes not messages", func() {
		a := New(CodeNotFound, "scheme missing")
		b := New(CodeNotFound, "processor missing")
		s.True(errors.Is(a, b))
		s.False(errors.Is(a, New(CodeValidation, "")))
	})

	s.Run("plain errors never match", func() {
		s.False((&Error{Code: CodeNotFound}).Is(errors.New("not_found")))
	})

	s.Run("code found through fmt wrapping", func() {
		err := fmt.Errorf("loading catalog: %w", New(CodeCatalogUnavailable, "bad yaml"))
		s.True(HasCode(err, CodeCatalogUnavailable))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("keeps the inner domain code", func() {
		wrapped := Wrap(New(CodeNotFound, "processor not found"), CodeInternal, "projection failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeNotFound, domainErr.Code)
		s.Equal("projection failed", domainErr.Message)
	})

	s.Run("applies the given code to foreign errors", func() {
		root := errors.New("yaml: line 3: mapping values are not allowed")
		wrapped := Wrap(root, CodeCatalogUnavailable, "content bundle unreadable")

		s.True(HasCode(wrapped, CodeCatalogUnavailable))
		s.True(errors.Is(wrapped, root))
	})

	s.Run("nil is never coded", func() {
		s.False(HasCode(nil, CodeNotFound))
	})
}

func (s *DomainErrorsSuite) TestCodeOf() {
	code, ok := CodeOf(fmt.Errorf("rank: %w", New(CodeTimeout, "deadline")))
	s.True(ok)
	s.Equal(CodeTimeout, code)

	_, ok = CodeOf(errors.New("plain"))
	s.False(ok)
}
