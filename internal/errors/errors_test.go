package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dicenotation/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "nsides out of range",
			expected: "OUT_OF_RANGE: nsides out of range",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown token",
			expected: "INVALID_ARGUMENT: unknown token",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.OutOfRange("nsides out of range").
		WithMeta("nsides", 100001).
		WithMeta("expression", "4d100001")

	s.Assert().Equal(100001, err.Meta["nsides"])
	s.Assert().Equal("4d100001", err.Meta["expression"])

	err2 := errors.Internal("unexpected evaluator state").
		WithMetaMap(map[string]interface{}{
			"op_type": "rollDice",
			"pos":     3,
		})

	s.Assert().Equal("rollDice", err2.Meta["op_type"])
	s.Assert().Equal(3, err2.Meta["pos"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("queue closed")
	wrapped := errors.Wrap(baseErr, "failed to roll die")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to roll die", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.OutOfRange("value outside [1,6]")
	wrapped := errors.Wrap(baseErr, "reroll failed")

	s.Assert().Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Assert().Equal("reroll failed", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("context canceled")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeCanceled, "roll aborted")

	s.Assert().Equal(errors.CodeCanceled, wrapped.Code)
	s.Assert().Equal("roll aborted", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInvalidArgument, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"OutOfRange", func() *errors.Error { return errors.OutOfRange("test") }, errors.CodeOutOfRange},
		{"ResourceExhausted", func() *errors.Error { return errors.ResourceExhausted("test") }, errors.CodeResourceExhausted},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.OutOfRangef("ndice %d not in [0,1000]", 1001)
	s.Assert().Equal(errors.CodeOutOfRange, err.Code)
	s.Assert().Equal("ndice 1001 not in [0,1000]", err.Message)

	err2 := errors.InvalidArgumentf("unexpected token at %d", 7)
	s.Assert().Equal(errors.CodeInvalidArgument, err2.Code)
	s.Assert().Equal("unexpected token at 7", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.OutOfRange("test")
	err2 := errors.OutOfRange("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	outOfRangeErr := errors.OutOfRange("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(outOfRangeErr, "wrapped")

	s.Assert().True(errors.IsOutOfRange(outOfRangeErr))
	s.Assert().True(errors.IsOutOfRange(wrappedErr))
	s.Assert().False(errors.IsOutOfRange(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(outOfRangeErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.OutOfRange("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(err))
	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.OutOfRange("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.OutOfRange("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestFormatErrorCarriesPosition() {
	err := errors.FormatError("4d6 kh", 6, "missing drop target")
	s.Assert().True(errors.IsFormatError(err))
	s.Assert().Equal("4d6 kh", err.Meta["expression"])
	s.Assert().Equal(6, err.Meta["position"])
}

func (s *ErrorsTestSuite) TestRollerErrors() {
	s.Assert().True(errors.IsRollerExhausted(errors.RollerExhausted("queue empty")))
	s.Assert().True(errors.IsRollerOutOfRange(errors.RollerOutOfRange("7 not in [1,6]")))
}
