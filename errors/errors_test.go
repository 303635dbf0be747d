package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "month out of range")

	assert.Equal(t, CodeInvalidArgument, err.Code())
	assert.Equal(t, "month out of range", err.Message())
	assert.Nil(t, err.Context())
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "INVALID_ARGUMENT: month out of range", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeParseFailed, "cannot parse %q", "garbage")

	assert.Equal(t, CodeParseFailed, err.Code())
	assert.Equal(t, `PARSE_FAILED: cannot parse "garbage"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
		assert.Nil(t, Wrapf(nil, CodeInternal, "ignored %d", 1))
		assert.Nil(t, WrapWithContext(nil, CodeInternal, "ignored", nil))
	})

	t.Run("preserves cause", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Wrap(cause, CodeInternal, "operation failed")

		require.Error(t, err)
		assert.True(t, Is(err, cause))
		assert.Equal(t, cause, Unwrap(err))
		assert.Equal(t, "INTERNAL_ERROR: operation failed: boom", err.Error())
	})

	t.Run("formatted message", func(t *testing.T) {
		err := Wrapf(stderrors.New("eof"), CodeParseFailed, "reading %s", "input")
		assert.Equal(t, "PARSE_FAILED: reading input: eof", err.Error())
	})
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]interface{}{
		"path": "ostk-time.cue",
		"line": 3,
	}
	err := WrapWithContext(stderrors.New("unexpected token"), CodeCUELoadFailed, "failed to load configuration", ctx)

	var perr PlatformError
	require.True(t, As(err, &perr))
	assert.Equal(t, CodeCUELoadFailed, perr.Code())
	assert.Equal(t, ctx, perr.Context())
	assert.Equal(t, "CUE_LOAD_FAILED: failed to load configuration [line=3 path=ostk-time.cue]: unexpected token", err.Error())

	// the stored context is a copy
	ctx["path"] = "other.cue"
	assert.Equal(t, "ostk-time.cue", perr.Context()["path"])

	got := perr.Context()
	got["path"] = "mutated"
	assert.Equal(t, "ostk-time.cue", perr.Context()["path"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"platform error", New(CodeUndefined, "undefined"), CodeUndefined},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(CodeParseFailed, "bad")), CodeParseFailed},
		{
			name: "outermost wins",
			err:  Wrap(New(CodeInvalidArgument, "day out of range"), CodeParseFailed, "cannot parse"),
			want: CodeParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeInvalidArgument, "day out of range")
	err := fmt.Errorf("context: %w", Wrap(inner, CodeParseFailed, "cannot parse"))

	assert.True(t, HasCode(err, CodeParseFailed))
	assert.True(t, HasCode(err, CodeInvalidArgument))
	assert.False(t, HasCode(err, CodeUndefined))
	assert.False(t, HasCode(nil, CodeUndefined))
}

func TestIsMatchesSentinel(t *testing.T) {
	sentinel := New(CodeUndefined, "value is undefined")

	assert.True(t, Is(New(CodeUndefined, "value is undefined"), sentinel))
	assert.True(t, Is(Wrap(New(CodeUndefined, "value is undefined"), CodeInternal, "outer"), sentinel))
	assert.False(t, Is(New(CodeUndefined, "something else"), sentinel))
	assert.False(t, Is(New(CodeInternal, "value is undefined"), sentinel))
}

func TestJoin(t *testing.T) {
	a := New(CodeInvalidArgument, "a")
	b := New(CodeParseFailed, "b")
	err := Join(a, b)

	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "INVALID_ARGUMENT", CodeInvalidArgument.String())
	assert.Equal(t, "CUE_DECODE_FAILED", CodeCUEDecodeFailed.String())
}
