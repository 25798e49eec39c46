package session

import (
	"testing"

	"ytworth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_BlankIsNoop(t *testing.T) {
	s := New()

	for _, in := range []string{"", "   ", "\t\n"} {
		seq, ok := s.Submit(in)
		assert.False(t, ok)
		assert.Zero(t, seq)
		assert.Equal(t, Idle, s.State())
	}
}

func TestSubmit_BlankKeepsPreviousResult(t *testing.T) {
	s := New()
	seq, ok := s.Submit("abc")
	require.True(t, ok)
	require.True(t, s.Succeed(seq, models.EstimateResponse{VideoID: "abc"}))

	_, ok = s.Submit("  ")
	assert.False(t, ok)

	got, ok := s.Estimate()
	require.True(t, ok)
	assert.Equal(t, "abc", got.VideoID)
}

func TestSuccessFlow(t *testing.T) {
	s := New()

	seq, ok := s.Submit("  https://youtu.be/abc  ")
	require.True(t, ok)
	assert.Equal(t, Loading, s.State())
	assert.Equal(t, "https://youtu.be/abc", s.Input())

	pending, loading := s.Pending()
	assert.True(t, loading)
	assert.Equal(t, seq, pending)

	require.True(t, s.Succeed(seq, models.EstimateResponse{VideoID: "abc", Display: "$60.00"}))
	assert.Equal(t, Success, s.State())

	got, ok := s.Estimate()
	require.True(t, ok)
	assert.Equal(t, "$60.00", got.Display)

	_, loading = s.Pending()
	assert.False(t, loading)
}

func TestFailureFlow(t *testing.T) {
	s := New()

	seq, _ := s.Submit("abc")
	require.True(t, s.Fail(seq, models.MessageInvalidURL))

	assert.Equal(t, Failed, s.State())
	assert.Equal(t, models.MessageInvalidURL, s.Message())
	_, ok := s.Estimate()
	assert.False(t, ok)
}

func TestStaleResponsesAreDropped(t *testing.T) {
	s := New()

	first, _ := s.Submit("first")
	second, _ := s.Submit("second")
	require.NotEqual(t, first, second)

	// the older lookup resolves late
	assert.False(t, s.Succeed(first, models.EstimateResponse{VideoID: "first"}))
	assert.False(t, s.Fail(first, "late"))
	assert.Equal(t, Loading, s.State())

	require.True(t, s.Succeed(second, models.EstimateResponse{VideoID: "second"}))
	got, _ := s.Estimate()
	assert.Equal(t, "second", got.VideoID)

	// and even later, after the newer one already landed
	assert.False(t, s.Succeed(first, models.EstimateResponse{VideoID: "first"}))
	got, _ = s.Estimate()
	assert.Equal(t, "second", got.VideoID)
}

func TestResultAppliesOnce(t *testing.T) {
	s := New()

	seq, _ := s.Submit("abc")
	require.True(t, s.Succeed(seq, models.EstimateResponse{VideoID: "abc"}))
	assert.False(t, s.Fail(seq, "again"))
	assert.Equal(t, Success, s.State())
}

func TestResetDropsInFlight(t *testing.T) {
	s := New()

	seq, _ := s.Submit("abc")
	s.Reset()

	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.Input())
	assert.False(t, s.Succeed(seq, models.EstimateResponse{VideoID: "abc"}))
	assert.Equal(t, Idle, s.State())
}

func TestResubmitClearsPreviousOutcome(t *testing.T) {
	s := New()

	seq, _ := s.Submit("abc")
	s.Fail(seq, "boom")

	_, ok := s.Submit("def")
	require.True(t, ok)
	assert.Empty(t, s.Message())
	assert.Equal(t, Loading, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
