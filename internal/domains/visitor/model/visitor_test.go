package model

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
	}{
		{"active", StatusActive},
		{"left", StatusLeft},
		{"Active", StatusActive},
		{"LEFT", StatusLeft},
		{"  left  ", StatusLeft},
	}

	for _, tc := range cases {
		got, err := ParseStatus(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "towed", "gone", "actives"} {
		_, err := ParseStatus(bad)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", bad)
	}
}

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrVisitorNotFound, http.StatusNotFound},
		{ErrDuplicateIC, http.StatusConflict},
		{ErrDuplicatePlate, http.StatusConflict},
		{ErrNameRequired, http.StatusBadRequest},
		{ErrInvalidStatus, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.err), "error %v", tc.err)
	}
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(ErrDuplicateIC))
	assert.True(t, IsDuplicate(ErrDuplicatePlate))
	assert.False(t, IsDuplicate(ErrVisitorNotFound))
	assert.False(t, IsDuplicate(nil))
}

func TestRegisterVisitorRequestValidate(t *testing.T) {
	valid := RegisterVisitorRequest{
		Name:         "Alice",
		ICNumber:     "901231145678",
		LicensePlate: "JOM1234",
		UnitNumber:   "B-1-01",
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	missingPlate := valid
	missingPlate.LicensePlate = ""
	assert.Error(t, missingPlate.Validate())
}

func TestChatRequestValidate(t *testing.T) {
	assert.NoError(t, ChatRequest{Message: "hello"}.Validate())
	assert.Error(t, ChatRequest{}.Validate())
}
