package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName,omitempty" validate:"notblank"`
	PetID     int64  `json:"petId" validate:"gt=0"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Note      string
}

func TestStruct_ValidIsNil(t *testing.T) {
	v := Struct(bookingRequest{FirstName: "George", LastName: "Franklin", PetID: 7, Date: "2013-01-01"})
	assert.Nil(t, v)
	require.NoError(t, v.Err())
}

func TestStruct_ReportsEveryFieldByJSONName(t *testing.T) {
	v := Struct(bookingRequest{FirstName: "   ", LastName: "", PetID: 0, Date: "01/01/2013"})

	err := v.Err()
	require.Error(t, err)
	found, ok := As(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	require.Len(t, found, 4)
	assert.Equal(t, Violation{Field: "firstName", Message: "must not be empty"}, found[0])
	assert.Equal(t, "lastName", found[1].Field)
	assert.Equal(t, Violation{Field: "petId", Message: "must be greater than 0"}, found[2])
	assert.Equal(t, "date", found[3].Field)
	assert.Contains(t, err.Error(), "petId must be greater than 0")
}

func TestViolations_AddKeepsOrder(t *testing.T) {
	var v Violations
	v.Add("petId", "-1 is not a valid pet id")
	v.Add("petId", "0 is not a valid pet id")
	require.Len(t, v, 2)
	assert.Equal(t, "0 is not a valid pet id", v[1].Message)
}

func TestAs_UnrelatedError(t *testing.T) {
	_, ok := As(errors.New("boom"))
	assert.False(t, ok)
}
