package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("refunded").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPaid, StatusProcessing, true},
		{StatusPaid, StatusCancelled, true},
		{StatusPaid, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPaid, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestShippingAddressValidate(t *testing.T) {
	valid := ShippingAddress{
		FullName: "Tran Van A",
		Phone:    "0901234567",
		Line1:    "12 Nguyen Trai",
		City:     "Ho Chi Minh City",
		Country:  "VN",
	}
	assert.NoError(t, valid.Validate())

	missingPhone := valid
	missingPhone.Phone = ""
	assert.Error(t, missingPhone.Validate())

	shortPhone := valid
	shortPhone.Phone = "123"
	assert.Error(t, shortPhone.Validate())

	noCity := valid
	noCity.City = ""
	assert.Error(t, noCity.Validate())
}
