package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Address: "1 Harbor Way",
		City:    "Portsmouth",
		State:   "NH",
		Zip:     "03801",
		Country: "USA",
	}
}

func TestValidateAcceptsCompleteAddress(t *testing.T) {
	assert.NoError(t, validAddress().Validate())
}

func TestValidateOptionalFields(t *testing.T) {
	addr := validAddress()
	addr.Address2 = "Apt 4"
	addr.Phone = "555-0100"
	assert.NoError(t, addr.Validate())
}

func TestValidateNamesTheMissingField(t *testing.T) {
	tests := []struct {
		field string
		blank func(*Address)
	}{
		{"name", func(a *Address) { a.Name = "" }},
		{"email", func(a *Address) { a.Email = "" }},
		{"address", func(a *Address) { a.Address = "  " }},
		{"city", func(a *Address) { a.City = "" }},
		{"state", func(a *Address) { a.State = "" }},
		{"zip", func(a *Address) { a.Zip = "" }},
		{"country", func(a *Address) { a.Country = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			addr := validAddress()
			tt.blank(&addr)

			err := addr.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateRejectsMalformedEmail(t *testing.T) {
	addr := validAddress()
	addr.Email = "not-an-email"

	var verr *ValidationError
	require.ErrorAs(t, addr.Validate(), &verr)
	assert.Equal(t, "email", verr.Field)
}
