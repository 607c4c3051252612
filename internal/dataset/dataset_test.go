package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMatchesHeaderOrder(t *testing.T) {
	rec := Record{
		ID:               123456,
		Name:             "Jane Doe",
		Company:          "Acme Corp",
		JobTitle:         "Engineer",
		Email:            "jane.doe@example.com",
		IPAddress:        "10.0.0.1",
		RegistrationDate: "2023-05-14",
		Description:      "A synthetic record.",
	}

	row := rec.Row()
	require.Len(t, row, len(Header))
	assert.Equal(t, []string{
		"123456",
		"Jane Doe",
		"Acme Corp",
		"Engineer",
		"jane.doe@example.com",
		"10.0.0.1",
		"2023-05-14",
		"A synthetic record.",
	}, row)
}

func TestHeaderOrder(t *testing.T) {
	assert.Equal(t, []string{
		"id", "name", "company", "job_title",
		"email", "ip_address", "registration_date", "description",
	}, Header)
}
