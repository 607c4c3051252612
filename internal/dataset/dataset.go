package dataset

import "strconv"

// Header lists the field names in export order. All three output formats
// emit fields in exactly this order.
var Header = []string{
	"id",
	"name",
	"company",
	"job_title",
	"email",
	"ip_address",
	"registration_date",
	"description",
}

// Record is one synthesized row.
type Record struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Company          string `json:"company"`
	JobTitle         string `json:"job_title"`
	Email            string `json:"email"`
	IPAddress        string `json:"ip_address"`
	RegistrationDate string `json:"registration_date"`
	Description      string `json:"description"`
}

// Row returns the record's fields as strings, in Header order.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Company,
		r.JobTitle,
		r.Email,
		r.IPAddress,
		r.RegistrationDate,
		r.Description,
	}
}

// Dataset is the ordered result of one generation run. Insertion order is
// generation order and is preserved through export.
type Dataset []Record
