// Package models defines the data persisted by the admissions portal.
package models

import "time"

// Application is one candidate's submitted admissions record. Free-text
// identity, academic, and address fields are stored upper-cased; the
// normalization happens once at submission time and is never reversed.
type Application struct {
	// Store-assigned identity. Immutable after creation.
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// System-generated public tracking token. Assigned exactly once.
	RegistrationNumber string `json:"registration_number"`

	// Personal details.
	StudentName           string `json:"student_name"`
	FatherName            string `json:"father_name"`
	MotherName            string `json:"mother_name"`
	DOB                   string `json:"dob"`
	Aadhaar               string `json:"aadhaar"`
	MobileNumber          string `json:"mobile_number"`
	AlternateMobileNumber string `json:"alternate_mobile_number"`
	Apaar                 string `json:"apaar"`
	RationCard            string `json:"ration_card"`

	// Category and certificates.
	Category            string `json:"category"`
	SubCaste            string `json:"sub_caste"`
	IncomeCertificate   string `json:"income_certificate"`
	CasteEWSCertificate string `json:"caste_ews_certificate"`

	// Academic identifiers.
	TenthHallTicket     string `json:"tenth_hall_ticket"`
	PracticalHallTicket string `json:"practical_hall_ticket"`
	JEEMainsNo          string `json:"jee_mains_no"`

	// Residential address.
	Street      string `json:"street"`
	VillageCity string `json:"village_city"`
	District    string `json:"district"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Nation      string `json:"nation"`

	// School history, grades 6 through 10.
	School6Name   string `json:"school_6_name"`
	School6Place  string `json:"school_6_place"`
	School7Name   string `json:"school_7_name"`
	School7Place  string `json:"school_7_place"`
	School8Name   string `json:"school_8_name"`
	School8Place  string `json:"school_8_place"`
	School9Name   string `json:"school_9_name"`
	School9Place  string `json:"school_9_place"`
	School10Name  string `json:"school_10_name"`
	School10Place string `json:"school_10_place"`

	// Durable object-storage references, never raw binary.
	PhotoURL     string `json:"photo_url"`
	SignatureURL string `json:"signature_url"`

	// Workflow state.
	Status       Status `json:"application_status"`
	AdminMessage string `json:"admin_message"`
}

// SchoolRecord is one row of the 6th-10th school history table.
type SchoolRecord struct {
	Grade int    `json:"grade"`
	Name  string `json:"name"`
	Place string `json:"place"`
}

// Schools returns the grade 6-10 school history in grade order.
func (a *Application) Schools() []SchoolRecord {
	return []SchoolRecord{
		{6, a.School6Name, a.School6Place},
		{7, a.School7Name, a.School7Place},
		{8, a.School8Name, a.School8Place},
		{9, a.School9Name, a.School9Place},
		{10, a.School10Name, a.School10Place},
	}
}

// Stats summarizes the applications table for the admin dashboard.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// CountStats derives dashboard counts from a fetched list. Statuses outside
// the three known values contribute to Total only.
func CountStats(apps []*Application) Stats {
	s := Stats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}
