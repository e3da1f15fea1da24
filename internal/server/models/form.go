package models

// SubmissionForm is the raw applicant input plus the two required binary
// assets. The validator normalizes it in place before any gateway call.
type SubmissionForm struct {
	StudentName           string `json:"student_name"`
	FatherName            string `json:"father_name"`
	MotherName            string `json:"mother_name"`
	DOB                   string `json:"dob"`
	Aadhaar               string `json:"aadhaar"`
	MobileNumber          string `json:"mobile_number"`
	AlternateMobileNumber string `json:"alternate_mobile_number"`
	Apaar                 string `json:"apaar"`
	RationCard            string `json:"ration_card"`

	Category            string `json:"category"`
	SubCaste            string `json:"sub_caste"`
	IncomeCertificate   string `json:"income_certificate"`
	CasteEWSCertificate string `json:"caste_ews_certificate"`

	TenthHallTicket     string `json:"tenth_hall_ticket"`
	PracticalHallTicket string `json:"practical_hall_ticket"`
	JEEMainsNo          string `json:"jee_mains_no"`

	Street      string `json:"street"`
	VillageCity string `json:"village_city"`
	District    string `json:"district"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Nation      string `json:"nation"`

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

	Photo     []byte `json:"-"`
	Signature []byte `json:"-"`
}
