package models

// ApplicationUpdate is the administrative mutation payload. It contains
// exactly the mutable columns, so the type system enforces the whitelist:
// ID, RegistrationNumber, CreatedAt, and the asset URLs cannot be expressed
// here at all. Nil fields are left untouched by the store.
type ApplicationUpdate struct {
	StudentName           *string `json:"student_name,omitempty"`
	FatherName            *string `json:"father_name,omitempty"`
	MotherName            *string `json:"mother_name,omitempty"`
	DOB                   *string `json:"dob,omitempty"`
	Aadhaar               *string `json:"aadhaar,omitempty"`
	MobileNumber          *string `json:"mobile_number,omitempty"`
	AlternateMobileNumber *string `json:"alternate_mobile_number,omitempty"`
	Apaar                 *string `json:"apaar,omitempty"`
	RationCard            *string `json:"ration_card,omitempty"`
	Category              *string `json:"category,omitempty"`
	SubCaste              *string `json:"sub_caste,omitempty"`
	Status                *Status `json:"application_status,omitempty"`
	AdminMessage          *string `json:"admin_message,omitempty"`
}

// IsEmpty reports whether the payload carries no changes.
func (u *ApplicationUpdate) IsEmpty() bool {
	return u.StudentName == nil && u.FatherName == nil && u.MotherName == nil &&
		u.DOB == nil && u.Aadhaar == nil && u.MobileNumber == nil &&
		u.AlternateMobileNumber == nil && u.Apaar == nil && u.RationCard == nil &&
		u.Category == nil && u.SubCaste == nil && u.Status == nil &&
		u.AdminMessage == nil
}

// Apply copies the non-nil fields onto the application. Used by the
// in-memory repository; the Postgres repository builds an UPDATE statement
// from the same set of fields.
func (u *ApplicationUpdate) Apply(a *Application) {
	if u.StudentName != nil {
		a.StudentName = *u.StudentName
	}
	if u.FatherName != nil {
		a.FatherName = *u.FatherName
	}
	if u.MotherName != nil {
		a.MotherName = *u.MotherName
	}
	if u.DOB != nil {
		a.DOB = *u.DOB
	}
	if u.Aadhaar != nil {
		a.Aadhaar = *u.Aadhaar
	}
	if u.MobileNumber != nil {
		a.MobileNumber = *u.MobileNumber
	}
	if u.AlternateMobileNumber != nil {
		a.AlternateMobileNumber = *u.AlternateMobileNumber
	}
	if u.Apaar != nil {
		a.Apaar = *u.Apaar
	}
	if u.RationCard != nil {
		a.RationCard = *u.RationCard
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.SubCaste != nil {
		a.SubCaste = *u.SubCaste
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.AdminMessage != nil {
		a.AdminMessage = *u.AdminMessage
	}
}
