package services

import (
	"strings"

	"github.com/mpcportal/admissions/internal/server/models"
)

// MaxAssetSize is the upload ceiling for the photo and the signature.
const MaxAssetSize = 2 * 1024 * 1024

// ValidateAndNormalize checks field shapes and canonicalizes text case,
// mutating the form in place. It runs entirely before any network call;
// a non-nil return is always a *ValidationError. The store itself enforces
// no shape constraints, so this is a gatekeeper, not a security boundary.
func ValidateAndNormalize(form *models.SubmissionForm) error {
	if !isDigits(form.Aadhaar, 12) {
		return &ValidationError{Field: "aadhaar", Message: "Aadhaar must be exactly 12 digits."}
	}
	if !isDigits(form.MobileNumber, 10) {
		return &ValidationError{Field: "mobile_number", Message: "Mobile number must be exactly 10 digits."}
	}
	if !isDigits(form.AlternateMobileNumber, 10) {
		return &ValidationError{Field: "alternate_mobile_number", Message: "Alternate mobile number must be exactly 10 digits."}
	}
	if !isDigits(form.Pincode, 6) {
		return &ValidationError{Field: "pincode", Message: "Pincode must be exactly 6 digits."}
	}

	if len(form.Photo) == 0 {
		return &ValidationError{Field: "photo", Message: "Photograph upload is required."}
	}
	if len(form.Signature) == 0 {
		return &ValidationError{Field: "signature", Message: "Signature upload is required."}
	}
	if len(form.Photo) > MaxAssetSize {
		return &ValidationError{Field: "photo", Message: "File is too large (maximum 2MB)."}
	}
	if len(form.Signature) > MaxAssetSize {
		return &ValidationError{Field: "signature", Message: "File is too large (maximum 2MB)."}
	}

	normalize(form)
	return nil
}

// normalize upper-cases the free-text identity, academic, and address
// fields so downstream search and display are case-consistent. The
// transform is one-way; admin edits are stored as entered.
func normalize(form *models.SubmissionForm) {
	up := func(s *string) { *s = strings.ToUpper(strings.TrimSpace(*s)) }

	up(&form.StudentName)
	up(&form.FatherName)
	up(&form.MotherName)
	up(&form.SubCaste)
	up(&form.Street)
	up(&form.VillageCity)
	up(&form.District)
	up(&form.State)
	up(&form.Nation)
	up(&form.School6Name)
	up(&form.School6Place)
	up(&form.School7Name)
	up(&form.School7Place)
	up(&form.School8Name)
	up(&form.School8Place)
	up(&form.School9Name)
	up(&form.School9Place)
	up(&form.School10Name)
	up(&form.School10Place)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
