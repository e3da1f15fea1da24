package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/receipt"
	"github.com/mpcportal/admissions/internal/server/services"
)

// maxSubmitBody bounds the whole multipart request: two assets at the
// per-asset ceiling plus form fields and encoding overhead.
const maxSubmitBody = 3 * services.MaxAssetSize

func formFileBytes(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, services.MaxAssetSize+1))
}

func submissionFormFromRequest(r *http.Request) (*models.SubmissionForm, error) {
	if err := r.ParseMultipartForm(maxSubmitBody); err != nil {
		return nil, &services.ValidationError{Field: "body", Message: "Request must be multipart form data."}
	}

	photo, err := formFileBytes(r, "photo")
	if err != nil {
		return nil, &services.ValidationError{Field: "photo", Message: "Could not read the uploaded photo."}
	}
	signature, err := formFileBytes(r, "signature")
	if err != nil {
		return nil, &services.ValidationError{Field: "signature", Message: "Could not read the uploaded signature."}
	}

	return &models.SubmissionForm{
		StudentName:           r.FormValue("student_name"),
		FatherName:            r.FormValue("father_name"),
		MotherName:            r.FormValue("mother_name"),
		DOB:                   r.FormValue("dob"),
		Aadhaar:               r.FormValue("aadhaar"),
		MobileNumber:          r.FormValue("mobile_number"),
		AlternateMobileNumber: r.FormValue("alternate_mobile_number"),
		Apaar:                 r.FormValue("apaar"),
		RationCard:            r.FormValue("ration_card"),
		Category:              r.FormValue("category"),
		SubCaste:              r.FormValue("sub_caste"),
		IncomeCertificate:     r.FormValue("income_certificate"),
		CasteEWSCertificate:   r.FormValue("caste_ews_certificate"),
		TenthHallTicket:       r.FormValue("tenth_hall_ticket"),
		PracticalHallTicket:   r.FormValue("practical_hall_ticket"),
		JEEMainsNo:            r.FormValue("jee_mains_no"),
		Street:                r.FormValue("street"),
		VillageCity:           r.FormValue("village_city"),
		District:              r.FormValue("district"),
		State:                 r.FormValue("state"),
		Pincode:               r.FormValue("pincode"),
		Nation:                r.FormValue("nation"),
		School6Name:           r.FormValue("school_6_name"),
		School6Place:          r.FormValue("school_6_place"),
		School7Name:           r.FormValue("school_7_name"),
		School7Place:          r.FormValue("school_7_place"),
		School8Name:           r.FormValue("school_8_name"),
		School8Place:          r.FormValue("school_8_place"),
		School9Name:           r.FormValue("school_9_name"),
		School9Place:          r.FormValue("school_9_place"),
		School10Name:          r.FormValue("school_10_name"),
		School10Place:         r.FormValue("school_10_place"),
		Photo:                 photo,
		Signature:             signature,
	}, nil
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBody)

	form, err := submissionFormFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	app, err := h.submissions.Submit(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, app)
}

type lookupResponse struct {
	Application *models.Application `json:"application"`
	Message     string              `json:"message"`
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	app, msg, err := h.lookup.Lookup(r.Context(), chi.URLParam(r, "regno"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{Application: app, Message: msg})
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	app, _, err := h.lookup.Lookup(r.Context(), chi.URLParam(r, "regno"))
	if err != nil {
		writeError(w, err)
		return
	}

	doc := receipt.Build(app, time.Now())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename()))
	if err := doc.Render(w); err != nil {
		h.logger.Error(r.Context(), "receipt render failed", "regno", app.RegistrationNumber, "error", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string, len(h.health))
	for name, check := range h.health {
		if err := check(r.Context()); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	writeJSON(w, status, map[string]any{
		"status": http.StatusText(status),
		"checks": checks,
	})
}
