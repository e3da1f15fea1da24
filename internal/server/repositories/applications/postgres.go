package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/dbx"
	"github.com/mpcportal/admissions/internal/server/models"
)

const pgUniqueViolation = "23505"

// selectColumns is the full column list in scanApplication order.
const selectColumns = `id, created_at, registration_number,
	student_name, father_name, mother_name, dob, aadhaar,
	mobile_number, alternate_mobile_number, apaar, ration_card,
	category, sub_caste, income_certificate, caste_ews_certificate,
	tenth_hall_ticket, practical_hall_ticket, jee_mains_no,
	street, village_city, district, state, pincode, nation,
	school_6_name, school_6_place, school_7_name, school_7_place,
	school_8_name, school_8_place, school_9_name, school_9_place,
	school_10_name, school_10_place,
	photo_url, signature_url, application_status, admin_message`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(row scanner) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.RegistrationNumber,
		&a.StudentName, &a.FatherName, &a.MotherName, &a.DOB, &a.Aadhaar,
		&a.MobileNumber, &a.AlternateMobileNumber, &a.Apaar, &a.RationCard,
		&a.Category, &a.SubCaste, &a.IncomeCertificate, &a.CasteEWSCertificate,
		&a.TenthHallTicket, &a.PracticalHallTicket, &a.JEEMainsNo,
		&a.Street, &a.VillageCity, &a.District, &a.State, &a.Pincode, &a.Nation,
		&a.School6Name, &a.School6Place, &a.School7Name, &a.School7Place,
		&a.School8Name, &a.School8Place, &a.School9Name, &a.School9Place,
		&a.School10Name, &a.School10Place,
		&a.PhotoURL, &a.SignatureURL, &a.Status, &a.AdminMessage,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `INSERT INTO applications (
		registration_number,
		student_name, father_name, mother_name, dob, aadhaar,
		mobile_number, alternate_mobile_number, apaar, ration_card,
		category, sub_caste, income_certificate, caste_ews_certificate,
		tenth_hall_ticket, practical_hall_ticket, jee_mains_no,
		street, village_city, district, state, pincode, nation,
		school_6_name, school_6_place, school_7_name, school_7_place,
		school_8_name, school_8_place, school_9_name, school_9_place,
		school_10_name, school_10_place,
		photo_url, signature_url, application_status, admin_message)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37)
	RETURNING ` + selectColumns

	row := r.db.QueryRowContext(ctx, query,
		app.RegistrationNumber,
		app.StudentName, app.FatherName, app.MotherName, app.DOB, app.Aadhaar,
		app.MobileNumber, app.AlternateMobileNumber, app.Apaar, app.RationCard,
		app.Category, app.SubCaste, app.IncomeCertificate, app.CasteEWSCertificate,
		app.TenthHallTicket, app.PracticalHallTicket, app.JEEMainsNo,
		app.Street, app.VillageCity, app.District, app.State, app.Pincode, app.Nation,
		app.School6Name, app.School6Place, app.School7Name, app.School7Place,
		app.School8Name, app.School8Place, app.School9Name, app.School9Place,
		app.School10Name, app.School10Place,
		app.PhotoURL, app.SignatureURL, app.Status, app.AdminMessage,
	)

	inserted, err := scanApplication(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("registration number %s: %w", app.RegistrationNumber, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return inserted, nil
}

func (r *PostgresRepository) FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE registration_number = $1`

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, regNo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) FindByAadhaar(ctx context.Context, aadhaar string) (*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE aadhaar = $1 LIMIT 1`

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, aadhaar))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return apps, nil
}

// Update builds a SET clause containing only the fields present in the
// payload. The payload type itself guarantees nothing outside the admin
// whitelist can be transmitted.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.ApplicationUpdate) error {
	sets := make([]string, 0, 13)
	args := make([]any, 0, 14)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.StudentName != nil {
		add("student_name", *upd.StudentName)
	}
	if upd.FatherName != nil {
		add("father_name", *upd.FatherName)
	}
	if upd.MotherName != nil {
		add("mother_name", *upd.MotherName)
	}
	if upd.DOB != nil {
		add("dob", *upd.DOB)
	}
	if upd.Aadhaar != nil {
		add("aadhaar", *upd.Aadhaar)
	}
	if upd.MobileNumber != nil {
		add("mobile_number", *upd.MobileNumber)
	}
	if upd.AlternateMobileNumber != nil {
		add("alternate_mobile_number", *upd.AlternateMobileNumber)
	}
	if upd.Apaar != nil {
		add("apaar", *upd.Apaar)
	}
	if upd.RationCard != nil {
		add("ration_card", *upd.RationCard)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.SubCaste != nil {
		add("sub_caste", *upd.SubCaste)
	}
	if upd.Status != nil {
		add("application_status", string(*upd.Status))
	}
	if upd.AdminMessage != nil {
		add("admin_message", *upd.AdminMessage)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE applications SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
