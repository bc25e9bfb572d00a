package postgres

import (
	"context"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recruiterRepository implements the domain.RecruiterRepository interface using GORM.
type recruiterRepository struct {
	db *gorm.DB
}

// NewRecruiterRepository is the constructor for recruiterRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewRecruiterRepository(db *gorm.DB) repository.RecruiterRepository {
	return &recruiterRepository{db: db}
}

// FindByID retrieves a single recruiter by their unique ID.
func (repo *recruiterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recruiter, error) {
	var recruiterM model.RecruiterModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recruiterM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecruiterNotFound
		}

		return nil, errors.Wrap(err, "failed to find recruiter by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toRecruiterDomain(&recruiterM), nil
}

// FindByEmail retrieves a single recruiter by their email address. Callers
// lower-case the address at the boundary, so the lookup is a plain equality.
func (repo *recruiterRepository) FindByEmail(ctx context.Context, email string) (*entity.Recruiter, error) {
	var recruiterM model.RecruiterModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&recruiterM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecruiterNotFound
		}

		return nil, errors.Wrap(err, "failed to find recruiter by email")
	}

	return toRecruiterDomain(&recruiterM), nil
}

// Create persists a new recruiter entity to the database.
func (repo *recruiterRepository) Create(ctx context.Context, recruiter *entity.Recruiter) error {
	recruiterM := fromRecruiterDomain(recruiter)

	if err := repo.db.WithContext(ctx).Create(recruiterM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required recruiter information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recruiter")
	}

	// Propagate the generated ID and timestamps back to the entity.
	recruiter.ID = recruiterM.ID
	recruiter.CreatedAt = recruiterM.CreatedAt
	recruiter.UpdatedAt = recruiterM.UpdatedAt

	return nil
}

// Update modifies an existing recruiter entity in the database.
func (repo *recruiterRepository) Update(ctx context.Context, recruiter *entity.Recruiter) error {
	recruiterM := fromRecruiterDomain(recruiter)

	// Save writes every column, including zero values and the nullable OTP
	// fields, which is exactly what clearing a consumed challenge needs.
	if err := repo.db.WithContext(ctx).Save(recruiterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required recruiter information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recruiter")
	}

	recruiter.UpdatedAt = recruiterM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toRecruiterDomain converts a GORM RecruiterModel to a domain Recruiter entity.
func toRecruiterDomain(data *model.RecruiterModel) *entity.Recruiter {
	if data == nil {
		return nil
	}

	return &entity.Recruiter{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		PasswordHash:   data.PasswordHash,
		EmailVerified:  data.EmailVerified,
		EmailOTP:       data.EmailOTP,
		EmailOTPExpiry: data.EmailOTPExpiry,
		Phone:          data.Phone,
		Designation:    data.Designation,
		CompanyName:    data.CompanyName,
		CompanyLogo:    data.CompanyLogo,
		Website:        data.Website,
		Industry:       data.Industry,
		MinCompanySize: data.MinCompanySize,
		MaxCompanySize: data.MaxCompanySize,
		Country:        data.Country,
		State:          data.State,
		City:           data.City,
		Zip:            data.Zip,
		Address:        data.Address,
		Verified:       data.Verified,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromRecruiterDomain converts a domain Recruiter entity to a GORM RecruiterModel for persistence.
func fromRecruiterDomain(data *entity.Recruiter) *model.RecruiterModel {
	if data == nil {
		return nil
	}

	return &model.RecruiterModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		PasswordHash:   data.PasswordHash,
		EmailVerified:  data.EmailVerified,
		EmailOTP:       data.EmailOTP,
		EmailOTPExpiry: data.EmailOTPExpiry,
		Phone:          data.Phone,
		Designation:    data.Designation,
		CompanyName:    data.CompanyName,
		CompanyLogo:    data.CompanyLogo,
		Website:        data.Website,
		Industry:       data.Industry,
		MinCompanySize: data.MinCompanySize,
		MaxCompanySize: data.MaxCompanySize,
		Country:        data.Country,
		State:          data.State,
		City:           data.City,
		Zip:            data.Zip,
		Address:        data.Address,
		Verified:       data.Verified,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
