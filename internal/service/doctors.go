package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

// Specialties

func (s *Service) CreateSpecialty(ctx context.Context, req *api.SpecialtyRequest) (*api.SpecialtyResponse, error) {
	const op = "service.CreateSpecialty"

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%s: name is required: %w", op, response.ErrValidation)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	specialty := &models.Specialty{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Active:      active,
	}

	id, err := s.store.CreateSpecialty(ctx, specialty)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSpecialty(ctx, id)
}

func (s *Service) GetSpecialty(ctx context.Context, id string) (*api.SpecialtyResponse, error) {
	const op = "service.GetSpecialty"

	specialty, err := s.store.GetSpecialty(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return specialtyResponse(specialty), nil
}

func (s *Service) ListSpecialties(ctx context.Context, activeOnly bool) ([]*api.SpecialtyResponse, error) {
	const op = "service.ListSpecialties"

	specialties, err := s.store.ListSpecialties(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.SpecialtyResponse, 0, len(specialties))
	for _, specialty := range specialties {
		result = append(result, specialtyResponse(specialty))
	}

	return result, nil
}

func (s *Service) UpdateSpecialty(ctx context.Context, id string, req *api.SpecialtyRequest) (*api.SpecialtyResponse, error) {
	const op = "service.UpdateSpecialty"

	specialty, err := s.store.GetSpecialty(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	specialty.Name = req.Name
	specialty.Description = req.Description
	specialty.Icon = req.Icon
	if req.Active != nil {
		specialty.Active = *req.Active
	}

	if err := s.store.UpdateSpecialty(ctx, specialty); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSpecialty(ctx, id)
}

func (s *Service) DeleteSpecialty(ctx context.Context, id string) error {
	const op = "service.DeleteSpecialty"

	if err := s.store.DeleteSpecialty(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Doctors

func (s *Service) CreateDoctor(ctx context.Context, req *api.DoctorRequest) (*api.DoctorResponse, error) {
	const op = "service.CreateDoctor"

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%s: name is required: %w", op, response.ErrValidation)
	}
	if req.SpecialtyID == "" {
		return nil, fmt.Errorf("%s: specialty_id is required: %w", op, response.ErrValidation)
	}

	if _, err := s.store.GetSpecialty(ctx, req.SpecialtyID); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fee := req.Fee
	if fee == "" {
		fee = "Call for price"
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	doctor := &models.Doctor{
		ID:              uuid.NewString(),
		Name:            req.Name,
		SpecialtyID:     req.SpecialtyID,
		Qualifications:  req.Qualifications,
		Bio:             req.Bio,
		Photo:           req.Photo,
		Fee:             fee,
		Tags:            req.Tags,
		Gender:          models.Gender(req.Gender),
		Languages:       req.Languages,
		ExperienceYears: req.ExperienceYears,
		Phone:           req.Phone,
		Email:           req.Email,
		Active:          active,
	}

	id, err := s.store.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetDoctor(ctx, id)
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*api.DoctorResponse, error) {
	const op = "service.GetDoctor"

	doctor, err := s.store.GetDoctor(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := doctorResponse(doctor)

	if specialty, err := s.store.GetSpecialty(ctx, doctor.SpecialtyID); err == nil {
		resp.Specialty = specialty.Name
	}

	return resp, nil
}

func (s *Service) ListDoctors(ctx context.Context, filters *DoctorFilters) ([]*api.DoctorResponse, error) {
	const op = "service.ListDoctors"

	doctors, err := s.store.ListDoctors(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, doctorResponse(doctor))
	}

	return result, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, req *api.DoctorRequest) (*api.DoctorResponse, error) {
	const op = "service.UpdateDoctor"

	doctor, err := s.store.GetDoctor(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doctor.Name = req.Name
	doctor.SpecialtyID = req.SpecialtyID
	doctor.Qualifications = req.Qualifications
	doctor.Bio = req.Bio
	doctor.Photo = req.Photo
	if req.Fee != "" {
		doctor.Fee = req.Fee
	}
	doctor.Tags = req.Tags
	doctor.Gender = models.Gender(req.Gender)
	doctor.Languages = req.Languages
	doctor.ExperienceYears = req.ExperienceYears
	doctor.Phone = req.Phone
	doctor.Email = req.Email
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := s.store.UpdateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetDoctor(ctx, id)
}

// DeleteDoctor deactivates rather than removes: past appointments keep a
// valid doctor reference.
func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	const op = "service.DeleteDoctor"

	if err := s.store.DeactivateDoctor(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func specialtyResponse(sp *models.Specialty) *api.SpecialtyResponse {
	return &api.SpecialtyResponse{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Icon:        sp.Icon,
		Active:      sp.Active,
	}
}

func doctorResponse(d *models.Doctor) *api.DoctorResponse {
	return &api.DoctorResponse{
		ID:              d.ID,
		Name:            d.Name,
		SpecialtyID:     d.SpecialtyID,
		Qualifications:  d.Qualifications,
		Bio:             d.Bio,
		Photo:           d.Photo,
		Fee:             d.Fee,
		Tags:            d.Tags,
		Gender:          string(d.Gender),
		Languages:       d.Languages,
		ExperienceYears: d.ExperienceYears,
		Phone:           d.Phone,
		Email:           d.Email,
		Active:          d.Active,
	}
}
