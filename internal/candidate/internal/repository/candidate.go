package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/domain"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/repository/dao"
)

var ErrProfileNotFound = dao.ErrProfileNotFound

type ProfileRepository interface {
	Create(ctx context.Context, p domain.Profile) error
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	List(ctx context.Context, offset, limit int) ([]domain.Profile, error)
	UpdateVerdict(ctx context.Context, uid int64, verdict domain.Verdict) error
}

type profileRepository struct {
	dao dao.CandidateProfileDAO
}

func NewProfileRepository(d dao.CandidateProfileDAO) ProfileRepository {
	return &profileRepository{
		dao: d,
	}
}

func (r *profileRepository) Create(ctx context.Context, p domain.Profile) error {
	_, err := r.dao.Insert(ctx, r.toEntity(p))
	return err
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(p), nil
}

func (r *profileRepository) List(ctx context.Context, offset, limit int) ([]domain.Profile, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.CandidateProfile) domain.Profile {
		return r.toDomain(src)
	}), nil
}

func (r *profileRepository) UpdateVerdict(ctx context.Context, uid int64, verdict domain.Verdict) error {
	return r.dao.UpdateVerdict(ctx, uid, string(verdict))
}

func (r *profileRepository) toEntity(p domain.Profile) dao.CandidateProfile {
	return dao.CandidateProfile{
		Uid:                 p.Uid,
		PositionAppliedFor:  p.PositionAppliedFor,
		FirstName:           p.FirstName,
		FatherOrHusbandName: p.FatherOrHusbandName,
		Surname:             p.Surname,
		CurrentAddress:      p.CurrentAddress,
		PermanentAddress:    p.PermanentAddress,
		Mobile:              p.Mobile,
		Email:               p.Email,
		DateOfBirth:         p.DateOfBirth,
		MaritalStatus:       p.MaritalStatus,
		Gender:              p.Gender,
		Religion:            p.Religion,
		Caste:               p.Caste,
		Category:            p.Category,
		Nationality:         p.Nationality,
		BloodGroup:          p.BloodGroup,
		Allergies:           p.Allergies,
		Disability:          p.Disability,
		AadharCardNo:        p.AadharCardNo,
		PanNo:               p.PanNo,
		ResumeURL:           p.ResumeURL,
		AcademicDetails:     p.AcademicDetails,
		ExperienceDetails:   p.ExperienceDetails,
		ComputerSkills:      p.ComputerSkills,
		LanguagesKnown:      p.LanguagesKnown,
		AdditionalInfo:      p.AdditionalInfo,
		ReportingOfficers:   p.ReportingOfficers,
		SelfRatings:         p.SelfRatings,
		FamilyDetails:       p.FamilyDetails,
		FinalVerdict:        string(p.FinalVerdict),
	}
}

func (r *profileRepository) toDomain(p dao.CandidateProfile) domain.Profile {
	return domain.Profile{
		Uid:                 p.Uid,
		PositionAppliedFor:  p.PositionAppliedFor,
		FirstName:           p.FirstName,
		FatherOrHusbandName: p.FatherOrHusbandName,
		Surname:             p.Surname,
		CurrentAddress:      p.CurrentAddress,
		PermanentAddress:    p.PermanentAddress,
		Mobile:              p.Mobile,
		Email:               p.Email,
		DateOfBirth:         p.DateOfBirth,
		MaritalStatus:       p.MaritalStatus,
		Gender:              p.Gender,
		Religion:            p.Religion,
		Caste:               p.Caste,
		Category:            p.Category,
		Nationality:         p.Nationality,
		BloodGroup:          p.BloodGroup,
		Allergies:           p.Allergies,
		Disability:          p.Disability,
		AadharCardNo:        p.AadharCardNo,
		PanNo:               p.PanNo,
		ResumeURL:           p.ResumeURL,
		AcademicDetails:     p.AcademicDetails,
		ExperienceDetails:   p.ExperienceDetails,
		ComputerSkills:      p.ComputerSkills,
		LanguagesKnown:      p.LanguagesKnown,
		AdditionalInfo:      p.AdditionalInfo,
		ReportingOfficers:   p.ReportingOfficers,
		SelfRatings:         p.SelfRatings,
		FamilyDetails:       p.FamilyDetails,
		FinalVerdict:        domain.Verdict(p.FinalVerdict),
	}
}
