package web

import (
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vrecruit/vrecruit/internal/candidate/internal/domain"
)

type AddReq struct {
	PositionAppliedFor  string `json:"position_applied_for"`
	FirstName           string `json:"first_name"`
	FatherOrHusbandName string `json:"father_or_husband_name"`
	Surname             string `json:"surname"`
	CurrentAddress      string `json:"current_address"`
	PermanentAddress    string `json:"permanent_address"`
	Mobile              string `json:"mobile"`
	Email               string `json:"email"`
	DateOfBirth         string `json:"date_of_birth"`
	MaritalStatus       string `json:"marital_status"`
	Gender              string `json:"gender"`
	Religion            string `json:"religion"`
	Caste               string `json:"caste"`
	Category            string `json:"category"`
	Nationality         string `json:"nationality"`
	BloodGroup          string `json:"blood_group"`
	Allergies           string `json:"allergies"`
	Disability          string `json:"disability"`
	AadharCardNo        string `json:"aadhar_card_no"`
	PanNo               string `json:"pan_no"`
	ResumeURL           string `json:"resume_url"`

	AcademicDetails   json.RawMessage `json:"academic_details"`
	ExperienceDetails json.RawMessage `json:"experience_details"`
	ComputerSkills    json.RawMessage `json:"computer_skills"`
	LanguagesKnown    json.RawMessage `json:"languages_known"`
	AdditionalInfo    json.RawMessage `json:"additional_info"`
	ReportingOfficers json.RawMessage `json:"reporting_officers"`
	SelfRatings       json.RawMessage `json:"self_ratings"`
	FamilyDetails     json.RawMessage `json:"family_details"`
}

func (req AddReq) toDomain() domain.Profile {
	return domain.Profile{
		PositionAppliedFor:  req.PositionAppliedFor,
		FirstName:           req.FirstName,
		FatherOrHusbandName: req.FatherOrHusbandName,
		Surname:             req.Surname,
		CurrentAddress:      req.CurrentAddress,
		PermanentAddress:    req.PermanentAddress,
		Mobile:              req.Mobile,
		Email:               req.Email,
		DateOfBirth:         req.DateOfBirth,
		MaritalStatus:       req.MaritalStatus,
		Gender:              req.Gender,
		Religion:            req.Religion,
		Caste:               req.Caste,
		Category:            req.Category,
		Nationality:         req.Nationality,
		BloodGroup:          req.BloodGroup,
		Allergies:           req.Allergies,
		Disability:          req.Disability,
		AadharCardNo:        req.AadharCardNo,
		PanNo:               req.PanNo,
		ResumeURL:           req.ResumeURL,
		AcademicDetails:     rawOr(req.AcademicDetails, "[]"),
		ExperienceDetails:   rawOr(req.ExperienceDetails, "[]"),
		ComputerSkills:      rawOr(req.ComputerSkills, "{}"),
		LanguagesKnown:      rawOr(req.LanguagesKnown, "{}"),
		AdditionalInfo:      rawOr(req.AdditionalInfo, "{}"),
		ReportingOfficers:   rawOr(req.ReportingOfficers, "[]"),
		SelfRatings:         rawOr(req.SelfRatings, "{}"),
		FamilyDetails:       rawOr(req.FamilyDetails, "[]"),
	}
}

// 前端可能传 null，落库时补上空集合
func rawOr(raw json.RawMessage, def string) string {
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}
	return string(raw)
}

type ProfileReq struct {
	Uid int64 `json:"uid"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Profile struct {
	Uid                int64  `json:"uid"`
	FullName           string `json:"fullName"`
	PositionAppliedFor string `json:"positionAppliedFor"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
	ResumeURL          string `json:"resumeUrl"`
	FinalVerdict       string `json:"finalVerdict"`
}

type ProfileDetail struct {
	Profile
	FatherOrHusbandName string `json:"fatherOrHusbandName"`
	CurrentAddress      string `json:"currentAddress"`
	PermanentAddress    string `json:"permanentAddress"`
	DateOfBirth         string `json:"dateOfBirth"`
	MaritalStatus       string `json:"maritalStatus"`
	Gender              string `json:"gender"`
	Religion            string `json:"religion"`
	Caste               string `json:"caste"`
	Category            string `json:"category"`
	Nationality         string `json:"nationality"`
	BloodGroup          string `json:"bloodGroup"`
	Allergies           string `json:"allergies"`
	Disability          string `json:"disability"`
	AadharCardNo        string `json:"aadharCardNo"`
	PanNo               string `json:"panNo"`

	AcademicDetails   json.RawMessage `json:"academicDetails"`
	ExperienceDetails json.RawMessage `json:"experienceDetails"`
	ComputerSkills    json.RawMessage `json:"computerSkills"`
	LanguagesKnown    json.RawMessage `json:"languagesKnown"`
	AdditionalInfo    json.RawMessage `json:"additionalInfo"`
	ReportingOfficers json.RawMessage `json:"reportingOfficers"`
	SelfRatings       json.RawMessage `json:"selfRatings"`
	FamilyDetails     json.RawMessage `json:"familyDetails"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		Uid:                p.Uid,
		FullName:           p.FullName(),
		PositionAppliedFor: p.PositionAppliedFor,
		Mobile:             p.Mobile,
		Email:              p.Email,
		ResumeURL:          p.ResumeURL,
		FinalVerdict:       string(p.FinalVerdict),
	}
}

func newProfileList(ps []domain.Profile) []Profile {
	return slice.Map(ps, func(idx int, src domain.Profile) Profile {
		return newProfile(src)
	})
}

func newProfileDetail(p domain.Profile) ProfileDetail {
	return ProfileDetail{
		Profile:             newProfile(p),
		FatherOrHusbandName: p.FatherOrHusbandName,
		CurrentAddress:      p.CurrentAddress,
		PermanentAddress:    p.PermanentAddress,
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
		AcademicDetails:     json.RawMessage(p.AcademicDetails),
		ExperienceDetails:   json.RawMessage(p.ExperienceDetails),
		ComputerSkills:      json.RawMessage(p.ComputerSkills),
		LanguagesKnown:      json.RawMessage(p.LanguagesKnown),
		AdditionalInfo:      json.RawMessage(p.AdditionalInfo),
		ReportingOfficers:   json.RawMessage(p.ReportingOfficers),
		SelfRatings:         json.RawMessage(p.SelfRatings),
		FamilyDetails:       json.RawMessage(p.FamilyDetails),
	}
}
