package domain

// Verdict 最终录用结论，只能由终面结论流程写入
type Verdict string

const (
	VerdictRecommended    Verdict = "Recommended"
	VerdictNotRecommended Verdict = "Not Recommended"
	VerdictWaitlist       Verdict = "Waitlist"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictRecommended, VerdictNotRecommended, VerdictWaitlist:
		return true
	default:
		return false
	}
}

// Profile 候选人资料。结构化字段之外的内容按 JSON 文本原样保存
type Profile struct {
	Uid                 int64
	PositionAppliedFor  string
	FirstName           string
	FatherOrHusbandName string
	Surname             string
	CurrentAddress      string
	PermanentAddress    string
	Mobile              string
	Email               string
	DateOfBirth         string
	MaritalStatus       string
	Gender              string
	Religion            string
	Caste               string
	Category            string
	Nationality         string
	BloodGroup          string
	Allergies           string
	Disability          string
	AadharCardNo        string
	PanNo               string
	ResumeURL           string

	// 以下是表单里的明细区块，JSON 文本
	AcademicDetails   string
	ExperienceDetails string
	ComputerSkills    string
	LanguagesKnown    string
	AdditionalInfo    string
	ReportingOfficers string
	SelfRatings       string
	FamilyDetails     string

	FinalVerdict Verdict
}

func (p Profile) FullName() string {
	if p.FirstName == "" {
		return p.Surname
	}
	if p.Surname == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.Surname
}
