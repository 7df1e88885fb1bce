package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Social holds a profile's social network links.
type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is one job entry embedded in a profile.
type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

func (e *Experience) ElementID() string      { return e.ID }
func (e *Experience) SetElementID(id string) { e.ID = id }

// ApplyPatch copies the editable fields of patch onto e.
func (e *Experience) ApplyPatch(patch Experience) {
	e.Title = patch.Title
	e.Company = patch.Company
	e.Location = patch.Location
	e.From = patch.From
	e.To = patch.To
	e.Current = patch.Current
	e.Description = patch.Description
}

// Education is one school entry embedded in a profile.
type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

func (e *Education) ElementID() string      { return e.ID }
func (e *Education) SetElementID(id string) { e.ID = id }

// ApplyPatch copies the editable fields of patch onto e.
func (e *Education) ApplyPatch(patch Education) {
	e.School = patch.School
	e.Degree = patch.Degree
	e.FieldOfStudy = patch.FieldOfStudy
	e.From = patch.From
	e.To = patch.To
	e.Current = patch.Current
	e.Description = patch.Description
}

// Profile is a user's developer profile. Each user has at most one.
type Profile struct {
	ID             uint                            `gorm:"primaryKey" json:"_id"`
	UserID         uint                            `gorm:"uniqueIndex;not null" json:"-"`
	User           *UserSummary                    `gorm:"-" json:"user"`
	Company        string                          `json:"company,omitempty"`
	Website        string                          `json:"website,omitempty"`
	Location       string                          `json:"location,omitempty"`
	Status         string                          `gorm:"not null" json:"status"`
	Skills         datatypes.JSONSlice[string]     `json:"skills"`
	Bio            string                          `json:"bio,omitempty"`
	GitHubUsername string                          `json:"githubusername,omitempty"`
	Social         datatypes.JSONType[Social]      `json:"social"`
	Experience     datatypes.JSONSlice[Experience] `json:"experience"`
	Education      datatypes.JSONSlice[Education]  `json:"education"`
	Date           time.Time                       `gorm:"autoCreateTime" json:"date"`
}

// NewProfile returns an empty profile owned by userID.
func NewProfile(userID uint) *Profile {
	return &Profile{
		UserID:     userID,
		Skills:     datatypes.JSONSlice[string]{},
		Experience: datatypes.JSONSlice[Experience]{},
		Education:  datatypes.JSONSlice[Education]{},
	}
}

// AfterFind keeps embedded arrays non-nil so they serialize as [].
func (p *Profile) AfterFind(_ *gorm.DB) error {
	if p.Skills == nil {
		p.Skills = datatypes.JSONSlice[string]{}
	}
	if p.Experience == nil {
		p.Experience = datatypes.JSONSlice[Experience]{}
	}
	if p.Education == nil {
		p.Education = datatypes.JSONSlice[Education]{}
	}
	return nil
}
