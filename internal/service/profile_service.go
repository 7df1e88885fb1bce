package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/subdoc"
	"devconnector/internal/validation"

	"gorm.io/datatypes"
)

type ProfileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

// SkillList accepts either a comma separated string or a JSON array.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = ParseSkills(strings.Join(list, ","))
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("skills must be a string or an array of strings")
	}
	*s = ParseSkills(raw)
	return nil
}

// ParseSkills splits on commas, trims each entry and drops empty ones.
func ParseSkills(raw string) SkillList {
	skills := SkillList{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ProfileInput is the allow-list of profile fields a client may set.
type ProfileInput struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Status         string    `json:"status" validate:"required" msg:"Status is required"`
	Skills         SkillList `json:"skills" validate:"min=1" msg:"Skills is required"`
	Bio            string    `json:"bio"`
	GitHubUsername string    `json:"githubusername"`
	YouTube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Facebook       string    `json:"facebook"`
	LinkedIn       string    `json:"linkedin"`
	Instagram      string    `json:"instagram"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required,date" msg:"From date is required"`
	To          string `json:"to" validate:"date" msg:"To date is invalid"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required,date" msg:"From date is required"`
	To           string `json:"to" validate:"date" msg:"To date is invalid"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

func (in *ProfileInput) apply(p *models.Profile) {
	p.Company = strings.TrimSpace(in.Company)
	p.Website = strings.TrimSpace(in.Website)
	p.Location = strings.TrimSpace(in.Location)
	p.Status = strings.TrimSpace(in.Status)
	p.Skills = datatypes.JSONSlice[string](in.Skills)
	p.Bio = in.Bio
	p.GitHubUsername = strings.TrimSpace(in.GitHubUsername)
	p.Social = datatypes.NewJSONType(models.Social{
		YouTube:   strings.TrimSpace(in.YouTube),
		Twitter:   strings.TrimSpace(in.Twitter),
		Facebook:  strings.TrimSpace(in.Facebook),
		LinkedIn:  strings.TrimSpace(in.LinkedIn),
		Instagram: strings.TrimSpace(in.Instagram),
	})
}

func (in *ExperienceInput) toModel() (models.Experience, error) {
	if err := validation.Struct(in); err != nil {
		return models.Experience{}, err
	}
	from, err := validation.ParseDate(in.From)
	if err != nil {
		return models.Experience{}, models.NewValidationError("From date is required")
	}
	to, err := validation.ParseOptionalDate(in.To)
	if err != nil {
		return models.Experience{}, models.NewValidationError("To date is invalid")
	}
	return models.Experience{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}, nil
}

func (in *EducationInput) toModel() (models.Education, error) {
	if err := validation.Struct(in); err != nil {
		return models.Education{}, err
	}
	from, err := validation.ParseDate(in.From)
	if err != nil {
		return models.Education{}, models.NewValidationError("From date is required")
	}
	to, err := validation.ParseOptionalDate(in.To)
	if err != nil {
		return models.Education{}, models.NewValidationError("To date is invalid")
	}
	return models.Education{
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Create builds the caller's profile. A second profile for the same user is a conflict.
func (s *ProfileService) Create(ctx context.Context, userID uint, in ProfileInput) (*models.Profile, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	_, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, models.NewConflictError("Profile already exists")
	case !models.HasCode(err, models.CodeNotFound):
		return nil, err
	}

	profile := models.NewProfile(userID)
	in.apply(profile)
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update replaces the allow-listed fields of the caller's profile. Embedded
// experience and education are left alone.
func (s *ProfileService) Update(ctx context.Context, userID uint, in ProfileInput) (*models.Profile, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	in.apply(profile)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the caller's posts, profile and user.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.users.DeleteAccount(ctx, userID)
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	exp, err := in.toModel()
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		p.Experience, _ = subdoc.InsertFront(p.Experience, exp)
		return nil
	})
}

func (s *ProfileService) UpdateExperience(ctx context.Context, userID uint, expID string, in ExperienceInput) (*models.Profile, error) {
	exp, err := in.toModel()
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		updated, _, err := subdoc.UpdateByID(p.Experience, expID, exp)
		if err != nil {
			return elementNotFound(err, "Experience")
		}
		p.Experience = updated
		return nil
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID uint, expID string) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		remaining, err := subdoc.RemoveByID(p.Experience, expID)
		if err != nil {
			return elementNotFound(err, "Experience")
		}
		p.Experience = remaining
		return nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	edu, err := in.toModel()
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		p.Education, _ = subdoc.InsertFront(p.Education, edu)
		return nil
	})
}

func (s *ProfileService) UpdateEducation(ctx context.Context, userID uint, eduID string, in EducationInput) (*models.Profile, error) {
	edu, err := in.toModel()
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		updated, _, err := subdoc.UpdateByID(p.Education, eduID, edu)
		if err != nil {
			return elementNotFound(err, "Education")
		}
		p.Education = updated
		return nil
	})
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID uint, eduID string) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		remaining, err := subdoc.RemoveByID(p.Education, eduID)
		if err != nil {
			return elementNotFound(err, "Education")
		}
		p.Education = remaining
		return nil
	})
}

func (s *ProfileService) ownProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(profile.UserID, userID); err != nil {
		return nil, err
	}
	return profile, nil
}

// mutate loads the caller's profile, applies edit and saves the whole row.
// Nothing is written when edit fails.
func (s *ProfileService) mutate(ctx context.Context, userID uint, edit func(*models.Profile) error) (*models.Profile, error) {
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := edit(profile); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
