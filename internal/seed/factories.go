package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/service"
)

var (
	statuses = []string{"Developer", "Junior Developer", "Senior Developer", "Manager", "Student or Learning", "Instructor", "Intern"}
	skillSet = []string{"Go", "HTML", "CSS", "JavaScript", "TypeScript", "React", "PostgreSQL", "Redis", "Docker", "Kubernetes", "Python", "Rust"}
)

// CreateUser registers a fake user and returns the stored record.
func (s *Seeder) CreateUser(ctx context.Context) (*models.User, error) {
	in := s.BuildRegisterInput()
	if _, err := s.auth.Register(ctx, in); err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Email, err)
	}
	user, err := s.users.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("registered user %s not found", in.Email)
	}
	return user, nil
}

// BuildRegisterInput returns registration data with a unique email.
func (s *Seeder) BuildRegisterInput() service.RegisterInput {
	first, last := s.faker.FirstName(), s.faker.LastName()
	return service.RegisterInput{
		Name:     first + " " + last,
		Email:    fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), s.faker.Number(1000, 9999)),
		Password: DefaultPassword,
	}
}

// SeedProfile creates a profile for user with a few experience and education entries.
func (s *Seeder) SeedProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	profile, err := s.profiles.Create(ctx, user.ID, s.BuildProfileInput())
	if err != nil {
		return nil, fmt.Errorf("profile for user %d: %w", user.ID, err)
	}
	for i := s.rnd.Intn(3); i >= 0; i-- {
		if profile, err = s.profiles.AddExperience(ctx, user.ID, s.BuildExperienceInput()); err != nil {
			return nil, fmt.Errorf("experience for user %d: %w", user.ID, err)
		}
	}
	for i := s.rnd.Intn(2); i >= 0; i-- {
		if profile, err = s.profiles.AddEducation(ctx, user.ID, s.BuildEducationInput()); err != nil {
			return nil, fmt.Errorf("education for user %d: %w", user.ID, err)
		}
	}
	return profile, nil
}

// BuildProfileInput returns profile fields with two to five skills.
func (s *Seeder) BuildProfileInput() service.ProfileInput {
	skills := make(service.SkillList, 0, 5)
	for _, i := range s.rnd.Perm(len(skillSet))[:s.rnd.Intn(4)+2] {
		skills = append(skills, skillSet[i])
	}
	handle := strings.ToLower(s.faker.Username())
	return service.ProfileInput{
		Company:        s.faker.Company(),
		Website:        s.faker.URL(),
		Location:       s.faker.City() + ", " + s.faker.StateAbr(),
		Status:         statuses[s.rnd.Intn(len(statuses))],
		Skills:         skills,
		Bio:            s.faker.Sentence(15),
		GitHubUsername: handle,
		Twitter:        "https://twitter.com/" + handle,
		LinkedIn:       "https://linkedin.com/in/" + handle,
	}
}

// BuildExperienceInput returns a past job, or a current one about a third of the time.
func (s *Seeder) BuildExperienceInput() service.ExperienceInput {
	from, to, current := s.period()
	return service.ExperienceInput{
		Title:       s.faker.JobTitle(),
		Company:     s.faker.Company(),
		Location:    s.faker.City(),
		From:        from,
		To:          to,
		Current:     current,
		Description: s.faker.Sentence(10),
	}
}

// BuildEducationInput returns a school entry.
func (s *Seeder) BuildEducationInput() service.EducationInput {
	from, to, current := s.period()
	return service.EducationInput{
		School:       s.faker.LastName() + " University",
		Degree:       "Bachelor of Science",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           to,
		Current:      current,
		Description:  s.faker.Sentence(8),
	}
}

// CreatePost publishes a post of a few sentences as author.
func (s *Seeder) CreatePost(ctx context.Context, author *models.User) (*models.Post, error) {
	in := service.PostInput{Text: s.faker.Paragraph(1, s.rnd.Intn(3)+1, 12, " ")}
	post, err := s.posts.Create(ctx, author.ID, in)
	if err != nil {
		return nil, fmt.Errorf("post by user %d: %w", author.ID, err)
	}
	return post, nil
}

func (s *Seeder) period() (from, to string, current bool) {
	start := time.Now().AddDate(-s.rnd.Intn(10)-1, -s.rnd.Intn(12), 0)
	from = start.Format("2006-01-02")
	if s.rnd.Intn(3) == 0 {
		return from, "", true
	}
	end := start.AddDate(0, s.rnd.Intn(30)+1, 0)
	if end.After(time.Now()) {
		end = time.Now()
	}
	return from, end.Format("2006-01-02"), false
}
