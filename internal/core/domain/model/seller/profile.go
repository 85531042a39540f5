package seller

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// SkillLevel is free text chosen by the seller ("Beginner", "Master", ...).
type SkillLevel = string

// Profile is what the seller tells buyers about themselves. Credentials are
// handled by the authentication collaborator and never stored here.
type Profile struct {
	name        string
	email       string
	phone       string
	region      string
	craftType   string
	skill       SkillLevel
	description string

	guard guard.ConstructorGuard
}

// Fields carries raw profile input.
type Fields struct {
	Name        string
	Email       string
	Phone       string
	Region      string
	CraftType   string
	Skill       SkillLevel
	Description string
}

// NewProfile requires a name and an email address; everything else is optional.
func NewProfile(f Fields) (*Profile, error) {
	p := &Profile{
		name:        strings.TrimSpace(f.Name),
		email:       strings.TrimSpace(f.Email),
		phone:       strings.TrimSpace(f.Phone),
		region:      strings.TrimSpace(f.Region),
		craftType:   strings.TrimSpace(f.CraftType),
		skill:       strings.TrimSpace(f.Skill),
		description: strings.TrimSpace(f.Description),
		guard:       guard.NewConstructorGuard(),
	}

	var nameErr, emailErr error
	if p.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if p.email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	} else if !strings.Contains(p.email, "@") {
		emailErr = errs.NewValueIsInvalidError("email")
	}

	if err := errors.Join(nameErr, emailErr); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) Name() string { return p.name }
func (p *Profile) Email() string { return p.email }
func (p *Profile) Phone() string { return p.phone }
func (p *Profile) Region() string { return p.region }
func (p *Profile) CraftType() string { return p.craftType }
func (p *Profile) Skill() SkillLevel { return p.skill }
func (p *Profile) Description() string { return p.description }

// Fields returns the profile as raw input, the inverse of NewProfile.
func (p *Profile) Fields() Fields {
	return Fields{
		Name:        p.name,
		Email:       p.email,
		Phone:       p.phone,
		Region:      p.region,
		CraftType:   p.craftType,
		Skill:       p.skill,
		Description: p.description,
	}
}
