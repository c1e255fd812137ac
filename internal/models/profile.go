// ABOUTME: Profile model and ProfileField keys for the single device profile.
// ABOUTME: Each field is persisted as an independent key/value setting.
package models

// ProfileField names a persisted profile setting.
type ProfileField string

const (
	ProfileName   ProfileField = "profile.name"
	ProfileAge    ProfileField = "profile.age"
	ProfileHeight ProfileField = "profile.height"
	ProfileWeight ProfileField = "profile.weight"
	ProfileAvatar ProfileField = "profile.avatar"
)

// AllProfileFields lists the text fields in display order. The avatar is
// stored alongside them but is binary.
var AllProfileFields = []ProfileField{
	ProfileName, ProfileAge, ProfileHeight, ProfileWeight,
}

// ProfileFieldLabels maps fields to their display labels.
var ProfileFieldLabels = map[ProfileField]string{
	ProfileName:   "Name",
	ProfileAge:    "Age",
	ProfileHeight: "Height",
	ProfileWeight: "Weight",
	ProfileAvatar: "Avatar",
}

// IsValidProfileField checks if a string is a known profile field key.
func IsValidProfileField(s string) bool {
	for _, f := range AllProfileFields {
		if string(f) == s {
			return true
		}
	}
	return s == string(ProfileAvatar)
}

// Profile is the user's profile. All values are free text; weight is the
// body weight as typed, not a workout weight.
type Profile struct {
	Name   string `json:"name" yaml:"name"`
	Age    string `json:"age" yaml:"age"`
	Height string `json:"height" yaml:"height"`
	Weight string `json:"weight" yaml:"weight"`
	Avatar []byte `json:"avatar,omitempty" yaml:"-"`
}

// Get returns the text value of a field. The avatar is not a text field and yields "".
func (p *Profile) Get(f ProfileField) string {
	switch f {
	case ProfileName:
		return p.Name
	case ProfileAge:
		return p.Age
	case ProfileHeight:
		return p.Height
	case ProfileWeight:
		return p.Weight
	}
	return ""
}

// Set assigns the text value of a field. Unknown fields and the avatar are ignored.
func (p *Profile) Set(f ProfileField, v string) {
	switch f {
	case ProfileName:
		p.Name = v
	case ProfileAge:
		p.Age = v
	case ProfileHeight:
		p.Height = v
	case ProfileWeight:
		p.Weight = v
	}
}

// HasAvatar reports whether an avatar image has been picked.
func (p *Profile) HasAvatar() bool {
	return len(p.Avatar) > 0
}
