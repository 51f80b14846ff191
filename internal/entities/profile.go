package entities

import "time"

// ProfileUser is the owner summary joined into profile reads.
type ProfileUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Social holds optional social network links.
type Social struct {
	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Profile is a user's public professional profile. Exactly one per user.
type Profile struct {
	ID             string       `json:"id"` // UUID
	User           ProfileUser  `json:"user"`
	Company        *string      `json:"company,omitempty"`
	Website        *string      `json:"website,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            *string      `json:"bio,omitempty"`
	GithubUsername *string      `json:"githubusername,omitempty"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Experience is a work history entry on a profile.
type Experience struct {
	ID          string     `json:"id"` // UUID
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
}

// Education is a study history entry on a profile.
type Education struct {
	ID           string     `json:"id"` // UUID
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description,omitempty"`
}

// ProfileFields is the writable portion of a profile, used on create/update.
type ProfileFields struct {
	Company        *string
	Website        *string
	Location       *string
	Status         string
	Skills         []string
	Bio            *string
	GithubUsername *string
	Social         Social
}
