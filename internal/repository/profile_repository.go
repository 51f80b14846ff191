package repository

import (
	"database/sql"
	"fmt"

	"devconnector-be/internal/entities"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfileRepository defines the interface for profile database operations.
// Experience and education writes are scoped to the owning user: a zero-row
// update means the user has no profile (or does not own the entry) and is
// reported as ErrNotFound.
type ProfileRepository interface {
	Upsert(userID string, fields *entities.ProfileFields) (*entities.Profile, error)
	FindByUserID(userID string) (*entities.Profile, error)
	FindAll() ([]*entities.Profile, error)
	AddExperience(userID string, exp *entities.Experience) error
	DeleteExperience(userID, experienceID string) error
	AddEducation(userID string, edu *entities.Education) error
	DeleteEducation(userID, educationID string) error
}

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	p.id, u.id, u.name, u.avatar,
	p.company, p.website, p.location, p.status, p.skills, p.bio, p.github_username,
	p.youtube, p.twitter, p.facebook, p.linkedin, p.instagram,
	p.created_at, p.updated_at
`

func scanProfile(row interface{ Scan(...interface{}) error }) (*entities.Profile, error) {
	var profile entities.Profile
	err := row.Scan(
		&profile.ID,
		&profile.User.ID,
		&profile.User.Name,
		&profile.User.Avatar,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Status,
		pq.Array(&profile.Skills),
		&profile.Bio,
		&profile.GithubUsername,
		&profile.Social.Youtube,
		&profile.Social.Twitter,
		&profile.Social.Facebook,
		&profile.Social.Linkedin,
		&profile.Social.Instagram,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the user's profile or replaces its writable fields.
func (r *profileRepository) Upsert(userID string, fields *entities.ProfileFields) (*entities.Profile, error) {
	query := `
		INSERT INTO profiles (
			id, user_id, company, website, location, status, skills, bio, github_username,
			youtube, twitter, facebook, linkedin, instagram
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			youtube = EXCLUDED.youtube,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			linkedin = EXCLUDED.linkedin,
			instagram = EXCLUDED.instagram,
			updated_at = NOW()
	`

	_, err := r.db.Exec(query,
		uuid.NewString(),
		userID,
		fields.Company,
		fields.Website,
		fields.Location,
		fields.Status,
		pq.Array(fields.Skills),
		fields.Bio,
		fields.GithubUsername,
		fields.Social.Youtube,
		fields.Social.Twitter,
		fields.Social.Facebook,
		fields.Social.Linkedin,
		fields.Social.Instagram,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return r.FindByUserID(userID)
}

// FindByUserID returns a user's profile with its experience and education
// entries and the owner's name and avatar joined in.
func (r *profileRepository) FindByUserID(userID string) (*entities.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	profile, err := scanProfile(r.db.QueryRow(query, userID))
	if isMissing(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if err := r.loadChildren(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// FindAll returns every profile, newest first.
func (r *profileRepository) FindAll() ([]*entities.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entities.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	for _, profile := range profiles {
		if err := r.loadChildren(profile); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

func (r *profileRepository) loadChildren(profile *entities.Profile) error {
	profile.Experience = []entities.Experience{}
	profile.Education = []entities.Education{}

	rows, err := r.db.Query(`
		SELECT id, title, company, location, from_date, to_date, current, description
		FROM experiences
		WHERE profile_id = $1
		ORDER BY from_date DESC
	`, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to load experiences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exp entities.Experience
		if err := rows.Scan(&exp.ID, &exp.Title, &exp.Company, &exp.Location,
			&exp.From, &exp.To, &exp.Current, &exp.Description); err != nil {
			return fmt.Errorf("failed to scan experience: %w", err)
		}
		profile.Experience = append(profile.Experience, exp)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating experiences: %w", err)
	}

	eduRows, err := r.db.Query(`
		SELECT id, school, degree, field_of_study, from_date, to_date, current, description
		FROM educations
		WHERE profile_id = $1
		ORDER BY from_date DESC
	`, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to load educations: %w", err)
	}
	defer eduRows.Close()

	for eduRows.Next() {
		var edu entities.Education
		if err := eduRows.Scan(&edu.ID, &edu.School, &edu.Degree, &edu.FieldOfStudy,
			&edu.From, &edu.To, &edu.Current, &edu.Description); err != nil {
			return fmt.Errorf("failed to scan education: %w", err)
		}
		profile.Education = append(profile.Education, edu)
	}
	return eduRows.Err()
}

// AddExperience appends an experience entry to the user's profile.
func (r *profileRepository) AddExperience(userID string, exp *entities.Experience) error {
	query := `
		INSERT INTO experiences (id, profile_id, title, company, location, from_date, to_date, current, description)
		SELECT $1, p.id, $2, $3, $4, $5, $6, $7, $8
		FROM profiles p
		WHERE p.user_id = $9
	`

	result, err := r.db.Exec(query,
		uuid.NewString(), exp.Title, exp.Company, exp.Location,
		exp.From, exp.To, exp.Current, exp.Description, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}

	return requireRows(result)
}

// DeleteExperience removes an entry, but only from the user's own profile.
func (r *profileRepository) DeleteExperience(userID, experienceID string) error {
	result, err := r.db.Exec(`
		DELETE FROM experiences
		WHERE id = $1
		AND profile_id = (SELECT id FROM profiles WHERE user_id = $2)
	`, experienceID, userID)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	return requireRows(result)
}

// AddEducation appends an education entry to the user's profile.
func (r *profileRepository) AddEducation(userID string, edu *entities.Education) error {
	query := `
		INSERT INTO educations (id, profile_id, school, degree, field_of_study, from_date, to_date, current, description)
		SELECT $1, p.id, $2, $3, $4, $5, $6, $7, $8
		FROM profiles p
		WHERE p.user_id = $9
	`

	result, err := r.db.Exec(query,
		uuid.NewString(), edu.School, edu.Degree, edu.FieldOfStudy,
		edu.From, edu.To, edu.Current, edu.Description, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add education: %w", err)
	}

	return requireRows(result)
}

// DeleteEducation removes an entry, but only from the user's own profile.
func (r *profileRepository) DeleteEducation(userID, educationID string) error {
	result, err := r.db.Exec(`
		DELETE FROM educations
		WHERE id = $1
		AND profile_id = (SELECT id FROM profiles WHERE user_id = $2)
	`, educationID, userID)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}

	return requireRows(result)
}

func requireRows(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
