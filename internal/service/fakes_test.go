package service

import (
	"context"
	"encoding/json"
	"time"

	"devconnector-be/internal/cache"
	"devconnector-be/internal/entities"
	"devconnector-be/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same ErrNotFound contract as
// the SQL implementations.

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(name, email, passwordHash, avatar string) (*entities.User, error) {
	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CreatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Delete(id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePostRepo struct {
	posts map[string]*entities.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*entities.Post)}
}

func (f *fakePostRepo) Create(userID, text, name, avatar string) (*entities.Post, error) {
	post := &entities.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      name,
		Avatar:    avatar,
		Likes:     []entities.Like{},
		Comments:  []entities.Comment{},
		CreatedAt: time.Now(),
	}
	f.posts[post.ID] = post
	return copyPost(post), nil
}

func (f *fakePostRepo) FindByID(id string) (*entities.Post, error) {
	if post, ok := f.posts[id]; ok {
		return copyPost(post), nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePostRepo) FindAll() ([]*entities.Post, error) {
	posts := make([]*entities.Post, 0, len(f.posts))
	for _, post := range f.posts {
		posts = append(posts, copyPost(post))
	}
	return posts, nil
}

func (f *fakePostRepo) Delete(id string) error {
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) AddLike(postID, userID string) error {
	post, ok := f.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, entities.Like{UserID: userID})
	return nil
}

func (f *fakePostRepo) RemoveLike(postID, userID string) error {
	post, ok := f.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, like := range post.Likes {
		if like.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePostRepo) AddComment(postID, userID, text, name, avatar string) error {
	post, ok := f.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	post.Comments = append(post.Comments, entities.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      name,
		Avatar:    avatar,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakePostRepo) DeleteComment(commentID string) error {
	for _, post := range f.posts {
		for i, comment := range post.Comments {
			if comment.ID == commentID {
				post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func copyPost(post *entities.Post) *entities.Post {
	clone := *post
	clone.Likes = append([]entities.Like{}, post.Likes...)
	clone.Comments = append([]entities.Comment{}, post.Comments...)
	return &clone
}

type fakeProfileRepo struct {
	profiles map[string]*entities.Profile // keyed by owning user ID
	users    *fakeUserRepo
}

func newFakeProfileRepo(users *fakeUserRepo) *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[string]*entities.Profile),
		users:    users,
	}
}

func (f *fakeProfileRepo) Upsert(userID string, fields *entities.ProfileFields) (*entities.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		profile = &entities.Profile{
			ID:         uuid.NewString(),
			Experience: []entities.Experience{},
			Education:  []entities.Education{},
			CreatedAt:  time.Now(),
		}
		f.profiles[userID] = profile
	}

	profile.User = entities.ProfileUser{ID: userID}
	if user, err := f.users.FindByID(userID); err == nil {
		profile.User.Name = user.Name
		profile.User.Avatar = user.Avatar
	}
	profile.Company = fields.Company
	profile.Website = fields.Website
	profile.Location = fields.Location
	profile.Status = fields.Status
	profile.Skills = fields.Skills
	profile.Bio = fields.Bio
	profile.GithubUsername = fields.GithubUsername
	profile.Social = fields.Social
	profile.UpdatedAt = time.Now()

	return copyProfile(profile), nil
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*entities.Profile, error) {
	if profile, ok := f.profiles[userID]; ok {
		return copyProfile(profile), nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProfileRepo) FindAll() ([]*entities.Profile, error) {
	profiles := make([]*entities.Profile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		profiles = append(profiles, copyProfile(profile))
	}
	return profiles, nil
}

func (f *fakeProfileRepo) AddExperience(userID string, exp *entities.Experience) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	entry := *exp
	entry.ID = uuid.NewString()
	profile.Experience = append(profile.Experience, entry)
	return nil
}

func (f *fakeProfileRepo) DeleteExperience(userID, experienceID string) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, exp := range profile.Experience {
		if exp.ID == experienceID {
			profile.Experience = append(profile.Experience[:i], profile.Experience[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProfileRepo) AddEducation(userID string, edu *entities.Education) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	entry := *edu
	entry.ID = uuid.NewString()
	profile.Education = append(profile.Education, entry)
	return nil
}

func (f *fakeProfileRepo) DeleteEducation(userID, educationID string) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, edu := range profile.Education {
		if edu.ID == educationID {
			profile.Education = append(profile.Education[:i], profile.Education[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeCache is an in-memory Cache. Setting err makes every read and write
// fail with it, simulating a broken Redis.
type fakeCache struct {
	data map[string]string
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if val, ok := f.data[key]; ok {
		return val, nil
	}
	return "", cache.ErrMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(data), expiration)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func copyProfile(profile *entities.Profile) *entities.Profile {
	clone := *profile
	clone.Skills = append([]string{}, profile.Skills...)
	clone.Experience = append([]entities.Experience{}, profile.Experience...)
	clone.Education = append([]entities.Education{}, profile.Education...)
	return &clone
}
