package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// memStore is an in-memory implementation of every repository interface the
// services depend on. Finders mirror the real repositories: nil result, nil
// error when nothing matches. Setting err makes every call fail with it.
type memStore struct {
	users    map[uint]*models.User
	projects map[uint]*models.Project
	comments map[uint]*models.Comment
	likes    map[[2]uint]bool
	contacts []models.Contact
	skills   []models.Skill
	nextID   uint
	err      error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uint]*models.User),
		projects: make(map[uint]*models.Project),
		comments: make(map[uint]*models.Comment),
		likes:    make(map[[2]uint]bool),
	}
}

func (s *memStore) nextIDValue() uint {
	s.nextID++
	return s.nextID
}

// UserReader / UserWriter

func (s *memStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (s *memStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) Add(ctx context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = s.nextIDValue()
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// projectStore adapts memStore to the project interfaces; separate type so
// Add and FindByID do not collide with the user methods.
type projectStore struct{ s *memStore }

func (p projectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	if p.s.err != nil {
		return nil, p.s.err
	}
	var projects []models.Project
	for _, project := range p.s.projects {
		projects = append(projects, *project)
	}
	// newest first
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })
	return projects, nil
}

func (p projectStore) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	if p.s.err != nil {
		return nil, p.s.err
	}
	if project, ok := p.s.projects[id]; ok {
		copied := *project
		return &copied, nil
	}
	return nil, nil
}

func (p projectStore) Add(ctx context.Context, project *models.Project) error {
	if p.s.err != nil {
		return p.s.err
	}
	project.ID = p.s.nextIDValue()
	project.CreatedAt = time.Now()
	copied := *project
	p.s.projects[project.ID] = &copied
	return nil
}

// commentStore adapts memStore to the CommentRepo interface.
type commentStore struct{ s *memStore }

func (c commentStore) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	if c.s.err != nil {
		return nil, c.s.err
	}
	if comment, ok := c.s.comments[id]; ok {
		copied := *comment
		return &copied, nil
	}
	return nil, nil
}

func (c commentStore) FindByProject(ctx context.Context, projectID uint) ([]models.Comment, error) {
	if c.s.err != nil {
		return nil, c.s.err
	}
	var comments []models.Comment
	for _, comment := range c.s.comments {
		if comment.ProjectID == projectID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (c commentStore) FindAll(ctx context.Context) ([]models.Comment, error) {
	if c.s.err != nil {
		return nil, c.s.err
	}
	var comments []models.Comment
	for _, comment := range c.s.comments {
		comments = append(comments, *comment)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

func (c commentStore) Add(ctx context.Context, comment *models.Comment) error {
	if c.s.err != nil {
		return c.s.err
	}
	comment.ID = c.s.nextIDValue()
	comment.CreatedAt = time.Now()
	copied := *comment
	c.s.comments[comment.ID] = &copied
	return nil
}

func (c commentStore) UpdateContent(ctx context.Context, id uint, content string) error {
	if c.s.err != nil {
		return c.s.err
	}
	if comment, ok := c.s.comments[id]; ok {
		comment.Content = content
	}
	return nil
}

func (c commentStore) Delete(ctx context.Context, id uint) error {
	if c.s.err != nil {
		return c.s.err
	}
	delete(c.s.comments, id)
	return nil
}

// likeStore adapts memStore to the LikeRepo interface.
type likeStore struct{ s *memStore }

func (l likeStore) Toggle(ctx context.Context, userID, projectID uint) (bool, error) {
	if l.s.err != nil {
		return false, l.s.err
	}
	key := [2]uint{userID, projectID}
	if l.s.likes[key] {
		delete(l.s.likes, key)
		return false, nil
	}
	l.s.likes[key] = true
	return true, nil
}

func (l likeStore) CountForProject(ctx context.Context, projectID uint) (int64, error) {
	if l.s.err != nil {
		return 0, l.s.err
	}
	var count int64
	for key := range l.s.likes {
		if key[1] == projectID {
			count++
		}
	}
	return count, nil
}

// contactStore adapts memStore to the ContactRepo interface.
type contactStore struct{ s *memStore }

func (c contactStore) Add(ctx context.Context, contact *models.Contact) error {
	if c.s.err != nil {
		return c.s.err
	}
	contact.ID = c.s.nextIDValue()
	contact.CreatedAt = time.Now()
	c.s.contacts = append(c.s.contacts, *contact)
	return nil
}

func (c contactStore) FindAll(ctx context.Context) ([]models.Contact, error) {
	if c.s.err != nil {
		return nil, c.s.err
	}
	contacts := make([]models.Contact, len(c.s.contacts))
	copy(contacts, c.s.contacts)
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID > contacts[j].ID })
	return contacts, nil
}

// skillStore adapts memStore to the SkillReader interface.
type skillStore struct{ s *memStore }

func (k skillStore) FindAll(ctx context.Context) ([]models.Skill, error) {
	if k.s.err != nil {
		return nil, k.s.err
	}
	skills := make([]models.Skill, len(k.s.skills))
	copy(skills, k.s.skills)
	return skills, nil
}
