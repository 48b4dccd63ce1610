package mock

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/models"
)

// In-memory repositories used by handler and workflow tests. They
// mirror the real repos' contract, including surfacing
// gorm.ErrRecordNotFound on a lookup miss, and can be forced to fail
// to exercise error paths.

type PostRepo struct {
	mutex sync.RWMutex
	posts map[uuid.UUID]*models.Post
	order []uuid.UUID

	FailWith error
}

func NewPostRepo() *PostRepo {
	return &PostRepo{posts: make(map[uuid.UUID]*models.Post)}
}

func (m *PostRepo) Add(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	m.posts[post.ID] = &stored
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepo) FindAll() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.posts[id]
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	post, exists := m.posts[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

type NewpostRepo struct {
	mutex sync.RWMutex
	posts map[uuid.UUID]*models.NewPost
	order []uuid.UUID

	FailWith error
}

func NewNewpostRepo() *NewpostRepo {
	return &NewpostRepo{posts: make(map[uuid.UUID]*models.NewPost)}
}

func (m *NewpostRepo) Add(post *models.NewPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	m.posts[post.ID] = &stored
	m.order = append(m.order, post.ID)
	return nil
}

func (m *NewpostRepo) FindAll() ([]*models.NewPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	posts := make([]*models.NewPost, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.posts[id]
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *NewpostRepo) FindByID(id uuid.UUID) (*models.NewPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	post, exists := m.posts[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

type CommentRepo struct {
	mutex    sync.RWMutex
	comments []*models.Comment

	FailWith error
}

func NewCommentRepo() *CommentRepo {
	return &CommentRepo{}
}

func (m *CommentRepo) Add(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := *comment
	m.comments = append(m.comments, &stored)
	return nil
}

func (m *CommentRepo) FindAll() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	comments := make([]*models.Comment, 0, len(m.comments))
	for _, c := range m.comments {
		copied := *c
		comments = append(comments, &copied)
	}
	return comments, nil
}
