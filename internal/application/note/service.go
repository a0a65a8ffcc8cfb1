package note

import (
	"context"
	"time"

	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/Kush146/note-app-Backend/internal/pkg/id"
)

// NoteStore is the note persistence the service requires. Every mutation is
// keyed by (noteID, email) so ownership is enforced at the storage layer.
type NoteStore interface {
	Put(ctx context.Context, n *domain.Note) error
	ListByEmail(ctx context.Context, email string) ([]domain.Note, error)
	Update(ctx context.Context, noteID, email string, updates map[string]interface{}) (*domain.Note, error)
	Delete(ctx context.Context, noteID, email string) error
}

type Service interface {
	Create(ctx context.Context, email string, req domain.CreateNoteRequest) (*domain.Note, error)
	List(ctx context.Context, email string) ([]domain.Note, error)
	Update(ctx context.Context, noteID, email string, req domain.UpdateNoteRequest) (*domain.Note, error)
	Delete(ctx context.Context, noteID, email string) error
}

type service struct {
	repo NoteStore
}

func NewService(repo NoteStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, email string, req domain.CreateNoteRequest) (*domain.Note, error) {
	now := time.Now().UTC()
	n := &domain.Note{
		NoteID:    id.New(),
		Email:     email,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, email string) ([]domain.Note, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *service) Update(ctx context.Context, noteID, email string, req domain.UpdateNoteRequest) (*domain.Note, error) {
	return s.repo.Update(ctx, noteID, email, map[string]interface{}{
		"title":      req.Title,
		"content":    req.Content,
		"updated_at": time.Now().UTC(),
	})
}

func (s *service) Delete(ctx context.Context, noteID, email string) error {
	return s.repo.Delete(ctx, noteID, email)
}
