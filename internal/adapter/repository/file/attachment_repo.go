package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/bankmatch/internal/domain"
)

// AttachmentRepository implements usecase.AttachmentRepository over a JSON
// fixture file.
type AttachmentRepository struct {
	attachments []domain.Attachment
}

// NewAttachmentRepository loads and validates the attachment fixture.
func NewAttachmentRepository(path string) (*AttachmentRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachments fixture: %w", err)
	}

	var records []attachmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode attachments fixture: %w", err)
	}

	attachments := make([]domain.Attachment, 0, len(records))
	for _, rec := range records {
		att, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}

	return &AttachmentRepository{attachments: attachments}, nil
}

// List returns all attachments. The returned slice is a copy; the loaded
// records stay immutable.
func (r *AttachmentRepository) List(_ context.Context) ([]domain.Attachment, error) {
	out := make([]domain.Attachment, len(r.attachments))
	copy(out, r.attachments)
	return out, nil
}

// GetByID returns the attachment with the given id.
func (r *AttachmentRepository) GetByID(_ context.Context, id string) (*domain.Attachment, error) {
	for _, att := range r.attachments {
		if att.ID == id {
			found := att
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrAttachmentNotFound, id)
}
