package timeentries_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_models "orilla/internal/features/timeentries/models"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
	timesheets_permissions "orilla/internal/features/timesheets/permissions"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

type EntryMessageService struct {
	messageRepository *timeentries_repositories.EntryMessageRepository
	entryService      *TimeEntryService
}

// CreateMessage appends a message to the entry discussion trail. Commenting
// goes through the role table like every other review action; messages are
// never edited or removed.
func (s *EntryMessageService) CreateMessage(
	entryID uuid.UUID,
	request *timeentries_dto.CreateEntryMessageRequestDTO,
	author *users_models.User,
) (*timeentries_dto.EntryMessageResponseDTO, error) {
	entry, err := s.entryService.GetEntryRecord(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewNotFound("time entry")
	}

	decision, err := s.resolveCommentDecision(entry, author)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, apperrors.NewPermissionDenied(decision.Reason)
	}

	message := &timeentries_models.EntryMessage{
		ID:        uuid.New(),
		EntryID:   entryID,
		AuthorID:  author.ID,
		Content:   request.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messageRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create entry message: %w", err)
	}

	return &timeentries_dto.EntryMessageResponseDTO{
		ID:          message.ID,
		EntryID:     message.EntryID,
		AuthorID:    message.AuthorID,
		AuthorEmail: author.Email,
		Content:     message.Content,
		CreatedAt:   message.CreatedAt,
	}, nil
}

func (s *EntryMessageService) GetMessages(
	entryID uuid.UUID,
	user *users_models.User,
) (*timeentries_dto.GetEntryMessagesResponseDTO, error) {
	entry, err := s.entryService.GetEntryRecord(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewNotFound("time entry")
	}

	canAccess, err := s.entryService.CanUserAccessEntry(entry, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, apperrors.NewPermissionDenied("not a project member")
	}

	messages, err := s.messageRepository.GetMessagesByEntry(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry messages: %w", err)
	}

	messagesList := make([]timeentries_dto.EntryMessageResponseDTO, len(messages))
	for i, message := range messages {
		messagesList[i] = *message
	}

	return &timeentries_dto.GetEntryMessagesResponseDTO{Messages: messagesList}, nil
}

func (s *EntryMessageService) resolveCommentDecision(
	entry *timeentries_models.TimeEntry,
	author *users_models.User,
) (timesheets_permissions.Decision, error) {
	actor := timesheets_permissions.Actor{
		UserID:        author.ID,
		IsSystemAdmin: author.IsSystemAdmin(),
	}
	context := timesheets_permissions.ReviewContext{
		HasProject: entry.ProjectID != nil,
	}

	if entry.ProjectID != nil {
		role, err := s.entryService.projectService.GetUserProjectRole(*entry.ProjectID, author.ID)
		if err != nil {
			return timesheets_permissions.Decision{}, fmt.Errorf("failed to get project role: %w", err)
		}
		actor.ProjectRole = role
	}

	return timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityComment), nil
}
