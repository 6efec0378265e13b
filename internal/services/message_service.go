package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"placement-portal/internal/crypto"
	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"
)

// unreadableMessagePlaceholder is shown when a stored ciphertext can no
// longer be decrypted, e.g. after a key rotation. The thread stays readable.
const unreadableMessagePlaceholder = "[message unavailable]"

type messageService struct {
	msgs       storage.MessageRepository
	apps       storage.ApplicationRepository
	jobs       storage.JobRepository
	students   storage.StudentProfileRepository
	recruiters storage.RecruiterProfileRepository
	users      storage.UserRepository
	cipher     *crypto.MessageCipher
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(
	msgs storage.MessageRepository,
	apps storage.ApplicationRepository,
	jobs storage.JobRepository,
	students storage.StudentProfileRepository,
	recruiters storage.RecruiterProfileRepository,
	users storage.UserRepository,
	cipher *crypto.MessageCipher,
) MessageService {
	return &messageService{
		msgs:       msgs,
		apps:       apps,
		jobs:       jobs,
		students:   students,
		recruiters: recruiters,
		users:      users,
		cipher:     cipher,
	}
}

// thread holds the two parties of an application's message thread.
type thread struct {
	student   *models.StudentProfile
	recruiter *models.RecruiterProfile
	// senderRole is the caller's side of the thread.
	senderRole models.Role
}

// Send posts one message on an application thread. Only the application's
// student or the job's owning recruiter may write; content is encrypted
// before it reaches storage.
func (s *messageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	t, err := s.resolveThread(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.cipher.Encrypt(req.Content)
	if err != nil {
		log.Printf("MessageService: Error encrypting message for application %s: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("internal error sending message: %w", err)
	}

	msg := &models.Message{
		ApplicationID: req.ApplicationID,
		Content:       ciphertext,
	}
	if t.senderRole == models.RoleStudent {
		msg.SenderEmail = t.student.Email
		msg.SenderRole = models.RoleStudent
		msg.ReceiverEmail = t.recruiter.Email
		msg.ReceiverRole = models.RoleRecruiter
	} else {
		msg.SenderEmail = t.recruiter.Email
		msg.SenderRole = models.RoleRecruiter
		msg.ReceiverEmail = t.student.Email
		msg.ReceiverRole = models.RoleStudent
	}

	created, err := s.msgs.Create(ctx, msg)
	if err != nil {
		return nil, MapRepoError(err, "create message")
	}

	resp := s.toResponse(created, t)
	resp.Content = req.Content
	return &resp, nil
}

// List returns an application's thread, decrypted, for one of its parties.
func (s *messageService) List(ctx context.Context, req *dto.ListMessagesRequest) ([]dto.MessageResponse, error) {
	t, err := s.resolveThread(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.msgs.ListByApplication(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, "list messages")
	}

	responses := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		resp := s.toResponse(&msgs[i], t)

		plaintext, err := s.cipher.Decrypt(msgs[i].Content)
		if err != nil {
			log.Printf("MessageService: Error decrypting message %s: %v", msgs[i].ID, err)
			plaintext = unreadableMessagePlaceholder
		}
		resp.Content = plaintext

		responses = append(responses, resp)
	}

	return responses, nil
}

// resolveThread loads the application's parties and verifies the caller is
// one of them.
func (s *messageService) resolveThread(ctx context.Context, applicationID, userID uuid.UUID) (*thread, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: application", ErrNotFound)
		}
		return nil, MapRepoError(err, "get application")
	}

	student, err := s.students.GetByID(ctx, app.StudentProfileID)
	if err != nil {
		return nil, MapRepoError(err, "get student profile")
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, MapRepoError(err, "get job")
	}
	recruiter, err := s.recruiters.GetByID(ctx, job.RecruiterProfileID)
	if err != nil {
		return nil, MapRepoError(err, "get recruiter profile")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "get user")
	}

	t := &thread{student: student, recruiter: recruiter}
	switch user.Role {
	case models.RoleStudent:
		if student.UserID != userID {
			return nil, fmt.Errorf("%w: not a party to this application", ErrForbidden)
		}
		t.senderRole = models.RoleStudent
	case models.RoleRecruiter:
		if recruiter.UserID != userID {
			return nil, fmt.Errorf("%w: not a party to this application", ErrForbidden)
		}
		t.senderRole = models.RoleRecruiter
	default:
		return nil, fmt.Errorf("%w: not a party to this application", ErrForbidden)
	}

	return t, nil
}

// toResponse maps everything but Content, which the caller sets from the
// plaintext it holds.
func (s *messageService) toResponse(msg *models.Message, t *thread) dto.MessageResponse {
	senderName := msg.SenderEmail
	if msg.SenderRole == models.RoleStudent && t.student != nil {
		senderName = profileDisplayName(t.student.FirstName, t.student.LastName, t.student.Email)
	} else if msg.SenderRole == models.RoleRecruiter && t.recruiter != nil {
		senderName = profileDisplayName(t.recruiter.FirstName, t.recruiter.LastName, t.recruiter.Email)
	}

	return dto.MessageResponse{
		ID:            msg.ID,
		ApplicationID: msg.ApplicationID,
		SenderEmail:   msg.SenderEmail,
		SenderRole:    msg.SenderRole,
		SenderName:    senderName,
		ReceiverEmail: msg.ReceiverEmail,
		ReceiverRole:  msg.ReceiverRole,
		SentAt:        msg.SentAt,
	}
}
