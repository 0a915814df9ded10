package roomselection

import (
	"context"
	"net/http"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/pkg/errors"
)

const (
	adminPath   = "/admin/room-selection/sessions"
	studentPath = "/student/room-selection/sessions"
)

type Service struct {
	sessions apiclient.Resource[Session]
	student  apiclient.Resource[Session]
}

func NewService(api apiclient.Requester) *Service {
	return &Service{
		sessions: apiclient.NewResource[Session](api, adminPath),
		student:  apiclient.NewResource[Session](api, studentPath),
	}
}

func (s *Service) GetAll(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[Session], error) {
	page, err := s.sessions.ListNested(ctx, params, "sessions")
	return page, errors.Wrap(err, "[Service.GetAll] room selection")
}

func (s *Service) GetByID(ctx context.Context, id string) (*Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	return sess, errors.Wrap(err, "[Service.GetByID] room selection")
}

func (s *Service) Create(ctx context.Context, in Input) (*Session, error) {
	sess, err := s.sessions.Create(ctx, in)
	return sess, errors.Wrap(err, "[Service.Create] room selection")
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Session, error) {
	sess, err := s.sessions.Update(ctx, id, in)
	return sess, errors.Wrap(err, "[Service.Update] room selection")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.sessions.Delete(ctx, id), "[Service.Delete] room selection")
}

func (s *Service) Open(ctx context.Context, id string) (*Session, error) {
	sess, err := s.sessions.Action(ctx, http.MethodPatch, id, "open", nil)
	return sess, errors.Wrap(err, "[Service.Open]")
}

func (s *Service) Close(ctx context.Context, id string) (*Session, error) {
	sess, err := s.sessions.Action(ctx, http.MethodPatch, id, "close", nil)
	return sess, errors.Wrap(err, "[Service.Close]")
}

// Publish makes the allocations of a closed session visible to students.
func (s *Service) Publish(ctx context.Context, id string) (*Session, error) {
	sess, err := s.sessions.Action(ctx, http.MethodPatch, id, "publish", nil)
	return sess, errors.Wrap(err, "[Service.Publish]")
}

// AvailableRooms lists rooms with a free bed in an open session.
func (s *Service) AvailableRooms(ctx context.Context, sessionID string) ([]hostels.Room, error) {
	var rooms []hostels.Room
	if err := s.student.API().Do(ctx, http.MethodGet, s.student.Path(sessionID, "rooms"), apiclient.RequestOptions{}, &rooms); err != nil {
		return nil, errors.Wrap(err, "[Service.AvailableRooms]")
	}
	return rooms, nil
}

// SelectRoom claims a bed for the signed in student.
func (s *Service) SelectRoom(ctx context.Context, sessionID, roomID string) (*Selection, error) {
	var sel Selection
	opts := apiclient.RequestOptions{Body: map[string]string{"room_id": roomID}}
	if err := s.student.API().Do(ctx, http.MethodPost, s.student.Path(sessionID, "select"), opts, &sel); err != nil {
		return nil, errors.Wrap(err, "[Service.SelectRoom]")
	}
	return &sel, nil
}
