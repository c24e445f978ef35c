package services

import (
	"context"
	"strings"

	"github.com/yigit/tpoportal/internal/app/models"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
	"github.com/yigit/tpoportal/internal/pkg/eventstatus"
	"github.com/yigit/tpoportal/internal/pkg/grouping"
	"github.com/yigit/tpoportal/internal/pkg/helpers"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

// Event errors
var (
	ErrEventDateOrder      = apperrors.NewValidationError("endDate must not be before startDate", "endDate")
	ErrInvalidStatusFilter = apperrors.NewValidationError("status must be one of: upcoming, ongoing, past", "status")
)

// sectionOrder is the display order of the grouped view
var sectionOrder = []eventstatus.Status{eventstatus.Upcoming, eventstatus.Ongoing, eventstatus.Past}

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error)
	ListEvents(ctx context.Context, status string) ([]dto.EventResponse, error)
	GroupedEvents(ctx context.Context) ([]dto.EventSection, error)
	UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	store EventStore
	clock eventstatus.Clock
}

// NewEventService creates a new event service. A nil clock uses the system time.
func NewEventService(store EventStore, clock eventstatus.Clock) EventService {
	if clock == nil {
		clock = eventstatus.SystemClock
	}
	return &eventServiceImpl{store: store, clock: clock}
}

func checkDateOrder(e *models.Event) error {
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return ErrEventDateOrder
	}
	return nil
}

func (s *eventServiceImpl) respond(e *models.Event) *dto.EventResponse {
	resp := dto.NewEventResponse(e, s.clock())
	return &resp
}

// CreateEvent validates the date range and stores the event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (*dto.EventResponse, error) {
	if err := checkDateOrder(event); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, event); err != nil {
		return nil, err
	}
	logger.Info().Int64("eventID", event.ID).Str("company", event.Company).Msg("Event created")
	return s.respond(event), nil
}

// GetEvent retrieves an event with its current status
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(e), nil
}

// ParseStatusFilter returns "" for no filter ("" or "all")
func ParseStatusFilter(value string) (eventstatus.Status, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "all" {
		return "", nil
	}
	st := eventstatus.Status(v)
	if !st.Valid() {
		return "", ErrInvalidStatusFilter
	}
	return st, nil
}

func (s *eventServiceImpl) classified(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.NewEventResponse(e, now))
	}
	return out, nil
}

// ListEvents lists events, optionally only those with the given status.
// Every event is classified against the same instant.
func (s *eventServiceImpl) ListEvents(ctx context.Context, status string) ([]dto.EventResponse, error) {
	want, err := ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	all, err := s.classified(ctx)
	if err != nil {
		return nil, err
	}
	if want == "" {
		return all, nil
	}
	filtered := make([]dto.EventResponse, 0, len(all))
	for _, e := range all {
		if e.Status == want {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

var eventKeys = []grouping.KeyFunc[dto.EventResponse]{
	func(e dto.EventResponse) string { return grouping.OrString(e.Company, grouping.UnknownCompany) },
	func(e dto.EventResponse) string { return grouping.OrString(helpers.YearOf(e.StartDate), grouping.Unknown) },
}

// GroupedEvents returns one section per status, each grouped by company then year
func (s *eventServiceImpl) GroupedEvents(ctx context.Context) ([]dto.EventSection, error) {
	all, err := s.classified(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[eventstatus.Status][]dto.EventResponse, len(sectionOrder))
	for _, e := range all {
		byStatus[e.Status] = append(byStatus[e.Status], e)
	}

	sections := make([]dto.EventSection, 0, len(sectionOrder))
	for _, st := range sectionOrder {
		items := byStatus[st]
		companies := grouping.Nest(items, eventKeys...)
		if companies == nil {
			companies = []grouping.Bucket[dto.EventResponse]{}
		}
		for i := range companies {
			grouping.SortByKeyDesc(companies[i].Groups)
		}
		sections = append(sections, dto.EventSection{
			Status:    st,
			Count:     len(items),
			Companies: companies,
		})
	}
	return sections, nil
}

// UpdateEvent checks the date range of the merged event before writing
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*dto.EventResponse, error) {
	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		merged := *current
		patch.Apply(&merged)
		if err := checkDateOrder(&merged); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.respond(updated), nil
}

// DeleteEvent deletes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("eventID", id).Msg("Event deleted")
	return nil
}
