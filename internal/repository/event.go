package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const eventSelect = `
	SELECT e.id, e.annotation, e.description, e.title,
	       c.id, c.name,
	       u.id, u.name, u.email,
	       l.id, l.lat, l.lon,
	       e.event_date, e.created_on, e.published_on, e.paid,
	       e.participant_limit, e.request_moderation,
	       e.confirmed_requests, e.views, e.state
	FROM events e
	JOIN categories c ON c.id = e.category_id
	JOIN users u ON u.id = e.initiator_id
	JOIN locations l ON l.id = e.location_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Annotation, &e.Description, &e.Title,
		&e.Category.ID, &e.Category.Name,
		&e.Initiator.ID, &e.Initiator.Name, &e.Initiator.Email,
		&e.Location.ID, &e.Location.Lat, &e.Location.Lon,
		&e.EventDate, &e.CreatedOn, &e.PublishedOn, &e.Paid,
		&e.ParticipantLimit, &e.RequestModeration,
		&e.ConfirmedRequests, &e.Views, &e.State,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type EventRepository struct {
	executor
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{executor: newExecutor(db)}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, annotation, description, title, category_id, initiator_id,
			  	location_id, event_date, created_on, published_on, paid, participant_limit,
			  	request_moderation, confirmed_requests, views, state)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.exec(
		ctx, query,
		e.ID, e.Annotation, e.Description, e.Title, e.Category.ID, e.Initiator.ID,
		e.Location.ID, e.EventDate, e.CreatedOn, e.PublishedOn, e.Paid, e.ParticipantLimit,
		e.RequestModeration, e.ConfirmedRequests, e.Views, e.State,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.get(ctx, eventSelect+` WHERE e.id = $1`, id)
}

// GetByIDForUpdate locks the event row until the surrounding transaction ends,
// so capacity checks for one event are serialised.
func (r *EventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	if _, ok := txFromContext(ctx); !ok {
		return nil, errors.New("get event for update: no transaction in context")
	}
	return r.get(ctx, eventSelect+` WHERE e.id = $1 FOR UPDATE OF e`, id)
}

func (r *EventRepository) get(ctx context.Context, query string, id string) (*domain.Event, error) {
	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET annotation = $2, description = $3, title = $4, category_id = $5,
			      location_id = $6, event_date = $7, published_on = $8, paid = $9,
			      participant_limit = $10, request_moderation = $11, state = $12
			  WHERE id = $1`
	err := r.execOne(
		ctx, domain.ErrEventNotFound, query,
		e.ID, e.Annotation, e.Description, e.Title, e.Category.ID,
		e.Location.ID, e.EventDate, e.PublishedOn, e.Paid,
		e.ParticipantLimit, e.RequestModeration, e.State,
	)
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return fmt.Errorf("update event: %w", err)
	}
	return err
}

func (r *EventRepository) SetConfirmedRequests(ctx context.Context, eventID string, confirmed int) error {
	err := r.execOne(ctx, domain.ErrEventNotFound,
		`UPDATE events SET confirmed_requests = $2 WHERE id = $1`, eventID, confirmed)
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return fmt.Errorf("set confirmed requests: %w", err)
	}
	return err
}

// UpdateViews writes all counters in one statement.
func (r *EventRepository) UpdateViews(ctx context.Context, views map[string]int64) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	counts := make([]int64, 0, len(views))
	for id, v := range views {
		ids = append(ids, id)
		counts = append(counts, v)
	}

	query := `UPDATE events e
			  SET views = v.views
			  FROM unnest($1::uuid[], $2::bigint[]) AS v(id, views)
			  WHERE e.id = v.id`
	if _, err := r.exec(ctx, query, pq.Array(ids), pq.Array(counts)); err != nil {
		return fmt.Errorf("update views: %w", err)
	}

	return nil
}

func (r *EventRepository) ListByInitiator(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, error) {
	query := eventSelect + `
		WHERE e.initiator_id = $1
		ORDER BY e.created_on DESC, e.id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, userID, page.Limit(), page.Offset())
}

func (r *EventRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := eventSelect + `
		WHERE e.id = ANY($1::uuid[])
		ORDER BY e.event_date, e.id`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *EventRepository) ListPublishedIDs(ctx context.Context, page domain.Page) ([]string, error) {
	rows, err := r.query(ctx,
		`SELECT id FROM events WHERE state = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		domain.StatePublished, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("list published ids: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func (r *EventRepository) SearchAdmin(ctx context.Context, f domain.AdminEventFilter, page domain.Page) ([]*domain.Event, error) {
	var w where
	if len(f.Users) > 0 {
		w.add("e.initiator_id = ANY($%d::uuid[])", pq.Array(f.Users))
	}
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, s := range f.States {
			states[i] = string(s)
		}
		w.add("e.state = ANY($%d)", pq.Array(states))
	}
	if len(f.Categories) > 0 {
		w.add("e.category_id = ANY($%d::uuid[])", pq.Array(f.Categories))
	}
	if f.Start != nil {
		w.add("e.event_date >= $%d", *f.Start)
	}
	if f.End != nil {
		w.add("e.event_date <= $%d", *f.End)
	}

	query := eventSelect + w.sql() + " ORDER BY e.created_on, e.id" + w.page(page)
	return r.list(ctx, query, w.args...)
}

func (r *EventRepository) SearchPublic(ctx context.Context, f domain.PublicEventFilter, page domain.Page) ([]*domain.Event, error) {
	var w where
	w.add("e.state = $%d", domain.StatePublished)
	if f.Text != "" {
		w.add(`(e.annotation ILIKE $%[1]d ESCAPE '\' OR e.description ILIKE $%[1]d ESCAPE '\')`, containsPattern(f.Text))
	}
	if len(f.Categories) > 0 {
		w.add("e.category_id = ANY($%d::uuid[])", pq.Array(f.Categories))
	}
	if f.Paid != nil {
		w.add("e.paid = $%d", *f.Paid)
	}
	if f.Start != nil {
		w.add("e.event_date >= $%d", *f.Start)
	}
	if f.End != nil {
		w.add("e.event_date <= $%d", *f.End)
	}
	if f.OnlyAvailable {
		w.cond = append(w.cond, "(e.participant_limit = 0 OR e.confirmed_requests < e.participant_limit)")
	}

	order := " ORDER BY e.event_date, e.id"
	if f.Sort == domain.SortViews {
		order = " ORDER BY e.views DESC, e.id"
	}

	query := eventSelect + w.sql() + order + w.page(page)
	return r.list(ctx, query, w.args...)
}

func (r *EventRepository) ExistsByCategory(ctx context.Context, categoryID string) (bool, error) {
	row, err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE category_id = $1)`, categoryID)
	if err != nil {
		return false, fmt.Errorf("check category usage: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan category usage: %w", err)
	}

	return exists, nil
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching text literally anywhere.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// where collects AND-ed conditions with positional arguments.
type where struct {
	cond []string
	args []any
}

// add appends a condition; its %d verbs receive the placeholder number of arg.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.cond = append(w.cond, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) sql() string {
	if len(w.cond) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.cond, " AND ")
}

func (w *where) page(p domain.Page) string {
	w.args = append(w.args, p.Limit(), p.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}
