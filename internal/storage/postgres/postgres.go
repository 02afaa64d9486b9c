package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventix/internal/config"
	"eventix/internal/lib/random"
	"eventix/internal/models"
	"eventix/internal/pricing"
	"eventix/internal/storage"
)

type Storage struct {
	DB *sql.DB

	enforceCapacity bool
}

func InitDB(dbCfg *config.Database, ticketsCfg *config.Tickets) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db, enforceCapacity: ticketsCfg.EnforceCapacity}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveUser(user storage.NewUser) (int, error) {
	query := `
		INSERT INTO users (email, password_hash, role, first_name, last_name, phone_number, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		user.Email,
		user.PasswordHash,
		models.RoleEndUser,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.DateOfBirth,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, role, commission_rate, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CommissionRate,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, email, role, created_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// CreateEvent persists an event and all of its ticket types in one
// transaction. Either every row lands or none do.
func (s *Storage) CreateEvent(organizerID int, event storage.NewEvent) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `
		INSERT INTO events (name, description, event_date, location, category, organizer_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var eventID int
	err = tx.QueryRow(eventQuery,
		event.Name,
		event.Description,
		event.EventDate,
		event.Location,
		event.Category,
		organizerID,
		models.EventStatusScheduled,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	typeQuery := `
		INSERT INTO ticket_types (name, price, capacity, event_id)
		VALUES ($1, $2, $3, $4)`

	for _, tt := range event.TicketTypes {
		_, err = tx.Exec(typeQuery, tt.Name, tt.Price, tt.Capacity, eventID)
		if err != nil {
			return 0, fmt.Errorf("failed to create ticket type: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event: %w", err)
	}

	return eventID, nil
}

func (s *Storage) AllEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, description, event_date, location, category, organizer_id, status
		FROM events
		WHERE status = 'scheduled'
		ORDER BY event_date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.EventDate,
			&event.Location,
			&event.Category,
			&event.OrganizerID,
			&event.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) EventDetail(id int) (*storage.EventDetail, error) {
	eventQuery := `
		SELECT e.id, e.name, e.description, e.event_date, e.location, e.category,
		       e.organizer_id, e.status, u.email, u.commission_rate
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1`

	var detail storage.EventDetail
	err := s.DB.QueryRow(eventQuery, id).Scan(
		&detail.Event.ID,
		&detail.Event.Name,
		&detail.Event.Description,
		&detail.Event.EventDate,
		&detail.Event.Location,
		&detail.Event.Category,
		&detail.Event.OrganizerID,
		&detail.Event.Status,
		&detail.OrganizerEmail,
		&detail.CommissionRate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	typesQuery := `
		SELECT id, name, price, capacity, event_id
		FROM ticket_types
		WHERE event_id = $1
		ORDER BY price ASC, id ASC`

	rows, err := s.DB.Query(typesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tt models.TicketType
		err = rows.Scan(
			&tt.ID,
			&tt.Name,
			&tt.Price,
			&tt.Capacity,
			&tt.EventID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		detail.TicketTypes = append(detail.TicketTypes, tt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket types: %w", err)
	}

	return &detail, nil
}

// PurchaseTicket creates a ticket and its financial transaction
// atomically. The organizer's commission rate is read inside the same
// transaction and stored on the transaction row as a snapshot, so later
// rate changes never touch past purchases. Each call creates a fresh
// ticket; duplicate submissions are not deduplicated here.
func (s *Storage) PurchaseTicket(ticketTypeID, buyerID int) (*storage.Purchase, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	resolveQuery := `
		SELECT tt.price, tt.capacity, tt.event_id, e.organizer_id, u.commission_rate
		FROM ticket_types tt
		JOIN events e ON e.id = tt.event_id
		JOIN users u ON u.id = e.organizer_id
		WHERE tt.id = $1`

	var p storage.Purchase
	var capacity int
	err = tx.QueryRow(resolveQuery, ticketTypeID).Scan(
		&p.Transaction.NetAmount,
		&capacity,
		&p.Ticket.EventID,
		&p.Transaction.OrganizerID,
		&p.Transaction.CommissionRate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to resolve ticket type: %w", err)
	}

	if s.enforceCapacity {
		var sold int
		countQuery := `
			SELECT COUNT(*)
			FROM tickets
			WHERE ticket_type_id = $1`

		err = tx.QueryRow(countQuery, ticketTypeID).Scan(&sold)
		if err != nil {
			return nil, fmt.Errorf("failed to count sold tickets: %w", err)
		}

		if sold >= capacity {
			return nil, storage.ErrCapacityExhausted
		}
	}

	qrCode, err := random.QRCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	quote := pricing.NewQuote(p.Transaction.NetAmount, p.Transaction.CommissionRate)
	p.Transaction.NetAmount = quote.Net
	p.Transaction.CommissionAmount = quote.ServiceFee
	p.Transaction.GrossAmount = quote.Gross

	p.Ticket.QRCode = qrCode
	p.Ticket.UserID = buyerID
	p.Ticket.TicketTypeID = ticketTypeID

	ticketQuery := `
		INSERT INTO tickets (qr_code, user_id, event_id, ticket_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err = tx.QueryRow(ticketQuery, qrCode, buyerID, p.Ticket.EventID, ticketTypeID).
		Scan(&p.Ticket.ID, &p.Ticket.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	transactionQuery := `
		INSERT INTO transactions (ticket_id, organizer_id, gross_amount, commission_rate, commission_amount, net_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	p.Transaction.TicketID = p.Ticket.ID
	err = tx.QueryRow(transactionQuery,
		p.Ticket.ID,
		p.Transaction.OrganizerID,
		p.Transaction.GrossAmount,
		p.Transaction.CommissionRate,
		p.Transaction.CommissionAmount,
		p.Transaction.NetAmount,
	).Scan(&p.Transaction.ID, &p.Transaction.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	return &p, nil
}

// CompletePastEvents flips scheduled events whose date has passed to
// completed, hiding them from the catalog.
func (s *Storage) CompletePastEvents() (int64, error) {
	query := `
		UPDATE events
		SET status = 'completed'
		WHERE status = 'scheduled'
		AND event_date < NOW()`

	result, err := s.DB.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past events: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	return rowsAffected, nil
}
