package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/lib/api/response"
	"eventix/internal/lib/logger/sl"
	"eventix/internal/storage"
)

type TicketTypeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Capacity int             `json:"capacity" validate:"required,min=1"`
}

type EventRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	EventDate   time.Time           `json:"event_date" validate:"required"`
	Location    string              `json:"location"`
	Category    string              `json:"category"`
	TicketTypes []TicketTypeRequest `json:"ticket_types" validate:"required,min=1,dive"`
}

type EventResponse struct {
	response.Response
	EventID int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(organizerID int, event storage.NewEvent) (int, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			log.Error("no claims in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))

			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("name", req.Name))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		types := make([]storage.TicketTypeSpec, 0, len(req.TicketTypes))
		for _, tt := range req.TicketTypes {
			if tt.Price.IsNegative() {
				log.Error("negative ticket type price", slog.String("name", tt.Name))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket type price must not be negative"))

				return
			}

			types = append(types, storage.TicketTypeSpec{
				Name:     tt.Name,
				Price:    tt.Price,
				Capacity: tt.Capacity,
			})
		}

		eventID, err := creator.CreateEvent(claims.UserID, storage.NewEvent{
			Name:        req.Name,
			Description: req.Description,
			EventDate:   req.EventDate,
			Location:    req.Location,
			Category:    req.Category,
			TicketTypes: types,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.Int("id", eventID), slog.Int("organizer_id", claims.UserID))

		responseCreated(w, r, eventID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, eventID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
	})
}
