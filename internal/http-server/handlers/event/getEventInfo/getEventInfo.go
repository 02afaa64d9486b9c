package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventix/internal/lib/api/response"
	"eventix/internal/lib/logger/sl"
	"eventix/internal/models"
	"eventix/internal/pricing"
	"eventix/internal/storage"
)

// PricedTicketType is a ticket type annotated with the buyer-facing
// price breakdown. Amounts are fixed to 2 decimal places.
type PricedTicketType struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Capacity   int    `json:"capacity"`
	ServiceFee string `json:"service_fee"`
	FinalPrice string `json:"final_price"`
}

type EventInfoResponse struct {
	response.Response
	Event          models.Event       `json:"event"`
	OrganizerEmail string             `json:"organizer_email"`
	TicketTypes    []PricedTicketType `json:"ticket_types"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	EventDetail(eventID int) (*storage.EventDetail, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		detail, err := getter.EventDetail(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Warn("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		priced := make([]PricedTicketType, 0, len(detail.TicketTypes))
		for _, tt := range detail.TicketTypes {
			quote := pricing.NewQuote(tt.Price, detail.CommissionRate)

			priced = append(priced, PricedTicketType{
				ID:         tt.ID,
				Name:       tt.Name,
				Price:      quote.Net.StringFixed(2),
				Capacity:   tt.Capacity,
				ServiceFee: quote.ServiceFee.StringFixed(2),
				FinalPrice: quote.Gross.StringFixed(2),
			})
		}

		log.Info("event info successfully received")

		responseOK(w, r, detail, priced)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, detail *storage.EventDetail, priced []PricedTicketType) {
	render.JSON(w, r, EventInfoResponse{
		Response:       response.OK(),
		Event:          detail.Event,
		OrganizerEmail: detail.OrganizerEmail,
		TicketTypes:    priced,
	})
}
