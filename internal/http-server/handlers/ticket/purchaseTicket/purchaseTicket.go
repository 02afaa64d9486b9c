package purchaseTicket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/lib/api/response"
	"eventix/internal/lib/logger/sl"
	"eventix/internal/storage"
)

type PurchaseRequest struct {
	TicketTypeID int `json:"ticket_type_id" validate:"required"`
}

type TicketInfo struct {
	ID     int    `json:"id"`
	QRCode string `json:"qr_code"`
}

type PurchaseResponse struct {
	response.Response
	Ticket TicketInfo `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketPurchaser
type TicketPurchaser interface {
	PurchaseTicket(ticketTypeID, buyerID int) (*storage.Purchase, error)
}

// New sells a ticket to the authenticated buyer. The purchaser must
// create the ticket and its transaction atomically; this handler only
// maps its outcome onto the HTTP surface. Repeating the same request
// buys another ticket: there is no duplicate-submission guard.
func New(log *slog.Logger, purchaser TicketPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.purchaseTicket.New"

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

		var req PurchaseRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		log = log.With(
			slog.Int("ticket_type_id", req.TicketTypeID),
			slog.Int("buyer_id", claims.UserID),
		)

		purchase, err := purchaser.PurchaseTicket(req.TicketTypeID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTicketTypeNotFound):
				log.Warn("ticket type not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket type not found"))
			case errors.Is(err, storage.ErrCapacityExhausted):
				log.Warn("ticket type sold out")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("ticket type is sold out"))
			default:
				log.Error("failed to purchase ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to purchase ticket"))
			}

			return
		}

		log.Info("ticket purchased",
			slog.Int("ticket_id", purchase.Ticket.ID),
			slog.String("gross_amount", purchase.Transaction.GrossAmount.StringFixed(2)),
		)

		responseCreated(w, r, purchase)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, purchase *storage.Purchase) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, PurchaseResponse{
		Response: response.Response{
			Status:  response.StatusOK,
			Message: "ticket purchased successfully",
		},
		Ticket: TicketInfo{
			ID:     purchase.Ticket.ID,
			QRCode: purchase.Ticket.QRCode,
		},
	})
}
