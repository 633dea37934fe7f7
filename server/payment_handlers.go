package server

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
)

// PaymentPageHandler creates a payment intent for an approved consultation
// and renders the checkout page around its client secret.
func (s *Server) PaymentPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("payment.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		intent, err := s.api.Authed(sess.BearerToken).CreatePaymentIntent(r.Context(), r.PathValue("connectionID"))
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("payment intent creation failed")
			redirectWithError(w, r, RouteDashboard, pageError(err))
			return
		}

		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
			"Intent":  intent,
			"Error":   r.URL.Query().Get("error"),
		})
	}
}

func (s *Server) PaymentConfirmHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ConfirmPayment(r.Context(), r.PathValue("intentID"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

// NegotiationsHandler lists fee negotiations awaiting the mentor's decision.
func (s *Server) NegotiationsHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("negotiations.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
		}

		negotiations, err := s.api.Authed(sess.BearerToken).Negotiations(r.Context())
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("negotiation list fetch failed")
			data["Error"] = pageError(err)
		}

		data["Negotiations"] = negotiations
		render(w, tmpl, data)
	}
}

// NegotiationRespondHandler records an accept, decline, or counter-offer.
func (s *Server) NegotiationRespondHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		counterCents, _ := strconv.ParseInt(r.FormValue("counter_cents"), 10, 64)
		form := forms.NegotiationResponse{
			Action:       r.FormValue("action"),
			CounterCents: counterCents,
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, RouteNegotiations, err.Error())
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).RespondNegotiation(r.Context(), r.PathValue("id"), form.Action, form.CounterCents)
		if err != nil {
			s.handleBackendError(w, r, err, RouteNegotiations)
			return
		}

		redirectSuccess(w, r, RouteNegotiations)
	}
}
