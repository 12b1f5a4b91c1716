package dto

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-events-gateway/internal/domain"
)

// EventView is an event record with the capacity badges the listing shows.
type EventView struct {
	domain.Event
	SeatsLeft    int  `json:"seatsLeft"`
	FewSeatsLeft bool `json:"fewSeatsLeft"`
}

// NewEventView derives the badge fields for one event.
func NewEventView(e domain.Event) EventView {
	return EventView{
		Event:        e,
		SeatsLeft:    e.SeatsLeft(),
		FewSeatsLeft: e.FewSeatsLeft(),
	}
}

// NewEventViews maps a filtered slice into views.
func NewEventViews(events []domain.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e))
	}
	return views
}

// EventFilterFromQuery reads the browsing filter from query parameters.
func EventFilterFromQuery(c *fiber.Ctx) domain.EventFilter {
	return domain.EventFilter{
		SearchTerm: c.Query("q"),
		Category:   c.Query("category"),
		Campus:     c.Query("campus"),
		Date:       c.Query("date"),
		Tab:        domain.ParseTab(c.Query("tab")),
	}
}
