package pagination

import "github.com/gofiber/fiber/v2"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a clamped window over an ordered listing
type Page struct {
	Number int
	Limit  int
}

// New clamps number to >= 1 and limit to 1..MaxLimit (DefaultLimit when unset)
func New(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// FromQuery reads ?page= and ?limit=; malformed values fall back to the defaults
func FromQuery(c *fiber.Ctx) Page {
	return New(c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit))
}

// Offset is the number of rows before the page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Meta describes where a page sits in the whole listing
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Meta computes the listing metadata for total rows
func (p Page) Meta(total int64) *Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &Meta{
		Page:       p.Number,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Number < totalPages,
		HasPrev:    p.Number > 1,
	}
}

// Response is a page of items with its metadata
type Response struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta"`
}

func NewResponse(data interface{}, p Page, total int64) *Response {
	return &Response{Data: data, Meta: p.Meta(total)}
}
