package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response wrapper used by every endpoint.
// Error responses carry the same shape without Data.
type Envelope struct {
	StatusCode int         `json:"status_code"`
	Detail     string      `json:"detail"`
	Data       interface{} `json:"data,omitempty"`
}

// Page holds the optional pagination block appended to paginated success
// envelopes. No current endpoint paginates; the block is kept for parity
// with the list surface.
type Page struct {
	PreviousPage *int  `json:"previous_page"`
	CurrentPage  *int  `json:"current_page"`
	NextPage     *int  `json:"next_page"`
	TotalPages   *int  `json:"total_pages"`
	Total        *int64 `json:"total"`
}

// SuccessResponse sends the standard success envelope.
func SuccessResponse(c *fiber.Ctx, status int, detail string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		StatusCode: status,
		Detail:     detail,
		Data:       data,
	})
}

// PaginatedResponse sends a success envelope with the pagination block.
func PaginatedResponse(c *fiber.Ctx, status int, detail string, data interface{}, page Page) error {
	return c.Status(status).JSON(struct {
		Envelope
		Page
	}{
		Envelope: Envelope{StatusCode: status, Detail: detail, Data: data},
		Page:     page,
	})
}

// ErrorResponse sends the standard error envelope.
func ErrorResponse(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(Envelope{
		StatusCode: status,
		Detail:     detail,
	})
}
