package pagination

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds the pagination and search parameters of a list call.
type Params struct {
	Page   int
	Limit  int
	Search string
}

// Normalized clamps the parameters into their valid ranges.
func (p Params) Normalized() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Query encodes the parameters as a request query string. An empty search is
// omitted entirely rather than sent as search=.
func (p Params) Query() url.Values {
	p = p.Normalized()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// Offset converts page/limit into a slice offset.
func (p Params) Offset() int {
	p = p.Normalized()
	return (p.Page - 1) * p.Limit
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	p = p.Normalized()
	return p.Offset()+p.Limit < total
}

// FromContext extracts pagination parameters from an echo request context.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return Params{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}.Normalized()
}

// Response wraps a paginated API response body.
type Response struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

func NewResponse(data interface{}, total int) *Response {
	return &Response{Data: data, Total: total}
}
