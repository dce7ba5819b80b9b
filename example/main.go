//go:build ordinalize

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caelunshun/ordinalize"
)

// Status of a job. A job only moves forward in the declaration order.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Event happened to a job.
type Event interface{ isEvent() }

type (
	Created struct {
		ID    int64
		Title string
	}
	Moved struct {
		ID int64
		To Status
	}
	Deleted int64
)

func (Created) isEvent() {}
func (Moved) isEvent()   {}
func (Deleted) isEvent() {}

var (
	StatusOrdinal = ordinalize.Ordinal[Status]()
	EventOrdinal  = ordinalize.Ordinal[Event]()
)

var statuses = []Status{StatusTodo, StatusDoing, StatusDone}

type moveRequest struct {
	From Status `json:"from"`
	To   Status `json:"to"`
}

type moveResponse struct {
	From    uint `json:"from"`
	To      uint `json:"to"`
	Allowed bool `json:"allowed"`
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// POST /moves checks whether a job can move between statuses.
	e.POST("/moves", func(c echo.Context) error {
		var req moveRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if !slices.Contains(statuses, req.From) || !slices.Contains(statuses, req.To) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}

		from, to := StatusOrdinal(req.From), StatusOrdinal(req.To)
		return c.JSON(http.StatusOK, moveResponse{From: from, To: to, Allowed: from < to})
	})

	return e
}

func post(e *echo.Echo, path, body string) string {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return fmt.Sprintf("%d %s", rec.Code, strings.TrimSpace(rec.Body.String()))
}

func main() {
	e := newServer()

	// Output: 200 {"from":0,"to":2,"allowed":true}
	fmt.Println(post(e, "/moves", `{"from":"todo","to":"done"}`))

	// Output: 200 {"from":2,"to":1,"allowed":false}
	fmt.Println(post(e, "/moves", `{"from":"done","to":"doing"}`))

	// Output: 400 {"message":"unknown status"}
	fmt.Println(post(e, "/moves", `{"from":"todo","to":"lost"}`))

	// Output: 0 1 2
	fmt.Println(EventOrdinal(Created{ID: 1, Title: "write"}), EventOrdinal(Moved{ID: 1, To: StatusDone}), EventOrdinal(Deleted(1)))
}
