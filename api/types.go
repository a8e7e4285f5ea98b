// Package api contains the request and response types exposed by the HTTP layer.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
	RequestId        string            `json:"request_id,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateThemeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ThemeResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type ThemeListResponse struct {
	Themes []ThemeResponse `json:"themes"`
}

type CreateDomeRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,min=1"`
}

type DomeResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

type DomeListResponse struct {
	Domes []DomeResponse `json:"domes"`
}

type CreateShowRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	ThemeIds    []int  `json:"theme_ids" validate:"omitempty,dive,min=1"`
}

// ShowSummary is the list projection of a show. The detail projection
// carries full theme objects instead of bare names.
type ShowSummary struct {
	Id         int      `json:"id"`
	Title      string   `json:"title"`
	ThemeNames []string `json:"themes"`
	PosterUrl  string   `json:"poster_url,omitempty"`
}

type ShowDetailResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Themes      []ThemeResponse `json:"themes"`
	PosterUrl   string          `json:"poster_url,omitempty"`
}

type ShowListResponse struct {
	Shows []ShowSummary `json:"shows"`
}

type UploadShowImageResponse struct {
	Id        int    `json:"id"`
	PosterUrl string `json:"poster_url"`
}

type CreateShowSessionRequest struct {
	ShowId   int       `json:"show_id" validate:"required,min=1"`
	DomeId   int       `json:"dome_id" validate:"required,min=1"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
}

type ShowSessionSummary struct {
	Id             int       `json:"id"`
	ShowId         int       `json:"show_id"`
	ShowTitle      string    `json:"show_title"`
	DomeName       string    `json:"dome_name"`
	StartsAt       time.Time `json:"starts_at"`
	AvailableSeats int       `json:"available_seats"`
}

type ShowSessionListResponse struct {
	Sessions []ShowSessionSummary `json:"sessions"`
}

type TakenSeat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type ShowSessionDetailResponse struct {
	Id         int          `json:"id"`
	ShowTitle  string       `json:"show_title"`
	Dome       DomeResponse `json:"dome"`
	StartsAt   time.Time    `json:"starts_at"`
	TakenSeats []TakenSeat  `json:"taken_seats"`
}

type TicketRequest struct {
	SessionId int `json:"session_id" validate:"required,min=1"`
	Row       int `json:"row" validate:"required,min=1"`
	Seat      int `json:"seat" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id        int       `json:"id"`
	SessionId int       `json:"session_id"`
	ShowTitle string    `json:"show_title"`
	StartsAt  time.Time `json:"starts_at"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     Metadata              `json:"metadata"`
}
