// Package handler contains the HTTP handlers and their wire DTOs.
package handler

import (
	"time"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/domain/service"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the wire form of a user account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse is the wire form of an issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// PlantResponse is the wire form of a catalog entry.
type PlantResponse struct {
	ID           uuid.UUID  `json:"id"`
	Species      string     `json:"species"`
	CommonName   string     `json:"commonName"`
	Description  string     `json:"description,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Status       string     `json:"status"`
	AdoptionCost *int       `json:"adoptionCost,omitempty"`
	AdopterID    *uuid.UUID `json:"adopterId,omitempty"`
	AdoptedAt    *time.Time `json:"adoptedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// AdoptionResponse reports an adoption and the adopter's new balance.
type AdoptionResponse struct {
	Plant   PlantResponse `json:"plant"`
	Balance int           `json:"balance"`
}

// WateringPlantSnapshot is the denormalized plant carried by a work item.
type WateringPlantSnapshot struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// WateringReportResponse is the wire form of a completion report.
type WateringReportResponse struct {
	Condition         string  `json:"condition"`
	WaterAmountLiters float64 `json:"waterAmountLiters"`
	DurationMinutes   int     `json:"durationMinutes"`
	Notes             string  `json:"notes,omitempty"`
	PhotoURL          string  `json:"photoUrl"`
}

// WateringResponse is the wire form of a watering request.
type WateringResponse struct {
	ID           uuid.UUID               `json:"id"`
	PlantID      uuid.UUID               `json:"plantId"`
	RequesterID  uuid.UUID               `json:"requesterId"`
	TechnicianID *uuid.UUID              `json:"technicianId,omitempty"`
	Urgency      string                  `json:"urgency"`
	Status       string                  `json:"status"`
	Notes        string                  `json:"notes,omitempty"`
	Plant        WateringPlantSnapshot   `json:"plant"`
	Report       *WateringReportResponse `json:"report,omitempty"`
	CompletedAt  *time.Time              `json:"completedAt,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// WateringCreatedResponse reports a new request and the requester's balance.
type WateringCreatedResponse struct {
	Request WateringResponse `json:"request"`
	Balance int              `json:"balance"`
}

// PackageResponse is the wire form of a purchasable credit package.
type PackageResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Credits       int              `json:"credits"`
	Bonus         int              `json:"bonus"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Popular       bool             `json:"popular"`
}

// PaymentPackageResponse is the package snapshot carried by a payment.
type PaymentPackageResponse struct {
	PackageID string          `json:"packageId"`
	Name      string          `json:"name"`
	Credits   int             `json:"credits"`
	Bonus     int             `json:"bonus"`
	Price     decimal.Decimal `json:"price"`
}

// PaymentResponse is the wire form of a payment.
type PaymentResponse struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"userId"`
	Package   PaymentPackageResponse `json:"package"`
	ProofURL  string                 `json:"proofUrl,omitempty"`
	Status    string                 `json:"status"`
	DecidedBy *uuid.UUID             `json:"decidedBy,omitempty"`
	DecidedAt *time.Time             `json:"decidedAt,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// PaymentDecisionResponse reports a decision; balance is the buyer's new
// balance and only set on approvals.
type PaymentDecisionResponse struct {
	Payment PaymentResponse `json:"payment"`
	Balance int             `json:"balance,omitempty"`
}

// SettingsResponse is the wire form of the pricing singleton.
type SettingsResponse struct {
	AdoptionPrice  int               `json:"adoptionPrice"`
	WaterPrice     int               `json:"waterPrice"`
	WelcomeCredits int               `json:"welcomeCredits"`
	Currency       string            `json:"currency"`
	PaymentAccount string            `json:"paymentAccount,omitempty"`
	PaymentQRURL   string            `json:"paymentQrUrl,omitempty"`
	Packages       []PackageResponse `json:"packages"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		Credits:   user.Credits,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}

	return out
}

func toTokenResponse(tokens *service.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}
}

func toAuthResponse(result *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		User:   toUserResponse(result.User),
		Tokens: toTokenResponse(result.Tokens),
	}
}

func toPlantResponse(plant *entity.Plant) PlantResponse {
	return PlantResponse{
		ID:           plant.ID,
		Species:      plant.Species,
		CommonName:   plant.CommonName,
		Description:  plant.Description,
		Latitude:     plant.Latitude,
		Longitude:    plant.Longitude,
		ImageURL:     plant.ImageURL,
		Status:       string(plant.Status),
		AdoptionCost: plant.AdoptionCost,
		AdopterID:    plant.AdopterID,
		AdoptedAt:    plant.AdoptedAt,
		CreatedAt:    plant.CreatedAt,
	}
}

func toPlantResponses(plants []*entity.Plant) []PlantResponse {
	out := make([]PlantResponse, len(plants))
	for i, p := range plants {
		out[i] = toPlantResponse(p)
	}

	return out
}

func toWateringResponse(request *entity.WateringRequest) WateringResponse {
	resp := WateringResponse{
		ID:           request.ID,
		PlantID:      request.PlantID,
		RequesterID:  request.RequesterID,
		TechnicianID: request.TechnicianID,
		Urgency:      string(request.Urgency),
		Status:       string(request.Status),
		Notes:        request.Notes,
		Plant: WateringPlantSnapshot{
			Name:      request.PlantName,
			Latitude:  request.PlantLatitude,
			Longitude: request.PlantLongitude,
			ImageURL:  request.PlantImageURL,
		},
		CompletedAt: request.CompletedAt,
		CreatedAt:   request.CreatedAt,
	}

	if request.Report != nil {
		resp.Report = &WateringReportResponse{
			Condition:         request.Report.Condition,
			WaterAmountLiters: request.Report.WaterAmountLiters,
			DurationMinutes:   request.Report.DurationMinutes,
			Notes:             request.Report.Notes,
			PhotoURL:          request.Report.PhotoURL,
		}
	}

	return resp
}

func toWateringResponses(requests []*entity.WateringRequest) []WateringResponse {
	out := make([]WateringResponse, len(requests))
	for i, r := range requests {
		out[i] = toWateringResponse(r)
	}

	return out
}

func toPaymentResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     payment.ID,
		UserID: payment.UserID,
		Package: PaymentPackageResponse{
			PackageID: payment.Package.PackageID,
			Name:      payment.Package.Name,
			Credits:   payment.Package.Credits,
			Bonus:     payment.Package.Bonus,
			Price:     payment.Package.Price,
		},
		ProofURL:  payment.ProofURL,
		Status:    string(payment.Status),
		DecidedBy: payment.DecidedBy,
		DecidedAt: payment.DecidedAt,
		CreatedAt: payment.CreatedAt,
	}
}

func toPaymentResponses(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}

	return out
}

func toSettingsResponse(settings *entity.Settings) SettingsResponse {
	packages := make([]PackageResponse, len(settings.Packages))
	for i, pkg := range settings.Packages {
		packages[i] = PackageResponse{
			ID:            pkg.ID,
			Name:          pkg.Name,
			Credits:       pkg.Credits,
			Bonus:         pkg.Bonus,
			Price:         pkg.Price,
			OriginalPrice: pkg.OriginalPrice,
			Popular:       pkg.Popular,
		}
	}

	return SettingsResponse{
		AdoptionPrice:  settings.AdoptionPrice,
		WaterPrice:     settings.WaterPrice,
		WelcomeCredits: settings.WelcomeCredits,
		Currency:       settings.Currency,
		PaymentAccount: settings.PaymentAccount,
		PaymentQRURL:   settings.PaymentQRURL,
		Packages:       packages,
		UpdatedAt:      settings.UpdatedAt,
	}
}
