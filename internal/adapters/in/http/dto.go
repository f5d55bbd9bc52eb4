package http

import (
	"time"

	"production/internal/core/application/usecases/queries"
	"production/internal/core/ports"
)

// Wire names follow the vocabulary the floor already uses: the external
// order number is "orderId", the tracking number is "resi".

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccountID   string `json:"accountId"`
	Login       string `json:"login"`
	Role        string `json:"role"`
	RoleLabel   string `json:"roleLabel"`
	DisplayName string `json:"displayName"`
}

type registerAccountRequest struct {
	Login       string `json:"login"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

type profileResponse struct {
	AccountID   string `json:"accountId"`
	Login       string `json:"login"`
	Role        string `json:"role"`
	RoleLabel   string `json:"roleLabel"`
	DisplayName string `json:"displayName"`
}

type createOrderRequest struct {
	ExternalID  string `json:"orderId"`
	ProductID   string `json:"productId"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	BackName    string `json:"backName"`
	BackNumber  string `json:"backNumber"`
	Marketplace string `json:"marketplace"`
	Expedition  string `json:"expedition"`
	OrderDate   string `json:"orderDate"`
	OrderType   string `json:"type"`
}

type stageRequest struct {
	Department string `json:"department"`
}

type returnOrderRequest struct {
	ReturnDate string `json:"returnDate"`
}

type setStatusRequest struct {
	Status     string `json:"status"`
	ReturnDate string `json:"returnDate"`
}

type productRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type lastViewRequest struct {
	View string `json:"view"`
}

type lastViewResponse struct {
	View string `json:"view"`
}

type historyEntryResponse struct {
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	UpdatedBy   string `json:"updatedBy"`
	UpdatedAt   string `json:"updatedAt"`
}

type orderResponse struct {
	ID             string                 `json:"id"`
	ExternalID     string                 `json:"orderId"`
	ProductID      string                 `json:"productId"`
	ProductName    string                 `json:"product"`
	Size           string                 `json:"size"`
	Quantity       int                    `json:"quantity"`
	BackName       string                 `json:"backName"`
	BackNumber     string                 `json:"backNumber"`
	Marketplace    string                 `json:"marketplace"`
	Expedition     string                 `json:"expedition"`
	TrackingNumber string                 `json:"resi"`
	OrderDate      string                 `json:"orderDate"`
	Type           string                 `json:"type"`
	TypeLabel      string                 `json:"typeLabel"`
	Status         string                 `json:"status"`
	StatusLabel    string                 `json:"statusLabel"`
	ReturnDate     string                 `json:"returnDate,omitempty"`
	IsOverdue      bool                   `json:"isOverdue"`
	History        []historyEntryResponse `json:"history"`
}

type departmentQueueResponse struct {
	Pending    []orderResponse `json:"pending"`
	InProgress []orderResponse `json:"inProgress"`
}

type departmentLoadResponse struct {
	Department string `json:"department"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"inProgress"`
}

type dashboardResponse struct {
	TotalOrders  int                      `json:"totalOrders"`
	InProduction int                      `json:"inProduction"`
	ReadyToShip  int                      `json:"readyToShip"`
	Completed    int                      `json:"completed"`
	Canceled     int                      `json:"canceled"`
	Returned     int                      `json:"returned"`
	Overdue      int                      `json:"overdue"`
	Departments  []departmentLoadResponse `json:"departments"`
}

type marketplaceSummaryResponse struct {
	Marketplace string `json:"marketplace"`
	Orders      int    `json:"orders"`
	Pieces      int    `json:"pieces"`
	Done        int    `json:"done"`
	Pending     int    `json:"pending"`
}

type reportResponse struct {
	From             string                       `json:"from"`
	To               string                       `json:"to"`
	TotalOrders      int                          `json:"totalOrders"`
	TotalPieces      int                          `json:"totalPieces"`
	ProductionPieces int                          `json:"productionPieces"`
	StockPieces      int                          `json:"stockPieces"`
	Completed        int                          `json:"completed"`
	Canceled         int                          `json:"canceled"`
	Returned         int                          `json:"returned"`
	Marketplaces     []marketplaceSummaryResponse `json:"marketplaces"`
}

type orderDraftDTO struct {
	ExternalID  string `json:"orderId"`
	ProductID   string `json:"productId"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	BackName    string `json:"backName"`
	BackNumber  string `json:"backNumber"`
	Marketplace string `json:"marketplace"`
	Expedition  string `json:"expedition"`
	OrderDate   string `json:"orderDate"`
	OrderType   string `json:"type"`
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	history := make([]historyEntryResponse, 0, len(o.History))
	for _, e := range o.History {
		history = append(history, historyEntryResponse{
			Status:      e.Status,
			StatusLabel: e.StatusLabel,
			UpdatedBy:   e.UpdatedBy,
			UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	return orderResponse{
		ID:             o.ID.String(),
		ExternalID:     o.ExternalID,
		ProductID:      o.ProductID,
		ProductName:    o.ProductName,
		Size:           o.Size,
		Quantity:       o.Quantity,
		BackName:       o.BackName,
		BackNumber:     o.BackNumber,
		Marketplace:    o.Marketplace,
		Expedition:     o.Expedition,
		TrackingNumber: o.TrackingNumber,
		OrderDate:      o.OrderDate,
		Type:           o.Type,
		TypeLabel:      o.TypeLabel,
		Status:         o.Status,
		StatusLabel:    o.StatusLabel,
		ReturnDate:     o.ReturnDate,
		IsOverdue:      o.IsOverdue,
		History:        history,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toDraftDTO(d ports.OrderDraft) orderDraftDTO {
	return orderDraftDTO(d)
}

func fromDraftDTO(d orderDraftDTO) ports.OrderDraft {
	return ports.OrderDraft(d)
}
