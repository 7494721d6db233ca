package http

import (
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned on any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
// Monetary amounts are decimal strings to avoid float rounding in transit.
type CreateOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	DeliveryFee     string `json:"delivery_fee"`
	Total           string `json:"total"`
	Notes           string `json:"notes"`
}

// ChangeOrderStatusRequest is the body for PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status int `json:"status"`
}

// UpdateOrderRequest is the body for PUT /api/v1/orders/:id.
// Absent fields stay untouched.
type UpdateOrderRequest struct {
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	DeliveryFee     *string `json:"delivery_fee,omitempty"`
	Total           *string `json:"total,omitempty"`
	Status          *int    `json:"status,omitempty"`
	AddedByID       *string `json:"added_by_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// OrderResponse is the representation of an order returned by write endpoints.
type OrderResponse struct {
	ID                    string    `json:"id"`
	CustomerName          string    `json:"customer_name"`
	CustomerPhone         string    `json:"customer_phone"`
	CustomerAddress       string    `json:"customer_address"`
	DeliveryFee           string    `json:"delivery_fee"`
	Total                 string    `json:"total"`
	Status                int       `json:"status"`
	AddedByID             *string   `json:"added_by_id,omitempty"`
	DeliveryByID          *string   `json:"delivery_by_id,omitempty"`
	ApplicationPercentage string    `json:"application_percentage"`
	ApplicationFee        string    `json:"application_fee"`
	Notes                 string    `json:"notes"`
	Version               int64     `json:"version"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:                    o.ID().String(),
		CustomerName:          o.CustomerName(),
		CustomerPhone:         o.CustomerPhone(),
		CustomerAddress:       o.CustomerAddress(),
		DeliveryFee:           o.DeliveryFee().Round2().StringFixed(2),
		Total:                 o.Total().Round2().StringFixed(2),
		Status:                int(o.Status()),
		ApplicationPercentage: o.ApplicationPercentage().Rate().String(),
		ApplicationFee:        o.ApplicationFee().Round2().StringFixed(2),
		Notes:                 o.Notes(),
		Version:               o.Version(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}

	if addedBy := o.AddedBy(); addedBy != nil {
		id := addedBy.String()
		resp.AddedByID = &id
	}
	if deliveryBy := o.DeliveryBy(); deliveryBy != nil {
		id := deliveryBy.String()
		resp.DeliveryByID = &id
	}

	return resp
}

// ActiveOrderResponse is one entry in GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerAddress string    `json:"customer_address"`
	DeliveryFee     string    `json:"delivery_fee"`
	Total           string    `json:"total"`
	Status          int       `json:"status"`
	DeliveryByID    *string   `json:"delivery_by_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toActiveOrderResponse(r queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	resp := ActiveOrderResponse{
		ID:              r.ID.String(),
		CustomerName:    r.CustomerName,
		CustomerAddress: r.CustomerAddress,
		DeliveryFee:     r.DeliveryFee.StringFixed(2),
		Total:           r.Total.StringFixed(2),
		Status:          int(r.Status),
		CreatedAt:       r.CreatedAt,
	}

	if r.DeliveryBy != nil {
		id := r.DeliveryBy.String()
		resp.DeliveryByID = &id
	}

	return resp
}

// EntityInfoResponse identifies a shop or driver inside report payloads.
type EntityInfoResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	CommissionPercentage string `json:"commission_percentage"`
}

func toEntityInfoResponse(info queries.EntityInfo) EntityInfoResponse {
	return EntityInfoResponse{
		ID:                   info.ID.String(),
		Name:                 info.Name,
		Phone:                info.Phone,
		CommissionPercentage: info.CommissionPercentage.String(),
	}
}

// EntityActivityResponse is one ranked entry in the admin report's top lists.
type EntityActivityResponse struct {
	Info       EntityInfoResponse `json:"info"`
	Orders     int                `json:"orders"`
	Amount     string             `json:"amount"`
	Commission string             `json:"commission"`
}

func toEntityActivityResponses(activities []queries.EntityActivity) []EntityActivityResponse {
	out := make([]EntityActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = EntityActivityResponse{
			Info:       toEntityInfoResponse(a.Info),
			Orders:     a.Orders,
			Amount:     a.Amount.StringFixed(2),
			Commission: a.Commission.StringFixed(2),
		}
	}
	return out
}

// AdminReportResponse is the body of GET /api/v1/reports/admin.
type AdminReportResponse struct {
	Period string `json:"period"`

	CompletedOrders   int    `json:"completed_orders"`
	OrdersTotal       string `json:"orders_total"`
	DeliveryFeesTotal string `json:"delivery_fees_total"`

	ShopCommissionTotal   string `json:"shop_commission_total"`
	DriverCommissionTotal string `json:"driver_commission_total"`
	PlatformRevenue       string `json:"platform_revenue"`

	ApprovedShops   int64 `json:"approved_shops"`
	ApprovedDrivers int64 `json:"approved_drivers"`
	ActiveShops     int   `json:"active_shops"`
	ActiveDrivers   int   `json:"active_drivers"`

	TopShops   []EntityActivityResponse `json:"top_shops"`
	TopDrivers []EntityActivityResponse `json:"top_drivers"`
}

func toAdminReportResponse(r queries.AdminReportResponse) AdminReportResponse {
	return AdminReportResponse{
		Period:                r.Period,
		CompletedOrders:       r.CompletedOrders,
		OrdersTotal:           r.OrdersTotal.StringFixed(2),
		DeliveryFeesTotal:     r.DeliveryFeesTotal.StringFixed(2),
		ShopCommissionTotal:   r.ShopCommissionTotal.StringFixed(2),
		DriverCommissionTotal: r.DriverCommissionTotal.StringFixed(2),
		PlatformRevenue:       r.PlatformRevenue.StringFixed(2),
		ApprovedShops:         r.ApprovedShops,
		ApprovedDrivers:       r.ApprovedDrivers,
		ActiveShops:           r.ActiveShops,
		ActiveDrivers:         r.ActiveDrivers,
		TopShops:              toEntityActivityResponses(r.TopShops),
		TopDrivers:            toEntityActivityResponses(r.TopDrivers),
	}
}

// DeliveryReportResponse is the body of GET /api/v1/reports/deliveries/:id.
type DeliveryReportResponse struct {
	Driver EntityInfoResponse `json:"driver"`
	Period string             `json:"period"`

	CompletedOrders   int    `json:"completed_orders"`
	DeliveryFeesTotal string `json:"delivery_fees_total"`
	Commission        string `json:"commission"`
	Net               string `json:"net"`
}

func toDeliveryReportResponse(r queries.DeliveryReportResponse) DeliveryReportResponse {
	return DeliveryReportResponse{
		Driver:            toEntityInfoResponse(r.Driver),
		Period:            r.Period,
		CompletedOrders:   r.CompletedOrders,
		DeliveryFeesTotal: r.DeliveryFeesTotal.StringFixed(2),
		Commission:        r.Commission.StringFixed(2),
		Net:               r.Net.StringFixed(2),
	}
}

// ShopReportResponse is the body of GET /api/v1/reports/shops/:id.
type ShopReportResponse struct {
	Shop   EntityInfoResponse `json:"shop"`
	Period string             `json:"period"`

	CompletedOrders   int    `json:"completed_orders"`
	OrdersTotal       string `json:"orders_total"`
	DeliveryFeesTotal string `json:"delivery_fees_total"`
	Commission        string `json:"commission"`
	Net               string `json:"net"`
}

func toShopReportResponse(r queries.ShopReportResponse) ShopReportResponse {
	return ShopReportResponse{
		Shop:              toEntityInfoResponse(r.Shop),
		Period:            r.Period,
		CompletedOrders:   r.CompletedOrders,
		OrdersTotal:       r.OrdersTotal.StringFixed(2),
		DeliveryFeesTotal: r.DeliveryFeesTotal.StringFixed(2),
		Commission:        r.Commission.StringFixed(2),
		Net:               r.Net.StringFixed(2),
	}
}

// ComprehensiveReportResponse is the body of GET /api/v1/reports/comprehensive.
type ComprehensiveReportResponse struct {
	Admin      AdminReportResponse      `json:"admin"`
	Deliveries []DeliveryReportResponse `json:"deliveries"`
	Shops      []ShopReportResponse     `json:"shops"`
}

func toComprehensiveReportResponse(r queries.ComprehensiveReportResponse) ComprehensiveReportResponse {
	deliveries := make([]DeliveryReportResponse, len(r.Deliveries))
	for i, d := range r.Deliveries {
		deliveries[i] = toDeliveryReportResponse(d)
	}

	shops := make([]ShopReportResponse, len(r.Shops))
	for i, s := range r.Shops {
		shops[i] = toShopReportResponse(s)
	}

	return ComprehensiveReportResponse{
		Admin:      toAdminReportResponse(r.Admin),
		Deliveries: deliveries,
		Shops:      shops,
	}
}
