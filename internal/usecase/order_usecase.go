package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/domain/model"
	repo "github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/repository"

	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const (
	defaultDeliveryType  = "guntur"
	defaultPaymentMethod = "COD"
	defaultStatus        = "Processing"
)

type OrderUsecase struct {
	orders repo.OrderRepository
	logger *zap.Logger
}

func NewOrderUsecase(orders repo.OrderRepository, logger *zap.Logger) *OrderUsecase {
	return &OrderUsecase{orders: orders, logger: logger}
}

type CustomerInfoInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// POST /ordersの入力。itemsと金額はフロントの揺れを受けるためanyで受ける
// （itemsは配列か文字列化JSON、金額は数値か文字列）。
type CreateOrderInput struct {
	Items         any               `json:"items"`
	Subtotal      any               `json:"subtotal"`
	Shipping      any               `json:"shipping"`
	Total         any               `json:"total"`
	CustomerInfo  CustomerInfoInput `json:"customerInfo"`
	DeliveryType  string            `json:"deliveryType"`
	PaymentMethod string            `json:"paymentMethod"`
}

type UpdateOrderInput struct {
	Items      any    `json:"items"`
	TotalPrice any    `json:"total_price"`
	Address    string `json:"address"`
	Status     string `json:"status"`
}

type OrderOutput struct {
	ID            int64            `json:"id"`
	CustomerName  string           `json:"customer_name"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	Items         []model.LineItem `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Shipping      float64          `json:"shipping"`
	TotalPrice    float64          `json:"total_price"`
	DeliveryType  string           `json:"delivery_type"`
	PaymentMethod string           `json:"payment_method"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Create は注文を1行登録して採番されたidを返す。
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	name := strings.TrimSpace(in.CustomerInfo.Name)
	phone := strings.TrimSpace(in.CustomerInfo.Phone)

	if !hasItems(in.Items) || name == "" || phone == "" || in.CustomerInfo.Address == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "Required fields are missing")
	}

	encoded, err := EncodeItems(in.Items)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid items format")
	}

	deliveryType := in.DeliveryType
	if deliveryType == "" {
		deliveryType = defaultDeliveryType
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order := model.Order{
		CustomerName:  name,
		Phone:         phone,
		Address:       in.CustomerInfo.Address,
		Items:         encoded,
		Subtotal:      coerceFloat(in.Subtotal),
		Shipping:      coerceFloat(in.Shipping),
		TotalPrice:    coerceFloat(in.Total),
		DeliveryType:  deliveryType,
		PaymentMethod: paymentMethod,
		Status:        defaultStatus,
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		u.logger.Error("failed to insert order", zap.Error(err))
		return 0, NewHTTPError(http.StatusInternalServerError, "Failed to place order")
	}

	return id, nil
}

// List は全注文をcreated_atの降順で返す。itemsは行ごとにデコードする。
func (u *OrderUsecase) List(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.ListAllDesc(ctx)
	if err != nil {
		u.logger.Error("failed to fetch orders", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to retrieve orders")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, u.toOrderOutput(o))
	}
	return outs, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		u.logger.Error("failed to fetch order", zap.Int64("order_id", orderID), zap.Error(err))
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "Failed to retrieve order")
	}

	return u.toOrderOutput(o), nil
}

func (u *OrderUsecase) Update(ctx context.Context, orderID int64, in UpdateOrderInput) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	encoded, err := EncodeItems(in.Items)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid items format")
	}

	status := in.Status
	if status == "" {
		status = defaultStatus
	}

	err = u.orders.Update(ctx, orderID, repo.OrderUpdate{
		Items:      encoded,
		TotalPrice: coerceFloat(in.TotalPrice),
		Address:    in.Address,
		Status:     status,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		u.logger.Error("failed to update order", zap.Int64("order_id", orderID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "Failed to update order")
	}

	return nil
}

func (u *OrderUsecase) Delete(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orders.Delete(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		u.logger.Error("failed to delete order", zap.Int64("order_id", orderID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "Failed to delete order")
	}

	return nil
}

// itemsが壊れている行は空配列に落として続行する（一覧全体は落とさない）
func (u *OrderUsecase) toOrderOutput(o model.Order) OrderOutput {
	items, err := DecodeItems(o.Items)
	if err != nil {
		u.logger.Warn("items column not decodable",
			zap.Int64("order_id", o.ID),
			zap.Error(err),
		)
	}

	return OrderOutput{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		Items:         items,
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		TotalPrice:    o.TotalPrice,
		DeliveryType:  o.DeliveryType,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func hasItems(v any) bool {
	switch items := v.(type) {
	case nil:
		return false
	case string:
		return items != ""
	case []any:
		return len(items) > 0
	case []model.LineItem:
		return len(items) > 0
	default:
		return true
	}
}

// 数値でないsubtotal等は検証エラーにせず0に落とす（旧実装のparseFloatフォールバック）
func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
