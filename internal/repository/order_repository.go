package repository

import (
	"context"
	"errors"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 管理画面の編集で書き換えられるカラムだけを持つ
type OrderUpdate struct {
	Items      string
	TotalPrice float64
	Address    string
	Status     string
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	//created_atの降順で全件
	ListAllDesc(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//該当行が無ければErrNotFound
	Update(ctx context.Context, orderID int64, fields OrderUpdate) error
	Delete(ctx context.Context, orderID int64) error
}
