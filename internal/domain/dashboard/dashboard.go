// Package dashboard aggregates the landing-page KPIs from the other
// collections.
package dashboard

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

type KPIs struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
	Uptime       float64 `json:"uptime"`
}

type Service struct {
	orders orders.Repository
	users  users.Repository
	uptime float64
}

func NewService(orderRepo orders.Repository, userRepo users.Repository, uptime float64) *Service {
	return &Service{orders: orderRepo, users: userRepo, uptime: uptime}
}

func (s *Service) KPIs(ctx context.Context) (KPIs, error) {
	allOrders, err := s.orders.All(ctx)
	if err != nil {
		return KPIs{}, err
	}
	allUsers, err := s.users.All(ctx)
	if err != nil {
		return KPIs{}, err
	}

	var revenue float64
	for _, order := range allOrders {
		revenue += order.Total
	}

	return KPIs{
		TotalUsers:   len(allUsers),
		TotalOrders:  len(allOrders),
		TotalRevenue: revenue,
		Uptime:       s.uptime,
	}, nil
}
