package http

import (
	"storefront/internal/core/application/notices"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/seller"
	"storefront/internal/core/domain/services"
	"storefront/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrder(o *order.Order) servers.Order {
	customer := o.Customer()
	response := servers.Order{
		Id:            o.ID(),
		CustomerName:  customer.Name(),
		CustomerEmail: customer.Email(),
		Address:       customer.Address(),
		Product:       o.Product().Name(),
		Amount:        o.Amount().Amount(),
		Status:        o.Status().String(),
		StatusLabel:   o.Status().Label(),
		Date:          openapi_types.Date{Time: o.Date()},
		Notes:         optional(o.Notes()),
	}
	if id := o.Product().ID(); id != nil {
		productID := id.Bytes()
		response.ProductId = &productID
	}
	return response
}

func toOrders(orders []*order.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toProduct(p *product.Product) servers.Product {
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return servers.Product{
		Id:           p.ID().Bytes(),
		Name:         p.Name(),
		Category:     p.Category(),
		Description:  p.Description(),
		Price:        p.Price().Amount(),
		Availability: p.Availability().String(),
		Images:       images,
	}
}

func toProfile(p *seller.Profile) servers.SellerProfile {
	return servers.SellerProfile{
		Name:        p.Name(),
		Email:       p.Email(),
		Phone:       optional(p.Phone()),
		Region:      optional(p.Region()),
		CraftType:   optional(p.CraftType()),
		Skill:       optional(p.Skill()),
		Description: optional(p.Description()),
	}
}

func toNotice(n notices.Notice) servers.Notice {
	return servers.Notice{
		Kind:        string(n.Kind),
		Title:       n.Title,
		Description: n.Description,
		Subject:     optional(n.Subject),
		OccurredAt:  n.OccurredAt,
	}
}

func toStatusCounts(counts map[order.Status]int) map[string]int {
	response := make(map[string]int, len(counts))
	for _, status := range order.Statuses() {
		response[status.String()] = counts[status]
	}
	return response
}

func toDashboard(s services.DashboardSummary) servers.DashboardSummary {
	return servers.DashboardSummary{
		TotalOrders:       s.TotalOrders,
		StatusCounts:      toStatusCounts(s.StatusCounts),
		ActiveOrders:      s.ActiveOrders,
		CompletedOrders:   s.CompletedOrders,
		TotalProducts:     s.TotalProducts,
		Revenue:           s.Revenue.Amount(),
		AverageOrderValue: s.AverageOrderValue,
		RecentOrders:      toOrders(s.RecentOrders),
	}
}

func toPriceBreakdown(r queries.PriceBreakdownResponse) servers.PriceBreakdown {
	return servers.PriceBreakdown{
		Materials:        r.Materials,
		LaborCost:        r.LaborCost,
		Overhead:         r.Overhead,
		Subtotal:         r.Subtotal(),
		RecommendedPrice: r.RecommendedPrice,
		Display: servers.PriceDisplay{
			Materials:        r.MaterialsDisplay,
			LaborCost:        r.LaborCostDisplay,
			Overhead:         r.OverheadDisplay,
			RecommendedPrice: r.RecommendedDisplay,
		},
	}
}

func fromProductForm(body servers.ProductForm) commands.ProductForm {
	form := commands.ProductForm{
		Name:         body.Name,
		Category:     body.Category,
		Description:  value(body.Description),
		Price:        body.Price,
		Availability: body.Availability,
	}
	if body.Images != nil {
		form.Images = *body.Images
	}
	return form
}

func fromNewOrder(body servers.NewOrder) commands.OrderIntake {
	intake := commands.OrderIntake{
		OrderID:       body.Id,
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		Address:       body.Address,
		ProductName:   body.Product,
		Amount:        body.Amount,
		Status:        value(body.Status),
		Notes:         value(body.Notes),
	}
	if body.ProductId != nil {
		intake.ProductID = body.ProductId.String()
	}
	if body.Date != nil {
		intake.Date = body.Date.Time
	}
	return intake
}

func fromProfile(body servers.SellerProfile) seller.Fields {
	return seller.Fields{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       value(body.Phone),
		Region:      value(body.Region),
		CraftType:   value(body.CraftType),
		Skill:       value(body.Skill),
		Description: value(body.Description),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
