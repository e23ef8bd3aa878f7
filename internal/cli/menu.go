package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/internal/service"
	"github.com/d60-Lab/coffee-pos/pkg/render"
)

func (s *Session) placeOrder(ctx context.Context) error {
	in := service.PlaceOrderInput{ClerkID: s.user.ID}
	in.CustomerID = s.prompt("Enter customer ID: ")
	in.Description = s.prompt("Enter order description: ")
	in.TotalAmount = s.prompt("Enter total amount: ")

	_, err := s.orders.Place(ctx, in)
	if errors.Is(err, repository.ErrCustomerMissing) {
		// 外键未命中：当场补录客户资料后重试一次
		fmt.Fprintln(s.out, "Customer does not exist. Please add it now")
		c := service.CustomerInput{
			Name:    s.prompt("Enter customer name: "),
			Address: s.prompt("Enter customer address: "),
			Phone:   s.prompt("Enter customer phone number: "),
		}
		_, err = s.orders.PlaceForNewCustomer(ctx, in, c)
	}
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Order placed successfully.")
	return nil
}

func (s *Session) assignDelivery(ctx context.Context) error {
	deliveryID, err := s.orders.VerifyCourier(ctx, s.prompt("Enter delivery ID to assign: "))
	if err != nil {
		return s.report(err)
	}
	if err := s.orders.Assign(ctx, deliveryID, s.prompt("Enter order ID to assign to delivery: ")); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Order assigned to delivery.")
	return nil
}

func (s *Session) checkIncomplete(ctx context.Context) error {
	orders, err := s.orders.IncompleteForClerk(ctx, s.user.ID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No incomplete orders.")
		return nil
	}
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			render.Int(o.ID),
			render.Int(o.CustomerID),
			o.Date,
			render.Float(o.TotalAmount),
			o.Status,
		}
	}
	fmt.Fprintln(s.out, "YOUR INCOMPLETE ORDERS")
	fmt.Fprint(s.out, render.Grid(
		[]string{"Order ID", "Customer ID", "Date", "Total Amount", "Status"}, rows))
	return nil
}

func (s *Session) markCompleted(ctx context.Context) error {
	if err := s.orders.Complete(ctx, s.prompt("Enter order ID to mark as completed: ")); err != nil {
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Order marked as completed.")
	return nil
}

func (s *Session) customerProfile(ctx context.Context) error {
	c, err := s.reports.CustomerProfile(ctx, s.prompt("Enter customer ID: "))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			fmt.Fprintln(s.out, "Customer not found.")
			return nil
		}
		return s.report(err)
	}
	fmt.Fprintln(s.out, "Customer Profile:")
	fmt.Fprint(s.out, render.Grid(
		[]string{"ID", "Name", "Address", "Phone"},
		[][]string{{render.Int(c.ID), c.Name, c.Address, c.PhoneNumber}}))
	return nil
}

func (s *Session) ordersOnDay(ctx context.Context) error {
	day := s.prompt("Enter specific day (YYYY-MM-DD): ")
	t, err := s.reports.OrdersOnDay(ctx, day)
	if err != nil {
		return err
	}
	total := 0.0
	if t.Total.Valid {
		total = t.Total.Float64
	}
	fmt.Fprintf(s.out, "Number of orders on %s: %d\n", day, t.Count)
	fmt.Fprintf(s.out, "Total amount of orders on %s: %s\n", day, render.Float(total))
	return nil
}

func (s *Session) pendingOrders(ctx context.Context) error {
	orders, err := s.reports.Pending(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No pending orders.")
		return nil
	}
	// 报表刻意不含订单 ID 列
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			render.Int(o.CustomerID),
			o.Date,
			render.Float(o.TotalAmount),
			render.Int(o.ClerkID),
			render.NullableInt(o.DeliveryID),
			o.Status,
		}
	}
	fmt.Fprintln(s.out, "Pending Orders:")
	fmt.Fprint(s.out, render.Grid(
		[]string{"Customer ID", "Date", "Total Amount", "Clerk ID", "Delivery ID", "Status"}, rows))
	return nil
}

func (s *Session) totalsPerClerk(ctx context.Context) error {
	totals, err := s.reports.TotalsPerClerk(ctx)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Fprintln(s.out, "No data available.")
		return nil
	}
	rows := make([][]string, len(totals))
	for i, t := range totals {
		rows[i] = []string{render.Int(t.ClerkID), render.Int(t.Orders), render.Float(t.Total)}
	}
	fmt.Fprintln(s.out, "Total Orders per Clerk:")
	fmt.Fprint(s.out, render.Grid(
		[]string{"Clerk ID", "Number of orders", "Sum amount"}, rows))
	return nil
}

func (s *Session) exportCSV(ctx context.Context) error {
	name := s.prompt("Enter database name (`employees`, `orders` or `customers`): ")
	// TODO: 输入目前只决定导出文件名，内容固定为 orders 表；
	// 待与维护者确认预期后把 model.Order{}.TableName() 换成用户所选表
	path, n, err := s.reports.Export(ctx, model.Order{}.TableName(), name)
	if err != nil {
		return s.report(err)
	}
	fmt.Fprintf(s.out, "Data exported to %s (%d rows)\n", path, n)
	return nil
}
