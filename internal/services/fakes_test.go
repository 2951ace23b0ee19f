package services

import (
	"context"
	"errors"
	"sync"

	"rescuerehab/internal/mailer"
	"rescuerehab/internal/notifier"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *fakeMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.To)
	}
	return out
}

type fakeNotifier struct {
	events []notifier.DonationEvent
}

func (n *fakeNotifier) Notify(_ context.Context, ev notifier.DonationEvent) error {
	n.events = append(n.events, ev)
	return nil
}

func (n *fakeNotifier) Close() error { return nil }

type fakeOrders struct {
	req OrderRequest
	err error
}

func (f *fakeOrders) CreateOrder(_ context.Context, req OrderRequest) (Order, error) {
	f.req = req
	if f.err != nil {
		return Order{}, f.err
	}
	return Order{ID: "order_test", Amount: req.AmountMinor, Currency: req.Currency, Receipt: req.Receipt}, nil
}

var errBoom = errors.New("boom")
