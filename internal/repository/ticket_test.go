package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/testutil"
)

func TestTicketAndPaymentRepositories(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.Setup(t, ctx, pool)

	userID := testutil.InsertUser(t, ctx, pool)
	enrollmentID := testutil.InsertEnrollment(t, ctx, pool, userID)
	typeID := testutil.InsertTicketType(t, ctx, pool, 25000, false, true)

	enrollments := repository.NewEnrollmentRepository(pool)
	tickets := repository.NewTicketRepository(pool)
	payments := repository.NewPaymentRepository(pool)

	enrollment, err := enrollments.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if enrollment.ID != enrollmentID {
		t.Fatalf("expected enrollment %d, got %d", enrollmentID, enrollment.ID)
	}
	if _, err := enrollments.FindByUserID(ctx, userID+1000); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	types, err := tickets.ListTypes(ctx)
	if err != nil {
		t.Fatalf("list types: %v", err)
	}
	if len(types) != 1 || !types[0].IncludesHotel || types[0].Price != 25000 {
		t.Fatalf("unexpected types: %+v", types)
	}

	if _, err := tickets.FindByEnrollmentID(ctx, enrollmentID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before ticket, got %v", err)
	}

	created, err := tickets.Create(ctx, typeID, enrollmentID)
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if created.Status != model.TicketReserved {
		t.Fatalf("expected RESERVED, got %s", created.Status)
	}

	found, err := tickets.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		t.Fatalf("find ticket: %v", err)
	}
	if found.ID != created.ID || found.TicketType == nil || found.TicketType.ID != typeID {
		t.Fatalf("unexpected ticket: %+v", found)
	}

	tx := repository.NewTxManager(pool)
	err = tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := payments.Create(ctx, model.Payment{
			TicketID: created.ID, Value: 25000, CardIssuer: "VISA", CardLastDigits: "4242",
		}); err != nil {
			return err
		}
		return tickets.MarkPaid(ctx, created.ID)
	})
	if err != nil {
		t.Fatalf("pay ticket: %v", err)
	}

	paid, err := tickets.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if paid.Status != model.TicketPaid {
		t.Fatalf("expected PAID, got %s", paid.Status)
	}

	payment, err := payments.FindByTicketID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find payment: %v", err)
	}
	if payment.Value != 25000 || payment.CardLastDigits != "4242" {
		t.Fatalf("unexpected payment: %+v", payment)
	}

	if _, err := payments.Create(ctx, model.Payment{TicketID: created.ID, Value: 1, CardIssuer: "VISA", CardLastDigits: "0000"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for second payment, got %v", err)
	}
}
