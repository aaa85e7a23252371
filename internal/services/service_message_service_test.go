package services

import (
	"context"
	"errors"
	"testing"

	"townhubBack/internal/models"
)

type stubMessages struct {
	created []models.ServiceMessage
	read    []int
	nextID  int
}

func (s *stubMessages) CreateMessage(ctx context.Context, msg models.ServiceMessage) (models.ServiceMessage, error) {
	s.nextID++
	msg.ID = s.nextID
	s.created = append(s.created, msg)
	return msg, nil
}

func (s *stubMessages) GetByRequestID(ctx context.Context, requestID, page, pageSize int) ([]models.ServiceMessage, error) {
	var out []models.ServiceMessage
	for _, msg := range s.created {
		if msg.RequestID == requestID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *stubMessages) MarkRead(ctx context.Context, messageID, userID int) error {
	s.read = append(s.read, messageID)
	return nil
}

type stubDeliverer struct {
	delivered []models.ServiceMessage
}

func (d *stubDeliverer) DeliverMessage(msg models.ServiceMessage) {
	d.delivered = append(d.delivered, msg)
}

func TestSendMessage(t *testing.T) {
	store := newStubStore()
	messages := &stubMessages{}
	deliverer := &stubDeliverer{}
	svc := &ServiceMessageService{
		MessageRepo:  messages,
		RequestRepo:  stubRequests{store: store},
		ResponseRepo: store,
		Deliverer:    deliverer,
	}
	ctx := context.Background()

	req := store.addRequest(1, "need plumbing help")
	respSvc := newResponseService(store)
	resp, err := respSvc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: 2, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	if _, err := svc.SendMessage(ctx, models.ServiceMessage{RequestID: req.ID, SenderID: 1, RecipientID: 2, Body: "  "}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for empty body, got %v", err)
	}
	if _, err := svc.SendMessage(ctx, models.ServiceMessage{RequestID: 999, SenderID: 1, RecipientID: 2, Body: "hi"}); !errors.Is(err, models.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}

	wrongResponse := 999
	if _, err := svc.SendMessage(ctx, models.ServiceMessage{RequestID: req.ID, ResponseID: &wrongResponse, SenderID: 1, RecipientID: 2, Body: "hi"}); !errors.Is(err, models.ErrResponseNotFound) {
		t.Fatalf("expected response not found, got %v", err)
	}

	msg, err := svc.SendMessage(ctx, models.ServiceMessage{RequestID: req.ID, ResponseID: &resp.ID, SenderID: 1, RecipientID: 2, Body: "when can you start?"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected stored message id")
	}
	if len(deliverer.delivered) != 1 {
		t.Fatalf("expected one delivered message, got %d", len(deliverer.delivered))
	}
}
