package schema

import "github.com/gatewayperf/gatewayperf/internal/model"

// Card is the card shape nested in accounts and returned by /api/v1/cards.
type Card struct {
	ID            string `json:"id" validate:"required"`
	Pin           string `json:"pin"`
	CVV           string `json:"cvv"`
	Type          string `json:"type" validate:"oneof=VIRTUAL PHYSICAL"`
	Status        string `json:"status" validate:"oneof=ACTIVE FROZEN CLOSED BLOCKED"`
	AccountID     string `json:"accountId" validate:"required"`
	CardNumber    string `json:"cardNumber"`
	CardHolder    string `json:"cardHolder"`
	ExpiryDate    string `json:"expiryDate"`
	PaymentSystem string `json:"paymentSystem" validate:"oneof=VISA MASTERCARD"`
}

// ToModel converts the payload to the domain entity.
func (c Card) ToModel() model.Card {
	return model.Card{
		ID:            c.ID,
		Pin:           c.Pin,
		CVV:           c.CVV,
		Type:          model.CardType(c.Type),
		Status:        model.CardStatus(c.Status),
		AccountID:     c.AccountID,
		CardNumber:    c.CardNumber,
		CardHolder:    c.CardHolder,
		ExpiryDate:    c.ExpiryDate,
		PaymentSystem: model.CardPaymentSystem(c.PaymentSystem),
	}
}

// IssueCardRequest is the body of the issue-*-card endpoints.
type IssueCardRequest struct {
	UserID    string `json:"userId"`
	AccountID string `json:"accountId"`
}

// IssueCardResponse is the body returned by the issue-*-card endpoints.
type IssueCardResponse struct {
	Card Card `json:"card"`
}

// Per-endpoint names for the shared shapes.
type (
	IssueVirtualCardRequest   = IssueCardRequest
	IssuePhysicalCardRequest  = IssueCardRequest
	IssueVirtualCardResponse  = IssueCardResponse
	IssuePhysicalCardResponse = IssueCardResponse
)

// CardFromModel converts a domain card to its payload.
func CardFromModel(c model.Card) Card {
	return Card{
		ID:            c.ID,
		Pin:           c.Pin,
		CVV:           c.CVV,
		Type:          string(c.Type),
		Status:        string(c.Status),
		AccountID:     c.AccountID,
		CardNumber:    c.CardNumber,
		CardHolder:    c.CardHolder,
		ExpiryDate:    c.ExpiryDate,
		PaymentSystem: string(c.PaymentSystem),
	}
}
