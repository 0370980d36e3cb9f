package model

// CardType distinguishes virtual and plastic cards.
type CardType string

const (
	CardTypeVirtual  CardType = "VIRTUAL"
	CardTypePhysical CardType = "PHYSICAL"
)

// IsValid checks if the card type is known.
func (t CardType) IsValid() bool {
	return t == CardTypeVirtual || t == CardTypePhysical
}

// CardStatus represents the state of a card.
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusFrozen  CardStatus = "FROZEN"
	CardStatusClosed  CardStatus = "CLOSED"
	CardStatusBlocked CardStatus = "BLOCKED"
)

// IsValid checks if the card status is known.
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusActive, CardStatusFrozen, CardStatusClosed, CardStatusBlocked:
		return true
	}
	return false
}

// CardPaymentSystem is the card network.
type CardPaymentSystem string

const (
	CardPaymentSystemVisa       CardPaymentSystem = "VISA"
	CardPaymentSystemMastercard CardPaymentSystem = "MASTERCARD"
)

// IsValid checks if the payment system is known.
func (p CardPaymentSystem) IsValid() bool {
	return p == CardPaymentSystemVisa || p == CardPaymentSystemMastercard
}

// Card represents a card issued for an account.
type Card struct {
	ID            string            `json:"id"`
	Pin           string            `json:"pin"`
	CVV           string            `json:"cvv"`
	Type          CardType          `json:"type"`
	Status        CardStatus        `json:"status"`
	AccountID     string            `json:"accountId"`
	CardNumber    string            `json:"cardNumber"`
	CardHolder    string            `json:"cardHolder"`
	ExpiryDate    string            `json:"expiryDate"`
	PaymentSystem CardPaymentSystem `json:"paymentSystem"`
}
