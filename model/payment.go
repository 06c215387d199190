package model

type PaymentMethod string

const (
	PaymentWallet     PaymentMethod = "Wallet"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentPayPal     PaymentMethod = "PayPal"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentWallet, PaymentCreditCard, PaymentPayPal}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWallet, PaymentCreditCard, PaymentPayPal:
		return true
	default:
		return false
	}
}
