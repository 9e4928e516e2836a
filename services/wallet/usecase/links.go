package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/piresc/fairpay/internal/pkg/models"
)

const (
	defaultSupportPhone     = "2348107516059"
	defaultFaircodePayURL   = "https://paystack.shop/pay/fairpay"
	defaultWithdrawalFeeURL = "https://paystack.shop/pay/i0nj8tjxcp"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// paymentLink returns the off-platform payment page for a deposit category
func (uc *walletUC) paymentLink(category models.DepositCategory, amount int64) *models.PaymentLink {
	w := uc.cfg.Wallet
	switch category {
	case models.DepositCategoryFaircode:
		return &models.PaymentLink{
			URL:     orDefault(w.FaircodePayURL, defaultFaircodePayURL),
			Message: fmt.Sprintf("Pay ₦%d to receive your FairCode", amount),
		}
	case models.DepositCategoryWithdrawalFee:
		return uc.withdrawalFeeLink()
	default:
		return &models.PaymentLink{
			URL:     orDefault(w.DepositPayURL, orDefault(w.FaircodePayURL, defaultFaircodePayURL)),
			Message: fmt.Sprintf("Pay ₦%d to fund your wallet", amount),
		}
	}
}

func (uc *walletUC) withdrawalFeeLink() *models.PaymentLink {
	return &models.PaymentLink{
		URL:     orDefault(uc.cfg.Wallet.WithdrawalFeeURL, defaultWithdrawalFeeURL),
		Message: "Pay the validation fee to release your withdrawal",
	}
}

// airtimeChatLink builds the support chat link carrying the airtime order
func (uc *walletUC) airtimeChatLink(req models.AirtimeRequest) *models.PaymentLink {
	message := fmt.Sprintf("Hello! I want to purchase ₦%d %s airtime for %s. My FairCode is %s.",
		req.Amount, req.Network, req.PhoneNumber, strings.TrimSpace(req.FairCode))

	// spaces as %20, the way chat clients expect them
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	phone := orDefault(uc.cfg.Wallet.SupportPhone, defaultSupportPhone)

	return &models.PaymentLink{
		URL:     "https://wa.me/" + phone + "?text=" + text,
		Message: message,
	}
}
