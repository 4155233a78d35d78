package notify

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

// Service pushes order notifications to the shop staff over email and
// telegram. Both channels are best-effort: a failure is logged and
// never surfaces to the customer request.
type Service struct {
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string

	TelegramToken   string
	TelegramChatIDs []string
}

func (s *Service) OrderPlaced(o *domain.Order) {
	go func() {
		if err := s.sendEmail(o); err != nil {
			log.Error().Err(err).Str("order", o.ID.String()).Msg("order email")
		}
	}()
	go func() {
		if err := s.sendTelegram(o); err != nil {
			log.Error().Err(err).Str("order", o.ID.String()).Msg("order telegram")
		}
	}()
}

func (s *Service) sendEmail(o *domain.Order) error {
	if s.SMTPHost == "" || s.SMTPUser == "" || s.NotifyEmail == "" {
		log.Warn().Msg("smtp not configured, skipping order email")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.SMTPUser)
	m.SetHeader("To", s.NotifyEmail)
	m.SetHeader("Subject", fmt.Sprintf("New order #%s", o.ID))
	m.SetBody("text/plain", orderText(o))

	d := gomail.NewDialer(s.SMTPHost, s.SMTPPort, s.SMTPUser, s.SMTPPass)
	return d.DialAndSend(m)
}

func (s *Service) sendTelegram(o *domain.Order) error {
	if s.TelegramToken == "" || len(s.TelegramChatIDs) == 0 {
		return nil
	}
	api := "https://api.telegram.org/bot" + s.TelegramToken + "/sendMessage"
	text := orderText(o)
	for _, chatID := range s.TelegramChatIDs {
		resp, err := http.PostForm(api, url.Values{"chat_id": {chatID}, "text": {text}})
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("telegram status %d", resp.StatusCode)
		}
	}
	return nil
}

func orderText(o *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\nPhone: %s\n", o.CustomerName, o.Phone)
	if o.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", o.Email)
	}
	if o.ZoneName != "" {
		fmt.Fprintf(&b, "Delivery: %s (%s) fee %.2f\n", o.Address, o.ZoneName, o.DeliveryFee)
	} else if o.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", o.Address)
	}
	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%.2fkg @ %.2f\n", it.TitleEN, it.Qty, it.UnitPrice)
	}
	fmt.Fprintf(&b, "Subtotal: %.2f\nVAT: %.2f\nTotal: %.2f\n", o.SubtotalNet, o.VATAmount, o.Total)
	if o.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", o.Notes)
	}
	return b.String()
}
