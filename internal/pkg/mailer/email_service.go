package mailer

import (
	"fmt"
	"strings"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Template keys. Each maps to one entry in a tenant's emailTemplates
// section; built-in fallbacks are used when the tenant has none.
const (
	TemplateWelcome                = "welcomeEmail"
	TemplateDepositConfirmation    = "depositConfirmation"
	TemplateWithdrawalConfirmation = "withdrawalConfirmation"
	TemplatePasswordReset          = "passwordReset"
	TemplateKycApproved            = "kycApproved"
	TemplateKycRejected            = "kycRejected"
	TemplateAccountBanned          = "accountBanned"
	TemplateAccountUnbanned        = "accountUnbanned"
)

type IEmailService interface {
	SendTemplateEmail(templateKey, toEmail string, vars map[string]string) error
	SendTenantTemplateEmail(templates *entity.EmailTemplates, templateKey, toEmail string, vars map[string]string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	log         logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		log:         log,
	}
}

var defaultTemplates = map[string]entity.EmailTemplate{
	TemplateWelcome: {
		Subject: "Welcome to {{brandName}}",
		Body:    "<p>Hi {{firstName}},</p><p>Your trading account is ready.</p>",
		Enabled: true,
	},
	TemplateDepositConfirmation: {
		Subject: "Deposit confirmed",
		Body:    "<p>Hi {{firstName}},</p><p>Your deposit of {{amount}} has been credited.</p>",
		Enabled: true,
	},
	TemplateWithdrawalConfirmation: {
		Subject: "Withdrawal processed",
		Body:    "<p>Hi {{firstName}},</p><p>Your withdrawal of {{amount}} has been processed.</p>",
		Enabled: true,
	},
	TemplatePasswordReset: {
		Subject: "Your password was changed",
		Body:    "<p>Hi {{firstName}},</p><p>Your account password was updated. Contact support if this wasn't you.</p>",
		Enabled: true,
	},
	TemplateKycApproved: {
		Subject: "KYC verification approved",
		Body:    "<p>Hi {{firstName}},</p><p>Your identity verification has been approved.</p>",
		Enabled: true,
	},
	TemplateKycRejected: {
		Subject: "KYC verification rejected",
		Body:    "<p>Hi {{firstName}},</p><p>Your identity verification was rejected: {{reason}}</p>",
		Enabled: true,
	},
	TemplateAccountBanned: {
		Subject: "Account suspended",
		Body:    "<p>Hi {{firstName}},</p><p>Your account has been suspended: {{reason}}</p>",
		Enabled: true,
	},
	TemplateAccountUnbanned: {
		Subject: "Account reinstated",
		Body:    "<p>Hi {{firstName}},</p><p>Your account has been reinstated.</p>",
		Enabled: true,
	},
}

func (s *emailService) SendTemplateEmail(templateKey, toEmail string, vars map[string]string) error {
	return s.SendTenantTemplateEmail(nil, templateKey, toEmail, vars)
}

// SendTenantTemplateEmail prefers the tenant's template when one is set and
// enabled; disabled templates suppress the email entirely.
func (s *emailService) SendTenantTemplateEmail(templates *entity.EmailTemplates, templateKey, toEmail string, vars map[string]string) error {
	tpl, ok := s.resolveTemplate(templates, templateKey)
	if !ok {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", interpolate(tpl.Subject, vars))
	m.SetBody("text/html", interpolate(tpl.Body, vars))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("mailer", "failed to send email", map[string]interface{}{
			"template": templateKey,
			"to":       toEmail,
			"error":    err.Error(),
		})
		return err
	}

	s.log.Info("mailer", "email sent", map[string]interface{}{
		"template": templateKey,
		"to":       toEmail,
	})
	return nil
}

func (s *emailService) resolveTemplate(templates *entity.EmailTemplates, key string) (entity.EmailTemplate, bool) {
	if templates != nil {
		if tpl, found := tenantTemplate(templates, key); found {
			if !tpl.Enabled {
				return entity.EmailTemplate{}, false
			}
			if tpl.Subject != "" && tpl.Body != "" {
				return tpl, true
			}
		}
	}
	tpl, ok := defaultTemplates[key]
	return tpl, ok
}

func tenantTemplate(t *entity.EmailTemplates, key string) (entity.EmailTemplate, bool) {
	switch key {
	case TemplateWelcome:
		return t.WelcomeEmail, true
	case TemplateDepositConfirmation:
		return t.DepositConfirmation, true
	case TemplateWithdrawalConfirmation:
		return t.WithdrawalConfirmation, true
	case TemplatePasswordReset:
		return t.PasswordReset, true
	case TemplateKycApproved:
		return t.KycApproved, true
	case TemplateKycRejected:
		return t.KycRejected, true
	default:
		return entity.EmailTemplate{}, false
	}
}

func interpolate(text string, vars map[string]string) string {
	for key, value := range vars {
		text = strings.ReplaceAll(text, fmt.Sprintf("{{%s}}", key), value)
	}
	return text
}
