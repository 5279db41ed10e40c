package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/internal/pkg/mailer"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService fans domain events out to email and the notification
// inbox so custody and KYC flows never block on either.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	notifier     INotificationService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	notifier INotificationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    DomainEventsTopic,
		uowFactory:   uowFactory,
		emailService: emailService,
		notifier:     notifier,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("consumer", "failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages, retrying cannot fix them.
		msg.Ack()
		return
	}

	if err := cs.handleEvent(ctx, &envelope); err != nil {
		cs.log.Error("consumer", "failed to handle event", map[string]interface{}{
			"type":  envelope.Type,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}
	msg.Ack()
}

func (cs *consumerService) handleEvent(ctx context.Context, e *eventEnvelope) error {
	switch e.Type {
	case events.TypeUserCreated:
		return cs.onUserCreated(ctx, e)
	case events.TypeFundRequestCreated:
		return cs.onFundRequestCreated(ctx, e)
	case events.TypeFundRequestApproved:
		return cs.notifyAdmin(ctx, e, entity.NotificationSuccess, "Fund request approved",
			fmt.Sprintf("Your fund request for %s was approved.", payloadAmount(e)))
	case events.TypeFundRequestRejected:
		return cs.notifyAdmin(ctx, e, entity.NotificationWarning, "Fund request rejected",
			fmt.Sprintf("Your fund request for %s was rejected.", payloadAmount(e)))
	case events.TypeWalletFunded:
		return cs.notifyAdmin(ctx, e, entity.NotificationSuccess, "Wallet funded",
			fmt.Sprintf("Your wallet was credited with %s.", payloadAmount(e)))
	case events.TypeWalletDeducted:
		return cs.notifyAdmin(ctx, e, entity.NotificationWarning, "Wallet deducted",
			fmt.Sprintf("%s was deducted from your wallet.", payloadAmount(e)))
	case events.TypeUserFundsAdded:
		return cs.onUserFunds(ctx, e, mailer.TemplateDepositConfirmation, entity.NotificationSuccess,
			"Deposit received", fmt.Sprintf("%s was added to your wallet.", payloadAmount(e)))
	case events.TypeUserFundsDeducted:
		return cs.onUserFunds(ctx, e, mailer.TemplateWithdrawalConfirmation, entity.NotificationInfo,
			"Withdrawal processed", fmt.Sprintf("%s was deducted from your wallet.", payloadAmount(e)))
	case events.TypeKycApproved:
		return cs.onUserEmail(ctx, e, mailer.TemplateKycApproved, entity.NotificationSuccess,
			"KYC approved", "Your identity verification has been approved.")
	case events.TypeKycRejected:
		return cs.onUserEmail(ctx, e, mailer.TemplateKycRejected, entity.NotificationWarning,
			"KYC rejected", fmt.Sprintf("Your identity verification was rejected: %s", payloadString(e, "reason")))
	case events.TypeKycSubmitted:
		return nil
	case events.TypeUserBanned:
		return cs.onUserEmail(ctx, e, mailer.TemplateAccountBanned, entity.NotificationWarning,
			"Account suspended", payloadString(e, "reason"))
	case events.TypeUserUnbanned:
		return cs.onUserEmail(ctx, e, mailer.TemplateAccountUnbanned, entity.NotificationInfo,
			"Account reinstated", "Your account has been reinstated.")
	default:
		cs.log.Debug("consumer", "unhandled event type", map[string]interface{}{"type": e.Type})
		return nil
	}
}

func payloadString(e *eventEnvelope, key string) string {
	value, _ := e.Data[key].(string)
	return value
}

func payloadAmount(e *eventEnvelope) string {
	amount, _ := e.Data["amount"].(float64)
	return fmt.Sprintf("%.2f", amount)
}

func payloadUUID(e *eventEnvelope, key string) (uuid.UUID, bool) {
	value, ok := e.Data[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (cs *consumerService) onUserCreated(ctx context.Context, e *eventEnvelope) error {
	userId, ok := payloadUUID(e, "user_id")
	if !ok {
		return nil
	}
	return cs.sendUserEmail(ctx, userId, mailer.TemplateWelcome, nil)
}

// onFundRequestCreated alerts every super admin that a request is waiting.
func (cs *consumerService) onFundRequestCreated(ctx context.Context, e *eventEnvelope) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	supers, err := uow.AdminRepository().FindAll(ctx, specification.ByRole{Role: string(entity.AdminRoleSuperAdmin)})
	if err != nil {
		return err
	}
	for _, super := range supers {
		if err := cs.notifier.Notify(ctx, super.Id, AudienceAdmin, entity.NotificationInfo,
			"New fund request",
			fmt.Sprintf("A fund request for %s is awaiting review.", payloadAmount(e)),
		); err != nil {
			return err
		}
	}
	return nil
}

func (cs *consumerService) notifyAdmin(ctx context.Context, e *eventEnvelope, level entity.NotificationLevel, title, body string) error {
	adminId, ok := payloadUUID(e, "admin_id")
	if !ok {
		return nil
	}
	return cs.notifier.Notify(ctx, adminId, AudienceAdmin, level, title, body)
}

func (cs *consumerService) onUserFunds(ctx context.Context, e *eventEnvelope, templateKey string, level entity.NotificationLevel, title, body string) error {
	userId, ok := payloadUUID(e, "user_id")
	if !ok {
		return nil
	}
	if err := cs.notifier.Notify(ctx, userId, AudienceUser, level, title, body); err != nil {
		return err
	}
	return cs.sendUserEmail(ctx, userId, templateKey, map[string]string{"amount": payloadAmount(e)})
}

func (cs *consumerService) onUserEmail(ctx context.Context, e *eventEnvelope, templateKey string, level entity.NotificationLevel, title, body string) error {
	userId, ok := payloadUUID(e, "user_id")
	if !ok {
		return nil
	}
	if err := cs.notifier.Notify(ctx, userId, AudienceUser, level, title, body); err != nil {
		return err
	}
	vars := map[string]string{}
	if reason := payloadString(e, "reason"); reason != "" {
		vars["reason"] = reason
	}
	return cs.sendUserEmail(ctx, userId, templateKey, vars)
}

// sendUserEmail resolves the user's tenant email templates and branding
// before dispatching. Send failures are logged, not retried, the inbox
// notification already landed.
func (cs *consumerService) sendUserEmail(ctx context.Context, userId uuid.UUID, templateKey string, vars map[string]string) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if vars == nil {
		vars = map[string]string{}
	}
	vars["firstName"] = user.FirstName

	var templates *entity.EmailTemplates
	brandName := "FX Backoffice"
	if user.AssignedAdmin != nil {
		admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: *user.AssignedAdmin})
		if err != nil {
			return err
		}
		if admin != nil && admin.BrandName != "" {
			brandName = admin.BrandName
		}
		settings, err := uow.SettingsRepository().FindOne(ctx, specification.ByAdminID{AdminID: *user.AssignedAdmin})
		if err != nil {
			return err
		}
		if settings != nil && settings.IsConfigured.EmailTemplates {
			templates = &settings.EmailTemplates
		}
	}
	vars["brandName"] = brandName

	if err := cs.emailService.SendTenantTemplateEmail(templates, templateKey, user.Email, vars); err != nil {
		cs.log.Warn("consumer", "email delivery failed", map[string]interface{}{
			"template": templateKey,
			"user_id":  userId.String(),
			"error":    err.Error(),
		})
	}
	return nil
}
