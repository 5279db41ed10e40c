package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/pkg/events"

	"github.com/google/uuid"
)

// memStore is a shared in-memory database for service tests. Finders
// return copies so a failed operation cannot leak partial mutations, and
// updates write the whole entity back, matching the GORM repositories.
type memStore struct {
	mu sync.Mutex

	admins       map[uuid.UUID]*entity.Admin
	actionLogs   []*entity.AdminActionLog
	wallets      map[uuid.UUID]*entity.AdminWallet // keyed by AdminId
	fundRequests map[uuid.UUID]*entity.AdminFundRequest
	transactions []*entity.AdminWalletTransaction
	users        map[uuid.UUID]*entity.User
	userWallets  map[uuid.UUID]*entity.UserWallet // keyed by UserId
	accounts     map[uuid.UUID]*entity.TradingAccount
	kycDocs      map[uuid.UUID]*entity.KYCDocument
	settings     map[uuid.UUID]*entity.AdminSettings // keyed by AdminId
	notes        []*entity.Notification
}

func newMemStore() *memStore {
	return &memStore{
		admins:       map[uuid.UUID]*entity.Admin{},
		wallets:      map[uuid.UUID]*entity.AdminWallet{},
		fundRequests: map[uuid.UUID]*entity.AdminFundRequest{},
		users:        map[uuid.UUID]*entity.User{},
		userWallets:  map[uuid.UUID]*entity.UserWallet{},
		accounts:     map[uuid.UUID]*entity.TradingAccount{},
		kycDocs:      map[uuid.UUID]*entity.KYCDocument{},
		settings:     map[uuid.UUID]*entity.AdminSettings{},
	}
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUnitOfWork{store: f.store}
}

func newMemFactory(store *memStore) unitofwork.RepositoryFactory {
	return &memFactory{store: store}
}

type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memUnitOfWork) Commit() error                   { return nil }
func (u *memUnitOfWork) Rollback() error                 { return nil }

func (u *memUnitOfWork) AdminRepository() contract.AdminRepository {
	return &memAdminRepo{store: u.store}
}
func (u *memUnitOfWork) WalletRepository() contract.WalletRepository {
	return &memWalletRepo{store: u.store}
}
func (u *memUnitOfWork) UserRepository() contract.UserRepository {
	return &memUserRepo{store: u.store}
}
func (u *memUnitOfWork) SettingsRepository() contract.SettingsRepository {
	return &memSettingsRepo{store: u.store}
}
func (u *memUnitOfWork) KYCRepository() contract.KYCRepository {
	return &memKYCRepo{store: u.store}
}
func (u *memUnitOfWork) BannerRepository() contract.BannerRepository {
	return &memBannerRepo{store: u.store}
}
func (u *memUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return &memNotificationRepo{store: u.store}
}

// capturePublisher records emitted events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// ---- admin repository ----

type memAdminRepo struct {
	store *memStore
}

func matchAdmin(a *entity.Admin, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if a.Email != s.Email {
				return false
			}
		case specification.BySlug:
			if a.UrlSlug != s.Slug {
				return false
			}
		case specification.ByRole:
			if string(a.Role) != s.Role {
				return false
			}
		case specification.ByStatus:
			if string(a.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *memAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *admin
	r.store.admins[admin.Id] = &cp
	return nil
}

func (r *memAdminRepo) Update(ctx context.Context, admin *entity.Admin) error {
	return r.Create(ctx, admin)
}

func (r *memAdminRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.admins, id)
	return nil
}

func (r *memAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if matchAdmin(a, specs) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Admin
	for _, a := range r.store.admins {
		if matchAdmin(a, specs) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memAdminRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *memAdminRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.admins[id]; ok {
		a.Status = entity.AdminStatus(status)
	}
	return nil
}

func (r *memAdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.admins[id]; ok {
		a.PasswordHash = hash
	}
	return nil
}

func (r *memAdminRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.admins[id]; ok {
		a.LastLoginAt = &at
	}
	return nil
}

func (r *memAdminRepo) CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *log
	r.store.actionLogs = append(r.store.actionLogs, &cp)
	return nil
}

func (r *memAdminRepo) FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.AdminActionLog, len(r.store.actionLogs))
	copy(out, r.store.actionLogs)
	return out, nil
}

// ---- wallet repository ----

type memWalletRepo struct {
	store *memStore
}

func (r *memWalletRepo) CreateWallet(ctx context.Context, wallet *entity.AdminWallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *wallet
	r.store.wallets[wallet.AdminId] = &cp
	return nil
}

func (r *memWalletRepo) UpdateWallet(ctx context.Context, wallet *entity.AdminWallet) error {
	return r.CreateWallet(ctx, wallet)
}

func (r *memWalletRepo) DeleteWalletByAdmin(ctx context.Context, adminId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.wallets, adminId)
	return nil
}

func (r *memWalletRepo) FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.AdminWallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.wallets {
		if matchWallet(w, specs) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memWalletRepo) FindWallets(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AdminWallet
	for _, w := range r.store.wallets {
		if matchWallet(w, specs) {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchWallet(w *entity.AdminWallet, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if w.Id != s.ID {
				return false
			}
		case specification.ByAdminID:
			if w.AdminId != s.AdminID {
				return false
			}
		}
	}
	return true
}

func (r *memWalletRepo) UpdateWalletStatus(ctx context.Context, adminId uuid.UUID, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if w, ok := r.store.wallets[adminId]; ok {
		w.Status = entity.WalletStatus(status)
	}
	return nil
}

func matchFundRequest(f *entity.AdminFundRequest, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByAdminID:
			if f.AdminId != s.AdminID {
				return false
			}
		case specification.ByStatus:
			if string(f.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *memWalletRepo) CreateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *request
	r.store.fundRequests[request.Id] = &cp
	return nil
}

func (r *memWalletRepo) UpdateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error {
	return r.CreateFundRequest(ctx, request)
}

func (r *memWalletRepo) FindFundRequest(ctx context.Context, specs ...specification.Specification) (*entity.AdminFundRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, f := range r.store.fundRequests {
		if matchFundRequest(f, specs) {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memWalletRepo) FindFundRequests(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminFundRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AdminFundRequest
	for _, f := range r.store.fundRequests {
		if matchFundRequest(f, specs) {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memWalletRepo) CountFundRequests(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindFundRequests(ctx, specs...)
	return int64(len(all)), nil
}

func matchTransaction(t *entity.AdminWalletTransaction, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.InvolvingAdmin:
			from := t.FromAdminId != nil && *t.FromAdminId == s.AdminID
			to := t.ToAdminId != nil && *t.ToAdminId == s.AdminID
			if !from && !to {
				return false
			}
		case specification.ByTransactionType:
			if string(t.Type) != s.Type {
				return false
			}
		case specification.ToUsersOnly:
			if t.ToUserId == nil {
				return false
			}
		case specification.FilterBy:
			if s.Field == "from_admin_id" {
				id, ok := s.Value.(uuid.UUID)
				if !ok || t.FromAdminId == nil || *t.FromAdminId != id {
					return false
				}
			}
		}
	}
	return true
}

func (r *memWalletRepo) CreateTransaction(ctx context.Context, tx *entity.AdminWalletTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *tx
	r.store.transactions = append(r.store.transactions, &cp)
	return nil
}

func (r *memWalletRepo) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWalletTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AdminWalletTransaction
	for _, t := range r.store.transactions {
		if matchTransaction(t, specs) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memWalletRepo) CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindTransactions(ctx, specs...)
	return int64(len(all)), nil
}

func (r *memWalletRepo) DeleteTransactionsByAdmin(ctx context.Context, adminId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.AdminWalletTransaction
	for _, t := range r.store.transactions {
		involved := (t.FromAdminId != nil && *t.FromAdminId == adminId) ||
			(t.ToAdminId != nil && *t.ToAdminId == adminId)
		if !involved {
			kept = append(kept, t)
		}
	}
	r.store.transactions = kept
	return nil
}

func (r *memWalletRepo) SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error) {
	all, _ := r.FindTransactions(ctx, specs...)
	var sum float64
	for _, t := range all {
		sum += t.Amount
	}
	return sum, nil
}

// ---- user repository ----

type memUserRepo struct {
	store *memStore
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.AssignedToAdmin:
			if u.AssignedAdmin == nil || *u.AssignedAdmin != s.AdminID {
				return false
			}
		case specification.AssignedToSuperAdmin:
			if u.AssignedAdmin != nil {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, u.Id) {
				return false
			}
		}
	}
	return true
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.User
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (r *memUserRepo) CreateWallet(ctx context.Context, wallet *entity.UserWallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *wallet
	r.store.userWallets[wallet.UserId] = &cp
	return nil
}

func (r *memUserRepo) UpdateWallet(ctx context.Context, wallet *entity.UserWallet) error {
	return r.CreateWallet(ctx, wallet)
}

func (r *memUserRepo) FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.UserWallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.userWallets {
		if matchUserWallet(w, specs) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func matchUserWallet(w *entity.UserWallet, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if w.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if w.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func matchAccount(a *entity.TradingAccount, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if a.UserId != s.UserID {
				return false
			}
		case specification.ByUserIDs:
			if !containsID(s.IDs, a.UserId) {
				return false
			}
		case specification.ByStatus:
			if string(a.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *memUserRepo) CreateTradingAccount(ctx context.Context, account *entity.TradingAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *account
	r.store.accounts[account.Id] = &cp
	return nil
}

func (r *memUserRepo) UpdateTradingAccount(ctx context.Context, account *entity.TradingAccount) error {
	return r.CreateTradingAccount(ctx, account)
}

func (r *memUserRepo) FindTradingAccount(ctx context.Context, specs ...specification.Specification) (*entity.TradingAccount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.accounts {
		if matchAccount(a, specs) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindTradingAccounts(ctx context.Context, specs ...specification.Specification) ([]*entity.TradingAccount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.TradingAccount
	for _, a := range r.store.accounts {
		if matchAccount(a, specs) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- settings repository ----

type memSettingsRepo struct {
	store *memStore
}

func (r *memSettingsRepo) Create(ctx context.Context, settings *entity.AdminSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *settings
	r.store.settings[settings.AdminId] = &cp
	return nil
}

func (r *memSettingsRepo) Update(ctx context.Context, settings *entity.AdminSettings) error {
	return r.Create(ctx, settings)
}

func (r *memSettingsRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminSettings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.settings {
		if matchSettings(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func matchSettings(row *entity.AdminSettings, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByAdminID); ok && row.AdminId != s.AdminID {
			return false
		}
	}
	return true
}

func (r *memSettingsRepo) DeleteByAdmin(ctx context.Context, adminId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.settings, adminId)
	return nil
}

// ---- kyc repository ----

type memKYCRepo struct {
	store *memStore
}

func matchKYC(d *entity.KYCDocument, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if d.UserId != s.UserID {
				return false
			}
		case specification.ByUserIDs:
			if !containsID(s.IDs, d.UserId) {
				return false
			}
		case specification.ByStatus:
			if string(d.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *memKYCRepo) Create(ctx context.Context, doc *entity.KYCDocument) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *doc
	r.store.kycDocs[doc.Id] = &cp
	return nil
}

func (r *memKYCRepo) Update(ctx context.Context, doc *entity.KYCDocument) error {
	return r.Create(ctx, doc)
}

func (r *memKYCRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KYCDocument, error) {
	docs, _ := r.FindAll(ctx, specs...)
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *memKYCRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KYCDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.KYCDocument
	for _, d := range r.store.kycDocs {
		if matchKYC(d, specs) {
			cp := *d
			out = append(out, &cp)
		}
	}
	// The services always want newest first.
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (r *memKYCRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// ---- banner repository ----

type memBannerRepo struct {
	store *memStore
}

func (r *memBannerRepo) Create(ctx context.Context, banner *entity.Banner) error  { return nil }
func (r *memBannerRepo) Update(ctx context.Context, banner *entity.Banner) error  { return nil }
func (r *memBannerRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (r *memBannerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Banner, error) {
	return nil, nil
}
func (r *memBannerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Banner, error) {
	return nil, nil
}

// ---- notification repository ----

type memNotificationRepo struct {
	store *memStore
}

func (r *memNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *notification
	r.store.notes = append(r.store.notes, &cp)
	return nil
}

func (r *memNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.store.notes {
		if matchNotification(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchNotification(n *entity.Notification, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.FilterBy); ok && s.Field == "recipient_id" {
			id, cast := s.Value.(uuid.UUID)
			if !cast || n.RecipientId != id {
				return false
			}
		}
	}
	return true
}

func (r *memNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range r.store.notes {
		if n.Id == id {
			n.Read = true
		}
	}
	return nil
}

func (r *memNotificationRepo) MarkAllRead(ctx context.Context, recipientId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range r.store.notes {
		if n.RecipientId == recipientId {
			n.Read = true
		}
	}
	return nil
}
