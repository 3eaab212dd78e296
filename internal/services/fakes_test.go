package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"practicehub_backend/internal/config"
	"practicehub_backend/internal/email"
	"practicehub_backend/internal/geo"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the semantics the real
// implementations get from Postgres: unique email indexes, upsert on
// conflict, transactional pending-record consumption.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account // by id
	pending  *fakePendingRepo           // for CreateWithPractice's tx delete
	practice *fakePracticeRepo
}

func newFakeAccountRepo(pending *fakePendingRepo, practice *fakePracticeRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*models.Account),
		pending:  pending,
		practice: practice,
	}
}

func (r *fakeAccountRepo) FindByID(id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

func (r *fakeAccountRepo) FindByEmail(email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			cp := *account
			return &cp, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) CreateWithPractice(account *models.Account, practice *models.Practice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return repositories.ErrAccountAlreadyExists
		}
	}

	practice.ID = uuid.NewString()
	r.practice.put(practice)

	account.ID = uuid.NewString()
	account.PracticeID = practice.ID
	account.CreatedAt = time.Now()
	cp := *account
	r.accounts[account.ID] = &cp

	_ = r.pending.DeleteByEmail(account.Email)
	return nil
}

func (r *fakeAccountRepo) Update(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.accounts[account.ID]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	stored.FirstName = account.FirstName
	stored.LastName = account.LastName
	stored.Pronouns = account.Pronouns
	stored.Gender = account.Gender
	stored.Title = account.Title
	stored.DOB = account.DOB
	stored.Availability = account.Availability
	stored.Status = account.Status
	return nil
}

func (r *fakeAccountRepo) UpdatePassword(id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	account.PasswordHash = hash
	account.ResetToken = ""
	account.ResetTokenExp = nil
	return nil
}

func (r *fakeAccountRepo) UpdateResetToken(id, token string, exp *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	account.ResetToken = token
	account.ResetTokenExp = exp
	return nil
}

func (r *fakeAccountRepo) UpdateStatus(id string, status models.AccountStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	account.Status = status
	return nil
}

type fakePendingRepo struct {
	mu      sync.Mutex
	records map[string]*models.PendingRegistration // by email
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{records: make(map[string]*models.PendingRegistration)}
}

func (r *fakePendingRepo) FindByEmail(email string) (*models.PendingRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[email]
	if !ok {
		return nil, repositories.ErrPendingNotFound
	}
	cp := *record
	return &cp, nil
}

func (r *fakePendingRepo) Upsert(pending *models.PendingRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.records[pending.Email]; ok {
		existing.PasswordHash = pending.PasswordHash
		existing.OTP = pending.OTP
		return nil
	}
	pending.ID = uuid.NewString()
	cp := *pending
	r.records[pending.Email] = &cp
	return nil
}

func (r *fakePendingRepo) DeleteByEmail(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, email)
	return nil
}

func (r *fakePendingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type fakePracticeRepo struct {
	mu        sync.Mutex
	practices map[string]*models.Practice
}

func newFakePracticeRepo() *fakePracticeRepo {
	return &fakePracticeRepo{practices: make(map[string]*models.Practice)}
}

func (r *fakePracticeRepo) put(practice *models.Practice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *practice
	r.practices[practice.ID] = &cp
}

func (r *fakePracticeRepo) FindByID(id string) (*models.Practice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	practice, ok := r.practices[id]
	if !ok {
		return nil, repositories.ErrPracticeNotFound
	}
	cp := *practice
	cp.Addresses = append([]models.Address(nil), practice.Addresses...)
	return &cp, nil
}

func (r *fakePracticeRepo) Update(practice *models.Practice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.practices[practice.ID]
	if !ok {
		return repositories.ErrPracticeNotFound
	}
	stored.BusinessName = practice.BusinessName
	stored.IsCompany = practice.IsCompany
	stored.Website = practice.Website
	return nil
}

func (r *fakePracticeRepo) ReplaceAddresses(practiceID string, addresses []models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.practices[practiceID]
	if !ok {
		return repositories.ErrPracticeNotFound
	}
	for i := range addresses {
		addresses[i].ID = uuid.NewString()
		addresses[i].PracticeID = practiceID
	}
	stored.Addresses = append([]models.Address(nil), addresses...)
	return nil
}

type fakeFormRepo struct {
	mu    sync.Mutex
	forms map[string]*models.IntakeForm
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[string]*models.IntakeForm)}
}

func (r *fakeFormRepo) Create(form *models.IntakeForm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	form.ID = uuid.NewString()
	form.CreatedAt = time.Now()
	cp := *form
	r.forms[form.ID] = &cp
	return nil
}

func (r *fakeFormRepo) FindByID(id string) (*models.IntakeForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	form, ok := r.forms[id]
	if !ok {
		return nil, repositories.ErrFormNotFound
	}
	cp := *form
	return &cp, nil
}

func (r *fakeFormRepo) FindByAccount(accountID string) ([]models.IntakeForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.IntakeForm
	for _, form := range r.forms {
		if form.AccountID == accountID {
			out = append(out, *form)
		}
	}
	return out, nil
}

func (r *fakeFormRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.forms[id]; !ok {
		return repositories.ErrFormNotFound
	}
	delete(r.forms, id)
	return nil
}

// fakeMailer records outbound messages and can be told to fail.
type fakeMailer struct {
	mu        sync.Mutex
	otps      map[string]string // email -> last code
	resetURLs map[string]string // email -> last reset url
	failNext  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		otps:      make(map[string]string),
		resetURLs: make(map[string]string),
	}
}

func (m *fakeMailer) Send(*email.Email) error { return nil }

func (m *fakeMailer) SendOTP(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.otps[to] = code
	return nil
}

func (m *fakeMailer) SendPasswordReset(to, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.resetURLs[to] = resetURL
	return nil
}

func (m *fakeMailer) Validate() error { return nil }

func (m *fakeMailer) lastOTP(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.otps[to]
}

func (m *fakeMailer) lastResetURL(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetURLs[to]
}

// fakeGeocoder resolves every address to fixed coordinates unless told to
// miss or fail.
type fakeGeocoder struct {
	noMatch bool
	err     error
	queries []string
}

func (g *fakeGeocoder) Geocode(_ context.Context, query string) (*geo.Result, error) {
	g.queries = append(g.queries, query)
	if g.err != nil {
		return nil, g.err
	}
	if g.noMatch {
		return nil, nil
	}
	return &geo.Result{Latitude: 52.52, Longitude: 13.405, Label: query}, nil
}

// fakeStorage keeps payloads in memory.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

func (s *fakeStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.Email.ResetBaseURL = "https://app.test/reset-password"
	return cfg
}

// authFixture wires an AuthService over fresh fakes.
type authFixture struct {
	svc      AuthService
	accounts *fakeAccountRepo
	pending  *fakePendingRepo
	practice *fakePracticeRepo
	mailer   *fakeMailer
	cfg      *config.Config
}

func newAuthFixture() *authFixture {
	pending := newFakePendingRepo()
	practice := newFakePracticeRepo()
	accounts := newFakeAccountRepo(pending, practice)
	mailer := newFakeMailer()
	cfg := testConfig()

	return &authFixture{
		svc:      NewAuthService(accounts, pending, mailer, cfg),
		accounts: accounts,
		pending:  pending,
		practice: practice,
		mailer:   mailer,
		cfg:      cfg,
	}
}
